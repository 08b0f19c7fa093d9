package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bitconv.yaml")
	data := `
bits: 32
input_type: unsigned
codec: json
logging:
  level: debug
  format: json
batch:
  workers: 4
  rate_per_sec: 100
  burst: 10
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Bits)
	assert.Equal(t, "unsigned", cfg.InputType)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, "json", cfg.Codec)
	assert.Equal(t, LoggingConfig{Level: "debug", Format: "json"}, cfg.Logging)
	assert.Equal(t, BatchConfig{Workers: 4, RatePerSec: 100, Burst: 10}, cfg.Batch)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"bits":       "bits: 0\n",
		"notation":   "input_type: octal\n",
		"output":     "output: xml\n",
		"codec":      "codec: msgpack\n",
		"level":      "logging:\n  level: loud\n",
		"format":     "logging:\n  format: xml\n",
		"batch":      "batch:\n  workers: -1\n",
		"not yaml":   "bits: [\n",
		"wrong type": "bits: eight\n",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bitconv.yaml")
			require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
