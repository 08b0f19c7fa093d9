package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestConvertCmd_Text(t *testing.T) {
	out, _, err := run(t, "", "convert", "--bits", "8", "--from", "signed", "--", "-128")
	require.NoError(t, err)

	assert.Contains(t, out, "signed:   -128")
	assert.Contains(t, out, "unsigned: 128")
	assert.Contains(t, out, "binary:   1000 0000")
	assert.Contains(t, out, "hex:      0x80")
	assert.Contains(t, out, "pattern:  #....... (1 set)")
}

func TestConvertCmd_JSON(t *testing.T) {
	out, _, err := run(t, "", "convert", "0x7F", "--from", "hex", "--output", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"binaryText": "01111111",
		"hexText": "7F",
		"signedText": "127",
		"unsignedText": "127",
		"bitPattern": [false, true, true, true, true, true, true, true]
	}`, out)
}

func TestConvertCmd_Rejected(t *testing.T) {
	out, _, err := run(t, "", "convert", "100000000", "--from", "binary")
	require.ErrorIs(t, err, errConversionFailed)
	assert.Contains(t, out, "error (OutOfRange): binary value has 9 digits, exceeds 8 bits")
}

func TestConvertCmd_BadFlags(t *testing.T) {
	_, _, err := run(t, "", "convert", "1", "--from", "octal")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errConversionFailed)

	_, _, err = run(t, "", "convert", "1", "--bits", "0")
	assert.Error(t, err)

	_, _, err = run(t, "", "convert", "1", "--output", "xml")
	assert.Error(t, err)
}

func TestConvertCmd_ConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bitconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bits: 16\ninput_type: hex\noutput: json\n"), 0o600))

	out, _, err := run(t, "", "--config", path, "convert", "FFFF")
	require.NoError(t, err)
	assert.Contains(t, out, `"signedText":"-1"`)

	// Flags win over the file.
	out, _, err = run(t, "", "--config", path, "convert", "FF", "--bits", "8", "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "signed:   -1")
}

func TestBatchCmd(t *testing.T) {
	input := strings.Join([]string{
		`{"value":"-1","bits":8,"inputType":"signed"}`,
		``,
		`# comment`,
		`{"value":"256","bits":8,"inputType":"unsigned"}`,
		`{"value":"0b1010","bits":4,"inputType":"binary"}`,
	}, "\n")

	out, _, err := run(t, input, "batch", "--workers", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"hexText":"FF"`)
	assert.Contains(t, lines[1], `"errorKind":"OutOfRange"`)
	assert.Contains(t, lines[2], `"signedText":"-6"`)
}

func TestBatchCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reqs.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"value":"7","bits":4,"inputType":"unsigned"}`+"\n"), 0o600))

	out, _, err := run(t, "", "batch", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"binaryText":"0111"`)
}

func TestBatchCmd_BadInput(t *testing.T) {
	_, _, err := run(t, `{"value":"1","bits":8,"inputType":"octal"}`, "batch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")

	_, _, err = run(t, "", "batch", filepath.Join(t.TempDir(), "missing.jsonl"))
	assert.Error(t, err)
}

func TestWidthsCmd(t *testing.T) {
	out, _, err := run(t, "", "widths")
	require.NoError(t, err)
	assert.Contains(t, out, "[-128, 127]")
	assert.Contains(t, out, "[0, 4294967295]")
}

func TestLogLevelFlag(t *testing.T) {
	_, stderr, err := run(t, "", "--log-level", "debug", "convert", "5")
	require.NoError(t, err)
	assert.Contains(t, stderr, "conversion completed")

	_, _, err = run(t, "", "--log-level", "loud", "convert", "5")
	assert.Error(t, err)
}
