package history

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/bitconv/codec"
	"github.com/hupe1980/bitconv/internal/conv"
)

// Compression selects how the entry stream of a snapshot is compressed.
type Compression uint8

const (
	// CompressionNone stores entries as-is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses the LZ4 frame format (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses zstd (better ratio).
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// ParseCompression resolves a compression from its name.
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZSTD, nil
	default:
		return 0, fmt.Errorf("unknown compression: %q", s)
	}
}

// ErrInvalidSnapshot is returned by Import for malformed input.
var ErrInvalidSnapshot = errors.New("invalid history snapshot")

var (
	snapshotMagic   = [4]byte{'B', 'C', 'H', '0'}
	snapshotVersion = uint16(1)
)

// maxEntrySize caps a single encoded entry when importing untrusted bytes.
const maxEntrySize = 1 << 20

// ExportOptions configures Export.
type ExportOptions struct {
	Compression Compression
	Codec       codec.Codec
}

// DefaultExportOptions are applied before option functions passed to Export.
var DefaultExportOptions = ExportOptions{
	Compression: CompressionZSTD,
	Codec:       codec.Default,
}

// Export writes the held entries to w.
//
// Format:
//
//	[Magic:4][Version:2][Compression:1][CodecLen:1][Codec:N][Count:4]
//	then, through the compressor: Count x [Len:4][Entry:Len]
//
// Integers are little-endian.
func (l *Log) Export(w io.Writer, optFns ...func(o *ExportOptions)) error {
	return Write(w, l.Entries(), optFns...)
}

// Write writes entries to w in snapshot format. See Log.Export.
func Write(w io.Writer, entries []Entry, optFns ...func(o *ExportOptions)) error {
	opts := DefaultExportOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}

	count, err := conv.IntToUint32(len(entries))
	if err != nil {
		return fmt.Errorf("too many entries: %w", err)
	}
	if err := writeHeader(w, opts, count); err != nil {
		return err
	}

	body, closeBody, err := compressor(w, opts.Compression)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(body)
	var lenBuf [4]byte
	for i := range entries {
		b, err := opts.Codec.Marshal(&entries[i])
		if err != nil {
			_ = closeBody()
			return fmt.Errorf("failed to encode entry %d: %w", entries[i].Seq, err)
		}
		n, err := conv.IntToUint32(len(b))
		if err != nil {
			_ = closeBody()
			return err
		}
		binary.LittleEndian.PutUint32(lenBuf[:], n)
		if _, err := bw.Write(lenBuf[:]); err != nil {
			_ = closeBody()
			return err
		}
		if _, err := bw.Write(b); err != nil {
			_ = closeBody()
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		_ = closeBody()
		return fmt.Errorf("failed to flush snapshot: %w", err)
	}
	return closeBody()
}

func writeHeader(w io.Writer, opts ExportOptions, count uint32) error {
	name := opts.Codec.Name()
	nameLen, err := conv.IntToUint8(len(name))
	if err != nil {
		return fmt.Errorf("codec name too long: %w", err)
	}

	buf := make([]byte, 0, 12+len(name))
	buf = append(buf, snapshotMagic[:]...)
	buf = binary.LittleEndian.AppendUint16(buf, snapshotVersion)
	buf = append(buf, byte(opts.Compression), nameLen)
	buf = append(buf, name...)
	buf = binary.LittleEndian.AppendUint32(buf, count)

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write snapshot header: %w", err)
	}
	return nil
}

func compressor(w io.Writer, c Compression) (io.Writer, func() error, error) {
	switch c {
	case CompressionNone:
		return w, func() error { return nil }, nil
	case CompressionLZ4:
		zw := lz4.NewWriter(w)
		return zw, zw.Close, nil
	case CompressionZSTD:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create compressor: %w", err)
		}
		return enc, enc.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported compression: %s", c)
	}
}

// Import reads a snapshot written by Export. The codec is chosen by the name
// recorded in the header.
func Import(r io.Reader) ([]Entry, error) {
	var fixed [8]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %w", ErrInvalidSnapshot, err)
	}
	if [4]byte(fixed[0:4]) != snapshotMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrInvalidSnapshot)
	}
	if v := binary.LittleEndian.Uint16(fixed[4:6]); v != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, v)
	}
	comp := Compression(fixed[6])

	name := make([]byte, fixed[7])
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, fmt.Errorf("%w: failed to read codec name: %w", ErrInvalidSnapshot, err)
	}
	cd, ok := codec.ByName(string(name))
	if !ok {
		return nil, fmt.Errorf("%w: unknown codec %q", ErrInvalidSnapshot, name)
	}

	var countBuf [4]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return nil, fmt.Errorf("%w: failed to read entry count: %w", ErrInvalidSnapshot, err)
	}
	count := binary.LittleEndian.Uint32(countBuf[:])

	body, closeBody, err := decompressor(r, comp)
	if err != nil {
		return nil, err
	}
	defer closeBody()

	br := bufio.NewReader(body)
	entries := make([]Entry, 0, min(count, 1024))
	var lenBuf [4]byte
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(br, lenBuf[:]); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidSnapshot, i, err)
		}
		n := binary.LittleEndian.Uint32(lenBuf[:])
		if n > maxEntrySize {
			return nil, fmt.Errorf("%w: entry %d too large (%d bytes)", ErrInvalidSnapshot, i, n)
		}
		b := make([]byte, n)
		if _, err := io.ReadFull(br, b); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidSnapshot, i, err)
		}
		var e Entry
		if err := cd.Unmarshal(b, &e); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidSnapshot, i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func decompressor(r io.Reader, c Compression) (io.Reader, func(), error) {
	switch c {
	case CompressionNone:
		return r, func() {}, nil
	case CompressionLZ4:
		return lz4.NewReader(r), func() {}, nil
	case CompressionZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create decompressor: %w", err)
		}
		return dec, dec.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: unsupported compression %d", ErrInvalidSnapshot, uint8(c))
	}
}

// Load replaces the log contents with a snapshot read from r.
func (l *Log) Load(r io.Reader) error {
	entries, err := Import(r)
	if err != nil {
		return err
	}
	l.Restore(entries)
	return nil
}
