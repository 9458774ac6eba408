package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// ErrUnknownCodec is returned for an unsupported compression codec name
var ErrUnknownCodec = errors.New("unknown compression codec")

// Codec identifies an output stream compression
type Codec string

const (
	CodecNone   Codec = "none"
	CodecGzip   Codec = "gzip"
	CodecZstd   Codec = "zstd"
	CodecSnappy Codec = "snappy"
)

// ParseCodec converts a codec name, case-insensitively. An empty name means no compression.
func ParseCodec(name string) (Codec, error) {
	switch codec := Codec(strings.ToLower(name)); codec {
	case "":
		return CodecNone, nil
	case CodecNone, CodecGzip, CodecZstd, CodecSnappy:
		return codec, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}

// Extension returns the suffix appended to compressed file names
func (c Codec) Extension() string {
	switch c {
	case CodecGzip:
		return ".gz"
	case CodecZstd:
		return ".zst"
	case CodecSnappy:
		return ".sz"
	}
	return ""
}

// nopWriteCloser leaves the underlying writer open on Close
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Compress wraps w with the codec's encoder. Closing the result flushes the
// encoder but does not close w.
func Compress(w io.Writer, codec Codec) (io.WriteCloser, error) {
	switch codec {
	case CodecNone, "":
		return nopWriteCloser{w}, nil
	case CodecGzip:
		return gzip.NewWriter(w), nil
	case CodecZstd:
		encoder, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		return encoder, nil
	case CodecSnappy:
		return snappy.NewBufferedWriter(w), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, codec)
}

// Decompress wraps r with the codec's decoder
func Decompress(r io.Reader, codec Codec) (io.ReadCloser, error) {
	switch codec {
	case CodecNone, "":
		return io.NopCloser(r), nil
	case CodecGzip:
		reader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return reader, nil
	case CodecZstd:
		decoder, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		return decoder.IOReadCloser(), nil
	case CodecSnappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, codec)
}
