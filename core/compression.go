package core

import (
	"bytes"
	"fmt"
	"io"

	kgzip "github.com/klauspost/compress/gzip"
)

// gzipMagic is the two-byte magic that opens every gzip member.
var gzipMagic = [2]byte{0x1F, 0x8B}

// IsGzipPayload reports whether b starts with the gzip magic bytes: true
// exactly when the first two bytes are 1F 8B.
func IsGzipPayload(b []byte) bool {
	return len(b) >= 2 && b[0] == gzipMagic[0] && b[1] == gzipMagic[1]
}

// inflator wraps a klauspost/compress gzip reader that is reset (not
// recreated) between uses, backed by flate's 32 KiB sliding window. An
// inflator is not safe for concurrent use: each frame-consuming call chain
// (e.g. one SubscribeBlocks call) must own its own instance.
type inflator struct {
	gz *kgzip.Reader
}

func newInflator() *inflator { return &inflator{} }

// Inflate decompresses a gzip-framed payload. Non-gzip input is returned
// as a defensive copy, unmodified. A truncated or corrupt gzip stream
// yields ErrDecompressionError.
func (inf *inflator) Inflate(payload []byte) ([]byte, error) {
	if !IsGzipPayload(payload) {
		return append([]byte(nil), payload...), nil
	}
	src := bytes.NewReader(payload)
	if inf.gz == nil {
		gz, err := kgzip.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecompressionError, err)
		}
		inf.gz = gz
	} else if err := inf.gz.Reset(src); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompressionError, err)
	}
	var out bytes.Buffer
	if _, err := io.Copy(&out, inf.gz); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompressionError, err)
	}
	return out.Bytes(), nil
}

// flateWindowSize documents the sliding-window size backing the klauspost
// flate decompressor used internally by kgzip.Reader — 32 KiB, the DEFLATE
// maximum.
const flateWindowSize = 32 * 1024
