package bsatn

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool and zstdEncoderPool reuse warmed-up zstd codecs across
// calls, avoiding the allocation cost of spinning up a fresh encoder or
// decoder per typespace blob. Operates purely on an already-serialized
// byte buffer; it never touches a socket or file.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		d, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("bsatn: failed to create zstd decoder: %v", err))
		}
		return d
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		e, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("bsatn: failed to create zstd encoder: %v", err))
		}
		return e
	},
}

// CompressBlob zstd-compresses an already-serialized BSATN buffer (for
// example a typespace wire dump) before it is handed to a host sink.
func CompressBlob(data []byte) []byte {
	enc := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(enc)
	return enc.EncodeAll(data, nil)
}

// DecompressBlob reverses CompressBlob.
func DecompressBlob(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dec := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(dec)
	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, Errorf("zstd decompress: %w", err)
	}
	return out, nil
}
