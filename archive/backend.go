// archive/backend.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package archive stores and retrieves planned missions from a durable
// backend, for teams that want a record of every flight plan generated
// for a given competition run. cmd/flightplan always uses its in-memory
// PlanCache; the storage backends are only used when --archive is set.
package archive

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// Backend is a place to durably store and retrieve encoded mission plans.
// Implementations mirror the shape of a small object store: paths are
// slash-separated keys, not filesystem paths.
type Backend interface {
	StoreObject(path string, object any) (int64, error)
	ReadObject(path string, result any) error
	List(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

// zstdEncoders is a small pool of reusable encoders; creating one per
// call is wasteful enough to matter when archiving many plans in a batch
// run.
var zstdEncoders = make(chan *zstd.Encoder, 8)

func init() {
	for range cap(zstdEncoders) {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression), zstd.WithEncoderConcurrency(1))
		if err != nil {
			panic(err)
		}
		zstdEncoders <- enc
	}
}

// countingWriter tracks the number of bytes written through it, so
// StoreObject can report sizes without a second pass.
type countingWriter struct {
	io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.Writer.Write(p)
	atomic.AddInt64(&c.n, int64(n))
	return n, err
}

// encodeObject compresses and msgpack-encodes object into w, returning
// the number of compressed bytes written.
func encodeObject(w io.Writer, object any) (int64, error) {
	cw := &countingWriter{Writer: w}
	zw := <-zstdEncoders
	defer func() { zstdEncoders <- zw }()
	zw.Reset(cw)

	if err := msgpack.NewEncoder(zw).Encode(object); err != nil {
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	return cw.n, nil
}

// decodeObject decompresses and msgpack-decodes r into result.
func decodeObject(r io.Reader, result any) error {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return err
	}
	defer zr.Close()
	return msgpack.NewDecoder(zr).Decode(result)
}
