// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package adjacency stores breakpoint.NovelAdjacency values as a
// snappy-compressed stream. Each record is a 4-byte little-endian length
// followed by the output of NovelAdjacency.Marshal.
package adjacency

import (
	"encoding/binary"
	"io"
	"sync"

	"github.com/golang/snappy"
	"github.com/jianzuoyi/gatk/breakpoint"
	"github.com/pkg/errors"
)

// maxRecordSize bounds the length prefix accepted by Reader.
const maxRecordSize = 1 << 30

// Writer appends adjacencies to a stream. It is safe for concurrent use.
type Writer struct {
	mu  sync.Mutex
	w   *snappy.Writer
	hdr [4]byte
	n   int
}

// NewWriter creates a Writer on top of w. Close must be called to flush the
// stream; it does not close w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: snappy.NewBufferedWriter(w)}
}

// Write appends one adjacency.
func (w *Writer) Write(adj *breakpoint.NovelAdjacency) error {
	data := adj.Marshal()
	w.mu.Lock()
	defer w.mu.Unlock()
	binary.LittleEndian.PutUint32(w.hdr[:], uint32(len(data)))
	if _, err := w.w.Write(w.hdr[:]); err != nil {
		return errors.Wrap(err, "adjacency: write header")
	}
	if _, err := w.w.Write(data); err != nil {
		return errors.Wrap(err, "adjacency: write record")
	}
	w.n++
	return nil
}

// Len returns the number of adjacencies written so far.
func (w *Writer) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.n
}

// Close flushes buffered data.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return errors.Wrap(w.w.Close(), "adjacency: close")
}

// Reader scans a stream produced by Writer.
//
//   r := adjacency.NewReader(in)
//   for r.Scan() {
//     adj := r.Record()
//     ...
//   }
//   if err := r.Err(); err != nil { ... }
type Reader struct {
	r   *snappy.Reader
	buf []byte
	rec *breakpoint.NovelAdjacency
	err error
}

// NewReader creates a Reader on top of r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: snappy.NewReader(r)}
}

// Scan reads the next adjacency. It returns false at the end of the stream
// or on error.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	var hdr [4]byte
	n, err := io.ReadFull(r.r, hdr[:])
	if err == io.EOF {
		return false
	}
	if err != nil {
		r.err = errors.Wrapf(err, "adjacency: read header (got %d bytes)", n)
		return false
	}
	size := binary.LittleEndian.Uint32(hdr[:])
	if size > maxRecordSize {
		r.err = errors.Errorf("adjacency: record size %d too large", size)
		return false
	}
	if uint32(cap(r.buf)) < size {
		r.buf = make([]byte, size)
	}
	r.buf = r.buf[:size]
	if _, err := io.ReadFull(r.r, r.buf); err != nil {
		r.err = errors.Wrapf(err, "adjacency: read record of %d bytes", size)
		return false
	}
	if r.rec, r.err = breakpoint.UnmarshalNovelAdjacency(r.buf); r.err != nil {
		return false
	}
	return true
}

// Record returns the adjacency read by the last successful Scan.
func (r *Reader) Record() *breakpoint.NovelAdjacency { return r.rec }

// Err returns the first error encountered by Scan.
func (r *Reader) Err() error { return r.err }

// ReadAll reads every adjacency in r.
func ReadAll(r io.Reader) ([]*breakpoint.NovelAdjacency, error) {
	var adjs []*breakpoint.NovelAdjacency
	sc := NewReader(r)
	for sc.Scan() {
		adjs = append(adjs, sc.Record())
	}
	return adjs, sc.Err()
}
