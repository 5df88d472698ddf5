// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package file

import (
	"fmt"
	"io"

	"github.com/ethersphere/langos"

	"github.com/ethersphere/swarmaddr/pkg/chunk"
)

// PayloadReader reconstructs the original payload bytes of an already-built
// ChunkedFile. Unlike the reference client's joiner, it never fetches a
// remote chunk: the full leaf sequence is already resident in memory, so
// ReadAt is a direct slice of the covering leaf's own payload.
type PayloadReader struct {
	leaves     []*chunk.Chunk
	maxPayload int
	total      int64
	cursor     int64
}

// NewPayloadReader returns a PayloadReader over file's reconstructed
// payload. file must have been produced by New; it is read, never mutated.
func NewPayloadReader(file *ChunkedFile) *PayloadReader {
	total, err := file.TotalLength()
	if err != nil {
		total = 0
	}
	return &PayloadReader{
		leaves:     file.LeafChunks(),
		maxPayload: file.opts.maxPayload,
		total:      int64(total),
	}
}

// ReadAt implements io.ReaderAt.
func (r *PayloadReader) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("file: negative ReadAt offset %d", off)
	}
	if off >= r.total {
		return 0, io.EOF
	}

	n := 0
	for n < len(p) {
		pos := off + int64(n)
		if pos >= r.total {
			break
		}
		leafIndex := int(pos / int64(r.maxPayload))
		if leafIndex >= len(r.leaves) {
			break
		}
		offsetInLeaf := int(pos % int64(r.maxPayload))
		payload := r.leaves[leafIndex].Payload()
		if offsetInLeaf >= len(payload) {
			break
		}
		n += copy(p[n:], payload[offsetInLeaf:])
	}

	var err error
	if n < len(p) {
		err = io.EOF
	}
	return n, err
}

// Read implements io.Reader, advancing an internal cursor.
func (r *PayloadReader) Read(p []byte) (int, error) {
	n, err := r.ReadAt(p, r.cursor)
	r.cursor += int64(n)
	return n, err
}

// Seek implements io.Seeker.
func (r *PayloadReader) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = r.cursor + offset
	case io.SeekEnd:
		abs = r.total + offset
	default:
		return 0, fmt.Errorf("file: invalid whence %d", whence)
	}
	if abs < 0 {
		return 0, fmt.Errorf("file: negative seek position %d", abs)
	}
	r.cursor = abs
	return abs, nil
}

// NewPrefetchingPayloadReader wraps a PayloadReader with langos read-ahead
// buffering of peekSize bytes, matching the reference client's pairing of
// its joiner with langos for sequential consumers.
func NewPrefetchingPayloadReader(file *ChunkedFile, peekSize int) *langos.Langos {
	return langos.NewLangos(NewPayloadReader(file), peekSize)
}
