// Copyright 2021 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bmt

import (
	"github.com/ethersphere/swarmaddr/pkg/swarm"
)

var _ Hash = (*Hasher)(nil)

// Hasher is the default, pool-friendly implementation of Hash. It buffers
// the payload written to it and defers tree construction to Tree, which
// keeps Write allocation-free and makes the Hasher trivially resettable.
type Hasher struct {
	maxPayload  int
	segmentSize int
	hashFunc    swarm.HashFunc

	buf  []byte
	size int

	tree *Tree
}

// NewHasher returns a Hasher with the given payload capacity (must be a
// power-of-two multiple of swarm.SectionSize) and hash capability.
func NewHasher(maxPayload int, hashFunc swarm.HashFunc) *Hasher {
	return &Hasher{
		maxPayload:  maxPayload,
		segmentSize: swarm.SectionSize,
		hashFunc:    hashFunc,
		buf:         make([]byte, maxPayload),
	}
}

// SetHashFunc rebinds the hash capability a pooled Hasher builds its tree
// with. A Hasher's buffer capacity is reusable across any caller requesting
// the same MaxPayloadSize, but the hash function is request-specific and
// must be rebound on every retrieval from a pool rather than trusted from
// whenever the Hasher happened to be allocated.
func (h *Hasher) SetHashFunc(hashFunc swarm.HashFunc) {
	h.hashFunc = hashFunc
	h.tree = nil
}

// Write accumulates payload bytes, truncating silently at the Hasher's
// capacity the way the reference hasher does for a single chunk's worth of
// data; callers that need validation should check length before writing
// (see pkg/chunk.New).
func (h *Hasher) Write(b []byte) (int, error) {
	n := copy(h.buf[h.size:], b)
	h.size += n
	h.tree = nil
	return n, nil
}

// Reset prepares the Hasher for a new payload.
func (h *Hasher) Reset() {
	h.size = 0
	h.tree = nil
}

// Tree returns the full in-chunk tree over the bytes written so far,
// zero-padded to capacity. The result is memoised until the next Write or
// Reset.
func (h *Hasher) Tree() (*Tree, error) {
	if h.tree != nil {
		return h.tree, nil
	}
	padded := make([]byte, h.maxPayload)
	copy(padded, h.buf[:h.size])
	t, err := BuildTree(padded, h.segmentSize, h.hashFunc)
	if err != nil {
		return nil, err
	}
	h.tree = t
	return t, nil
}
