// Copyright 2021 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chunk implements the content-addressed chunk: a bounded payload
// plus a span, whose address is the Keccak-256 hash of the span prepended
// to the payload's BMT root. It is the addressable unit that the file
// package groups into multi-level trees.
package chunk

import (
	"fmt"
	"sync"

	"github.com/ethersphere/swarmaddr/pkg/bmt"
	"github.com/ethersphere/swarmaddr/pkg/bmtpool"
	"github.com/ethersphere/swarmaddr/pkg/span"
	"github.com/ethersphere/swarmaddr/pkg/swarm"
)

// Options configures chunk construction. A nil *Options (or the zero value)
// resolves to the Swarm defaults: 4096-byte payload capacity, 8-byte span,
// span value equal to payload length, Keccak-256 hashing.
type Options struct {
	// MaxPayloadSize is the chunk payload capacity in bytes. Must be a
	// power-of-two multiple of swarm.SectionSize. Zero selects the default.
	MaxPayloadSize int
	// SpanLength is the width of the span encoding in bytes. Must be >= 4.
	// Zero selects the default (8).
	SpanLength int
	// StartingSpanValue overrides the span value recorded for the chunk.
	// Nil selects len(payload), the value used for leaf chunks; callers
	// building intermediate chunks pass the sum of the children's spans.
	StartingSpanValue *uint64
	// HashFunc is the 32-byte hash capability used throughout. Nil selects
	// Keccak-256.
	HashFunc swarm.HashFunc
}

type resolved struct {
	maxPayload int
	spanLength int
	hashFunc   swarm.HashFunc
}

func (o *Options) resolve() (resolved, error) {
	r := resolved{
		maxPayload: swarm.DefaultMaxPayloadSize,
		spanLength: span.DefaultLength,
		hashFunc:   swarm.NewKeccakHasher(),
	}
	if o == nil {
		return r, nil
	}
	if o.MaxPayloadSize != 0 {
		r.maxPayload = o.MaxPayloadSize
	}
	if o.SpanLength != 0 {
		r.spanLength = o.SpanLength
	}
	if o.HashFunc != nil {
		r.hashFunc = o.HashFunc
	}
	if r.maxPayload <= 0 || r.maxPayload%swarm.SectionSize != 0 || !isPowerOfTwo(r.maxPayload/swarm.SectionSize) {
		return resolved{}, fmt.Errorf("%w: max payload size %d must be a power-of-two multiple of %d", ErrInvalidOptions, r.maxPayload, swarm.SectionSize)
	}
	if r.spanLength < 4 {
		return resolved{}, fmt.Errorf("%w: span length %d must be at least 4", ErrInvalidOptions, r.spanLength)
	}
	return r, nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Chunk is an immutable, content-addressed payload plus span. All derived
// values (Data, Tree, Address) are computed lazily and memoised exactly
// once; a Chunk is safe for concurrent read-only use after construction.
type Chunk struct {
	payload []byte
	spanVal []byte
	opts    resolved

	once    sync.Once
	tree    *bmt.Tree
	treeErr error
}

// New constructs a Chunk from payload, which must not exceed the resolved
// MaxPayloadSize.
func New(payload []byte, opts *Options) (*Chunk, error) {
	r, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	if len(payload) > r.maxPayload {
		return nil, fmt.Errorf("%w: payload length %d exceeds max payload size %d", ErrInvalidPayloadLength, len(payload), r.maxPayload)
	}

	spanValue := uint64(len(payload))
	if opts != nil && opts.StartingSpanValue != nil {
		spanValue = *opts.StartingSpanValue
	}
	spanBytes, err := span.Encode(spanValue, r.spanLength)
	if err != nil {
		return nil, err
	}

	return &Chunk{payload: payload, spanVal: spanBytes, opts: r}, nil
}

// Payload returns the raw, unpadded bytes the chunk was constructed with.
func (c *Chunk) Payload() []byte {
	return c.payload
}

// Span returns the encoded span bytes.
func (c *Chunk) Span() []byte {
	return c.spanVal
}

// SpanValue decodes and returns the chunk's span as an integer.
func (c *Chunk) SpanValue() (uint64, error) {
	return span.Decode(c.spanVal)
}

// Data returns the payload right-padded with zero bytes to MaxPayloadSize.
func (c *Chunk) Data() []byte {
	data := make([]byte, c.opts.maxPayload)
	copy(data, c.payload)
	return data
}

// Tree returns (and memoises) the in-chunk BMT over Data().
func (c *Chunk) Tree() (*bmt.Tree, error) {
	c.once.Do(func() {
		h := bmtpool.Get(c.opts.maxPayload, c.opts.hashFunc)
		defer bmtpool.Put(c.opts.maxPayload, h)
		if _, err := h.Write(c.payload); err != nil {
			c.treeErr = err
			return
		}
		c.tree, c.treeErr = h.Tree()
	})
	return c.tree, c.treeErr
}

// Address returns H(span||bmt_root(Data())), the chunk's content address.
func (c *Chunk) Address() (swarm.Address, error) {
	t, err := c.Tree()
	if err != nil {
		return swarm.Address{}, err
	}
	digest, err := c.opts.hashFunc(c.spanVal, t.Root())
	if err != nil {
		return swarm.Address{}, err
	}
	return swarm.NewAddress(digest), nil
}

// InclusionProof returns the sister-segment proof for the segmentIndex-th
// 32-byte segment of the unpadded payload.
func (c *Chunk) InclusionProof(segmentIndex int) (bmt.Proof, error) {
	t, err := c.Tree()
	if err != nil {
		return bmt.Proof{}, err
	}
	return t.InclusionProof(segmentIndex, len(c.payload))
}

// HashFunc returns the hash capability this chunk (and its tree) was built
// with, so callers deriving sibling chunks can reuse it.
func (c *Chunk) HashFunc() swarm.HashFunc {
	return c.opts.hashFunc
}

// MaxPayloadSize returns the payload capacity this chunk was built with.
func (c *Chunk) MaxPayloadSize() int {
	return c.opts.maxPayload
}
