// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package file

import (
	"fmt"

	"github.com/ethersphere/swarmaddr/pkg/chunk"
	"github.com/ethersphere/swarmaddr/pkg/log"
	"github.com/ethersphere/swarmaddr/pkg/span"
	"github.com/ethersphere/swarmaddr/pkg/swarm"
)

// Options configures the chunked-file builder. A nil *Options resolves to
// the Swarm defaults: 4096-byte chunks, 128-way branching, 8-byte spans,
// Keccak-256 hashing and no logging.
type Options struct {
	// MaxPayloadSize is the leaf and intermediate chunk payload capacity in
	// bytes. Zero selects the default (4096). Determines the branching
	// factor: MaxPayloadSize / swarm.SectionSize.
	MaxPayloadSize int
	// SpanLength is the width of the span encoding in bytes. Zero selects
	// the default (8).
	SpanLength int
	// HashFunc is the 32-byte hash capability used throughout. Nil selects
	// Keccak-256.
	HashFunc swarm.HashFunc
	// Logger receives optional build-time diagnostics: the creation and
	// absorption of carrier chunks. Nil selects log.Noop.
	Logger log.Logger
}

type resolved struct {
	maxPayload int
	spanLength int
	hashFunc   swarm.HashFunc
	logger     log.Logger
	branches   int
}

func (o *Options) resolve() (resolved, error) {
	r := resolved{
		maxPayload: swarm.DefaultMaxPayloadSize,
		spanLength: span.DefaultLength,
		hashFunc:   swarm.NewKeccakHasher(),
		logger:     log.Noop,
	}
	if o != nil {
		if o.MaxPayloadSize != 0 {
			r.maxPayload = o.MaxPayloadSize
		}
		if o.SpanLength != 0 {
			r.spanLength = o.SpanLength
		}
		if o.HashFunc != nil {
			r.hashFunc = o.HashFunc
		}
		if o.Logger != nil {
			r.logger = o.Logger
		}
	}
	if r.maxPayload <= 0 || r.maxPayload%swarm.SectionSize != 0 {
		return resolved{}, fmt.Errorf("%w: max payload size %d must be a multiple of %d", ErrInvalidOptions, r.maxPayload, swarm.SectionSize)
	}
	branches := r.maxPayload / swarm.SectionSize
	if branches&(branches-1) != 0 {
		return resolved{}, fmt.Errorf("%w: branching factor %d must be a power of two", ErrInvalidOptions, branches)
	}
	r.branches = branches
	return r, nil
}

func (r resolved) chunkOptions(startingSpanValue *uint64) *chunk.Options {
	return &chunk.Options{
		MaxPayloadSize:    r.maxPayload,
		SpanLength:        r.spanLength,
		StartingSpanValue: startingSpanValue,
		HashFunc:          r.hashFunc,
	}
}
