// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package file

import (
	"fmt"

	"github.com/ethersphere/swarmaddr/pkg/chunk"
	"github.com/ethersphere/swarmaddr/pkg/log"
	"github.com/ethersphere/swarmaddr/pkg/swarm"
)

// ChunkedFile is the result of splitting a payload into content-addressed
// chunks and folding their addresses into a single root chunk.
//
// levels[0] holds the leaf chunks with any carrier popped off; levels[i+1]
// is produced from levels[i] by grouping it into branches-wide runs and
// hashing each run into a parent chunk, absorbing a pending carrier chunk
// along the way. levels[len(levels)-1] always holds exactly the root chunk.
type ChunkedFile struct {
	leaves []*chunk.Chunk

	levels        [][]*chunk.Chunk
	carrierIn     []*chunk.Chunk
	carrierMerged []bool

	opts resolved
}

// New splits payload into leaf chunks and folds them into a ChunkedFile. An
// empty payload yields a single, empty leaf chunk that is also the root.
func New(payload []byte, o *Options) (*ChunkedFile, error) {
	opts, err := o.resolve()
	if err != nil {
		return nil, err
	}

	leaves, err := leafChunking(payload, opts)
	if err != nil {
		return nil, err
	}

	level, carrier := popCarrier(leaves, opts.branches)
	levels := [][]*chunk.Chunk{level}
	var carrierIn []*chunk.Chunk
	var carrierMerged []bool

	for len(level) != 1 || carrier != nil {
		carrierIn = append(carrierIn, carrier)

		next, nextCarrier, err := nextLevel(level, carrier, opts)
		if err != nil {
			return nil, err
		}
		merged := carrier != nil && nextCarrier == nil
		carrierMerged = append(carrierMerged, merged)

		if merged {
			opts.logger.Log(log.VerbosityDebug, "carrier absorbed", "level", len(levels))
		} else if carrier == nil && nextCarrier != nil {
			opts.logger.Log(log.VerbosityDebug, "carrier created", "level", len(levels))
		}

		levels = append(levels, next)
		level = next
		carrier = nextCarrier
	}

	return &ChunkedFile{
		leaves:        leaves,
		levels:        levels,
		carrierIn:     carrierIn,
		carrierMerged: carrierMerged,
		opts:          opts,
	}, nil
}

func leafChunking(payload []byte, opts resolved) ([]*chunk.Chunk, error) {
	if len(payload) == 0 {
		c, err := chunk.New(nil, opts.chunkOptions(nil))
		if err != nil {
			return nil, err
		}
		return []*chunk.Chunk{c}, nil
	}

	var leaves []*chunk.Chunk
	for offset := 0; offset < len(payload); offset += opts.maxPayload {
		end := offset + opts.maxPayload
		if end > len(payload) {
			end = len(payload)
		}
		c, err := chunk.New(payload[offset:end], opts.chunkOptions(nil))
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, c)
	}
	return leaves, nil
}

// popCarrier removes and returns the rightmost chunk of level when doing so
// is required to keep the next fold well-defined: a level of more than one
// chunk whose count is exactly one more than a multiple of branches cannot
// be folded into uniform branches-wide groups without leaving an orphan.
func popCarrier(level []*chunk.Chunk, branches int) ([]*chunk.Chunk, *chunk.Chunk) {
	if len(level) > 1 && len(level)%branches == 1 {
		return level[:len(level)-1], level[len(level)-1]
	}
	return level, nil
}

// nextLevel folds level into parent chunks of up to branches children each,
// then resolves carrier promotion: an incoming carrier is absorbed into the
// new level if doing so restores a non-orphan count, otherwise it continues
// to propagate; with no incoming carrier, a fresh one is popped if needed.
func nextLevel(level []*chunk.Chunk, carrier *chunk.Chunk, opts resolved) ([]*chunk.Chunk, *chunk.Chunk, error) {
	next := make([]*chunk.Chunk, 0, (len(level)+opts.branches-1)/opts.branches)
	for i := 0; i < len(level); i += opts.branches {
		end := i + opts.branches
		if end > len(level) {
			end = len(level)
		}
		parent, err := buildParent(level[i:end], opts)
		if err != nil {
			return nil, nil, err
		}
		next = append(next, parent)
	}
	if len(next) == 0 {
		return nil, nil, fmt.Errorf("%w: folding a level of %d chunks", ErrEmptyLevel, len(level))
	}

	if carrier != nil {
		if len(next)%opts.branches != 0 {
			return append(next, carrier), nil, nil
		}
		return next, carrier, nil
	}

	trimmed, newCarrier := popCarrier(next, opts.branches)
	return trimmed, newCarrier, nil
}

func buildParent(group []*chunk.Chunk, opts resolved) (*chunk.Chunk, error) {
	payload := make([]byte, 0, len(group)*swarm.SectionSize)
	var spanSum uint64
	for _, c := range group {
		addr, err := c.Address()
		if err != nil {
			return nil, fmt.Errorf("file: hashing child chunk: %w", err)
		}
		payload = append(payload, addr.Bytes()...)

		sv, err := c.SpanValue()
		if err != nil {
			return nil, fmt.Errorf("file: reading child span: %w", err)
		}
		spanSum += sv
	}
	return chunk.New(payload, opts.chunkOptions(&spanSum))
}

// LeafChunks returns the full, untrimmed sequence of leaf chunks the
// payload was split into, including a chunk later promoted to carrier.
func (f *ChunkedFile) LeafChunks() []*chunk.Chunk {
	return f.leaves
}

// RootChunk returns the single chunk at the top of the tree.
func (f *ChunkedFile) RootChunk() *chunk.Chunk {
	root := f.levels[len(f.levels)-1]
	return root[0]
}

// Levels returns the per-level chunk sequence, leaves first (carrier
// already popped off) and the root chunk last.
func (f *ChunkedFile) Levels() [][]*chunk.Chunk {
	return f.levels
}

// Address returns the file's content address: the root chunk's address.
func (f *ChunkedFile) Address() (swarm.Address, error) {
	return f.RootChunk().Address()
}

// Span returns the root chunk's span, encoding the total payload length.
func (f *ChunkedFile) Span() []byte {
	return f.RootChunk().Span()
}

// TotalLength decodes and returns the total payload length in bytes.
func (f *ChunkedFile) TotalLength() (uint64, error) {
	return f.RootChunk().SpanValue()
}

func (f *ChunkedFile) branches() int {
	return f.opts.branches
}
