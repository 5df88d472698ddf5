// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bmt

import (
	"fmt"

	"github.com/ethersphere/swarmaddr/pkg/swarm"
)

// Proof is the sister-segment path inside one chunk's BMT for a single
// 32-byte segment, sufficient (together with the chunk's span) to
// recompute the chunk's content address.
type Proof struct {
	SisterSegments [][]byte
}

// InclusionProof returns the sister-segment path for the segmentIndex-th
// data segment. segmentIndex*SectionSize must lie within payloadLength, the
// length of the unpadded payload backing the tree: indices into the
// zero-padding region are not provable.
func (t *Tree) InclusionProof(segmentIndex, payloadLength int) (Proof, error) {
	if err := swarm.ValidateSegmentIndex(segmentIndex, payloadLength); err != nil {
		return Proof{}, fmt.Errorf("%w: %w", ErrSegmentIndexOutOfRange, err)
	}

	idx := segmentIndex
	sisters := make([][]byte, 0, t.Depth())
	for level := 0; level < t.Depth(); level++ {
		var sisterIndex int
		if idx%2 == 0 {
			sisterIndex = idx + 1
		} else {
			sisterIndex = idx - 1
		}
		sisters = append(sisters, t.levels[level][sisterIndex])
		idx >>= 1
	}
	return Proof{SisterSegments: sisters}, nil
}

// RootFromProof reconstructs a BMT root from a sister-segment proof, the
// proven segment's raw 32 bytes and its index within the chunk (0 being the
// leftmost segment of the unpadded payload).
func RootFromProof(proof Proof, proveSegment []byte, proveIndex int, hash swarm.HashFunc) ([]byte, error) {
	h := proveSegment
	idx := proveIndex
	var err error
	for _, sister := range proof.SisterSegments {
		if idx%2 == 0 {
			h, err = hash(h, sister)
		} else {
			h, err = hash(sister, h)
		}
		if err != nil {
			return nil, err
		}
		idx >>= 1
	}
	return h, nil
}
