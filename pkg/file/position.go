// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package file

import "github.com/ethersphere/swarmaddr/pkg/swarm"

// Position identifies a chunk's coordinates in a ChunkedFile's level stack.
type Position struct {
	Level      int
	ChunkIndex int
}

// PositionOfSegment maps a payload segment index to the (level, chunk
// index) of the chunk it is directly hashed in, analytically accounting
// for carrier promotion without walking a built tree. totalLength and
// maxPayloadSize are both in bytes; segmentIndex counts swarm.SectionSize
// (32-byte) segments from the start of the payload.
//
// Only the final leaf can ever be popped as a carrier (popCarrier always
// removes the rightmost chunk of a level), and whether it is popped depends
// solely on the leaf count modulo the branching factor, never on whether
// that leaf happens to be full-size. Every segment belonging to an earlier
// leaf therefore always resolves to a dense, unpromoted level-0 chunk; only
// segments inside the final leaf may require replaying the promotion chain.
func PositionOfSegment(segmentIndex int, totalLength uint64, maxPayloadSize int) (Position, error) {
	if maxPayloadSize <= 0 || maxPayloadSize%swarm.SectionSize != 0 {
		return Position{}, ErrInvalidOptions
	}
	branches := maxPayloadSize / swarm.SectionSize

	totalSegments := 0
	if totalLength > 0 {
		totalSegments = int((totalLength + uint64(swarm.SectionSize) - 1) / uint64(swarm.SectionSize))
	}
	if segmentIndex < 0 || (totalSegments > 0 && segmentIndex >= totalSegments) {
		return Position{}, ErrSegmentIndexOutOfRange
	}

	numLeaves := 1
	if totalLength > 0 {
		numLeaves = int((totalLength + uint64(maxPayloadSize) - 1) / uint64(maxPayloadSize))
	}

	leafIndex := segmentIndex / branches
	if leafIndex < numLeaves-1 {
		// Not the final leaf: always dense, never promoted.
		return Position{Level: 0, ChunkIndex: leafIndex}, nil
	}

	// The final leaf. Replay the same count-driven carrier-pop/absorb
	// sequence the builder applies, level by level, using only chunk
	// counts (the content of every other chunk at a level is irrelevant to
	// where the carrier itself, unchanged, eventually lands).
	count := numLeaves
	if !(count > 1 && count%branches == 1) {
		// The last leaf is never popped as a carrier: it is simply the
		// final dense level-0 chunk.
		return Position{Level: 0, ChunkIndex: numLeaves - 1}, nil
	}
	levelCount := count - 1 // level 0's stored (post-pop) chunk count

	level := 0
	for i := 0; i < numLeaves; i++ { // finite: levelCount shrinks by >= branches>=2 each pass
		folded := (levelCount + branches - 1) / branches
		if folded%branches != 0 {
			return Position{Level: level + 1, ChunkIndex: folded}, nil
		}
		levelCount = folded
		level++
	}
	return Position{}, ErrInvalidOptions
}
