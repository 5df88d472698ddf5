// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bmt

import (
	"fmt"

	"github.com/ethersphere/swarmaddr/pkg/swarm"
)

// Tree is the complete in-chunk Merkle tree over a zero-padded chunk
// payload, recorded leaves-first. Levels[0] holds the SectionSize-sized
// segments of the padded data; the last level holds exactly one segment,
// the BMT root.
type Tree struct {
	segmentSize int
	levels      [][][]byte
}

// BuildTree hashes data (which must already be zero-padded to a power-of-two
// multiple of segmentSize) into a balanced binary tree, repeatedly hashing
// adjacent segment pairs until a single root segment remains.
func BuildTree(data []byte, segmentSize int, hash swarm.HashFunc) (*Tree, error) {
	if segmentSize <= 0 || len(data) == 0 || len(data)%segmentSize != 0 || !isPowerOfTwo(len(data)/segmentSize) {
		return nil, fmt.Errorf("%w: got %d bytes with segment size %d", ErrInvalidDataLength, len(data), segmentSize)
	}

	leaves := make([][]byte, len(data)/segmentSize)
	for i := range leaves {
		leaves[i] = data[i*segmentSize : (i+1)*segmentSize]
	}

	levels := [][][]byte{leaves}
	cur := leaves
	for len(cur) > 1 {
		next := make([][]byte, len(cur)/2)
		for j := range next {
			h, err := hash(cur[2*j], cur[2*j+1])
			if err != nil {
				return nil, err
			}
			next[j] = h
		}
		levels = append(levels, next)
		cur = next
	}

	return &Tree{segmentSize: segmentSize, levels: levels}, nil
}

// Root returns the BMT root: the single segment of the final level.
func (t *Tree) Root() []byte {
	last := t.levels[len(t.levels)-1]
	return last[0]
}

// Depth returns the number of sister segments a full inclusion proof
// carries: log2(len(levels[0])).
func (t *Tree) Depth() int {
	return len(t.levels) - 1
}

// Levels exposes the recorded levels, leaves first, root last. Callers must
// not mutate the returned slices.
func (t *Tree) Levels() [][][]byte {
	return t.levels
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
