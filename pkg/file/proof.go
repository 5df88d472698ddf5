// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package file

import (
	"fmt"

	"github.com/ethersphere/swarmaddr/pkg/bmt"
	"github.com/ethersphere/swarmaddr/pkg/span"
	"github.com/ethersphere/swarmaddr/pkg/swarm"
)

// Record is one step of a file-level InclusionProof: the sister segments
// and span of a single chunk on the path from a payload segment to the
// file's root chunk, plus the index that segment occupies inside that
// chunk's own data. The index travels with the proof because, once a
// carrier chunk has skipped one or more levels, it can no longer be
// recovered from the segment index alone without replaying the same
// tree the prover built.
type Record struct {
	Span           []byte
	SisterSegments [][]byte
	LocalIndex     int
}

// InclusionProof is the file-level counterpart of bmt.Proof: a chain of
// per-chunk records that, combined with the leaf segment's own bytes,
// reconstructs the file's address.
type InclusionProof struct {
	Records []Record
}

// InclusionProof builds the proof that the segmentIndex-th 32-byte segment
// of the payload is part of this file.
func (f *ChunkedFile) InclusionProof(segmentIndex int) (InclusionProof, error) {
	total, err := f.TotalLength()
	if err != nil {
		return InclusionProof{}, err
	}
	totalSegments := int((total + swarm.SectionSize - 1) / swarm.SectionSize)
	if segmentIndex < 0 || segmentIndex >= totalSegments {
		return InclusionProof{}, fmt.Errorf("%w: segment %d of %d", ErrSegmentIndexOutOfRange, segmentIndex, totalSegments)
	}

	branches := f.branches()
	level := 0
	index := segmentIndex

	var records []Record
	for level < len(f.levels)-1 {
		chunks := f.levels[level]
		localIndex := index % branches
		chunkForProof := index / branches

		if chunkForProof == len(chunks) {
			mergeLevel, err := f.carrierMergeLevel(level)
			if err != nil {
				return InclusionProof{}, err
			}
			level = mergeLevel
			chunks = f.levels[level]
			chunkForProof = len(chunks) - 1
		}

		target := chunks[chunkForProof]
		proof, err := target.InclusionProof(localIndex)
		if err != nil {
			return InclusionProof{}, fmt.Errorf("file: building chunk proof at level %d: %w", level, err)
		}
		records = append(records, Record{
			Span:           target.Span(),
			SisterSegments: proof.SisterSegments,
			LocalIndex:     localIndex,
		})

		index = chunkForProof
		level++
	}

	root := f.RootChunk()
	rootProof, err := root.InclusionProof(index)
	if err != nil {
		return InclusionProof{}, fmt.Errorf("file: building root chunk proof: %w", err)
	}
	records = append(records, Record{
		Span:           root.Span(),
		SisterSegments: rootProof.SisterSegments,
		LocalIndex:     index,
	})

	return InclusionProof{Records: records}, nil
}

// carrierMergeLevel scans forward from level (where a pending carrier was
// detected) to the level at which nextLevel absorbed it, returning the
// index of the level it lands in.
func (f *ChunkedFile) carrierMergeLevel(level int) (int, error) {
	t := level
	for {
		if t >= len(f.carrierMerged) {
			return 0, fmt.Errorf("file: carrier never merged past level %d (inconsistent tree)", level)
		}
		if f.carrierIn[t] == nil {
			return 0, fmt.Errorf("file: no carrier pending at level %d (inconsistent tree)", level)
		}
		if f.carrierMerged[t] {
			return t + 1, nil
		}
		t++
	}
}

// FileAddressFromInclusionProof reconstructs the file address that proof
// attests proveSegment is part of. The position the chain starts from in
// each chunk is taken from the records' LocalIndex fields. The caller
// supplies the leaf segment being proven as its full 32 bytes, with a short
// final segment right-padded with zeros the way the chunk's BMT pads it.
func FileAddressFromInclusionProof(proof InclusionProof, proveSegment []byte, hashFunc swarm.HashFunc) (swarm.Address, error) {
	if len(proof.Records) == 0 {
		return swarm.Address{}, ErrEmptyProof
	}

	h := proveSegment
	for i, rec := range proof.Records {
		root, err := bmt.RootFromProof(bmt.Proof{SisterSegments: rec.SisterSegments}, h, rec.LocalIndex, hashFunc)
		if err != nil {
			return swarm.Address{}, fmt.Errorf("file: reconstructing record %d: %w", i, err)
		}
		digest, err := hashFunc(rec.Span, root)
		if err != nil {
			return swarm.Address{}, err
		}
		h = digest
	}
	return swarm.NewAddress(h), nil
}

// TotalLengthFromInclusionProof decodes the payload length attested by a
// proof's final (root) record, without requiring the built tree.
func TotalLengthFromInclusionProof(proof InclusionProof) (uint64, error) {
	if len(proof.Records) == 0 {
		return 0, ErrEmptyProof
	}
	v, err := span.Decode(proof.Records[len(proof.Records)-1].Span)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSpan, err)
	}
	return v, nil
}
