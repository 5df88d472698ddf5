// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package file

import "errors"

var (
	// ErrInvalidOptions is returned when an Options value fails validation.
	ErrInvalidOptions = errors.New("file: invalid options")
	// ErrSegmentIndexOutOfRange is returned when a requested segment index
	// does not fall within the file's payload.
	ErrSegmentIndexOutOfRange = errors.New("file: segment index out of range")
	// ErrEmptyProof is returned when an inclusion proof has no records.
	ErrEmptyProof = errors.New("file: inclusion proof has no records")
	// ErrInvalidSpan is returned when a proof record's span cannot be decoded.
	ErrInvalidSpan = errors.New("file: invalid span in proof record")
	// ErrEmptyLevel is returned if folding ever produces a level with no
	// chunks. It should be unreachable given popCarrier and nextLevel's own
	// invariants (a level is never folded down to zero chunks), and is
	// asserted defensively rather than ever allowed to panic or silently
	// index out of range.
	ErrEmptyLevel = errors.New("file: folded level has no chunks")
)
