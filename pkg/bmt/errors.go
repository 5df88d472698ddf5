// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bmt

import "errors"

var (
	// ErrInvalidDataLength is returned when BuildTree is given a buffer
	// whose length is not a power-of-two multiple of the segment size.
	ErrInvalidDataLength = errors.New("bmt: data length must be a power-of-two multiple of the segment size")
	// ErrSegmentIndexOutOfRange is returned by Tree.InclusionProof when the
	// requested segment index does not address a byte within the unpadded
	// payload. The returned error also wraps swarm.ErrSegmentIndexOutOfRange.
	ErrSegmentIndexOutOfRange = errors.New("bmt: segment index out of range")
)
