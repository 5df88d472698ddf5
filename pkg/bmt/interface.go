// Copyright 2021 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bmt

// Hash is a reusable, poolable BMT hasher. Write accumulates payload bytes
// up to its configured capacity; Tree pads the remainder with zeros and
// builds the segment tree.
//
// A Hash instance must not be used concurrently from more than one
// goroutine, but is safe to Reset and reuse sequentially.
type Hash interface {
	// Write accumulates payload bytes, up to the capacity the Hash was
	// constructed with.
	Write(b []byte) (int, error)
	// Tree returns the full in-chunk tree built from the bytes written so
	// far, zero-padded to capacity. The result is memoised until the next
	// Write or Reset.
	Tree() (*Tree, error)
	// Reset prepares the Hash for reuse with a new payload.
	Reset()
}
