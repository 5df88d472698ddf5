// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bmt implements the in-chunk Binary Merkle Tree: a fixed-depth
// balanced tree over the 32-byte segments of a zero-padded chunk payload,
// together with sister-segment inclusion proofs and their verifier.
//
// Unlike a streaming hasher that processes segments as they arrive, Tree
// keeps every level resident so that an inclusion proof for any segment can
// be produced after the fact without re-hashing.
package bmt
