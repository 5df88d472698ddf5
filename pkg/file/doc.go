// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package file implements the chunked-file builder: splitting an arbitrary
// payload into leaf chunks, folding chunk addresses into parent chunks
// level by level, and handling the "carrier chunk" promotion that keeps the
// file address well-defined when the leaf (or any intermediate) chunk count
// isn't an exact multiple of the branching factor.
//
// It also implements the file-level segment inclusion proof and its
// verifier, and the position resolver that maps a payload segment index to
// its location in the produced tree.
package file
