// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bmtpool provides easy access to BMT hashers managed as a resource
// pool, keyed by payload capacity so that callers using non-default
// MaxPayloadSize options do not contend with the default-sized pool.
package bmtpool

import (
	"sync"

	"github.com/ethersphere/swarmaddr/pkg/bmt"
	"github.com/ethersphere/swarmaddr/pkg/swarm"
)

// Pool pools bmt.Hasher instances of one fixed payload capacity. The pooled
// resource is the capacity-sized write buffer only; the hash function is
// rebound on every Get, so a single capacity-keyed pool is safe to share
// across callers that inject different swarm.HashFunc values.
type Pool struct {
	p sync.Pool
}

var pools sync.Map // map[int]*Pool

// Get returns a bmt.Hasher of the given payload capacity from the shared
// pool, creating the pool for that capacity on first use, and binds it to
// hashFunc for this retrieval.
func Get(maxPayload int, hashFunc swarm.HashFunc) *bmt.Hasher {
	v, _ := pools.LoadOrStore(maxPayload, newPool(maxPayload))
	h := v.(*Pool).p.Get().(*bmt.Hasher)
	h.SetHashFunc(hashFunc)
	return h
}

// Put returns a bmt.Hasher to its capacity-keyed pool after resetting it.
func Put(maxPayload int, h *bmt.Hasher) {
	h.Reset()
	v, ok := pools.Load(maxPayload)
	if !ok {
		return
	}
	v.(*Pool).p.Put(h)
}

func newPool(maxPayload int) *Pool {
	pl := &Pool{}
	pl.p.New = func() interface{} {
		return bmt.NewHasher(maxPayload, nil)
	}
	return pl
}
