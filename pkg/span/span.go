// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package span encodes and decodes the little-endian length-prefix that
// precedes every chunk's payload, pinning it to Swarm's safe-integer
// (2^53-1) cap rather than the full range of a machine word.
package span

import (
	"errors"
	"fmt"

	"github.com/ethersphere/swarmaddr/pkg/swarm"
)

// ErrInvalidSpanValue is returned when a span value is negative or exceeds
// swarm.MaxSafeSpanValue.
var ErrInvalidSpanValue = errors.New("invalid span value")

// DefaultLength is the width, in bytes, of the span Swarm chunks carry on
// the wire.
const DefaultLength = swarm.SpanSize

// Encode writes value as a little-endian integer into a zero-initialised
// buffer of length bytes. length defaults to DefaultLength when 0 is given.
func Encode(value uint64, length int) ([]byte, error) {
	if length == 0 {
		length = DefaultLength
	}
	if value > swarm.MaxSafeSpanValue {
		return nil, fmt.Errorf("span value %d exceeds max safe value %d: %w", value, uint64(swarm.MaxSafeSpanValue), ErrInvalidSpanValue)
	}
	buf := make([]byte, length)
	v := value
	for i := 0; i < length && v > 0; i++ {
		buf[i] = byte(v)
		v >>= 8
	}
	if v > 0 {
		return nil, fmt.Errorf("span value %d does not fit in %d bytes: %w", value, length, ErrInvalidSpanValue)
	}
	return buf, nil
}

// Decode reads a little-endian integer from span, failing if the decoded
// value exceeds swarm.MaxSafeSpanValue.
func Decode(span []byte) (uint64, error) {
	var v uint64
	for i := len(span) - 1; i >= 0; i-- {
		v = v<<8 | uint64(span[i])
	}
	if v > swarm.MaxSafeSpanValue {
		return 0, fmt.Errorf("decoded span value %d exceeds max safe value %d: %w", v, uint64(swarm.MaxSafeSpanValue), ErrInvalidSpanValue)
	}
	return v, nil
}
