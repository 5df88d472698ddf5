// Copyright 2021 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chunk

import "errors"

var (
	// ErrInvalidPayloadLength is returned when a payload exceeds the
	// configured MaxPayloadSize.
	ErrInvalidPayloadLength = errors.New("chunk: invalid payload length")
	// ErrInvalidOptions is returned when an Options value fails validation.
	ErrInvalidOptions = errors.New("chunk: invalid options")
)
