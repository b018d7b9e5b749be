// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// NewCryptoSource returns a 64-bit Source backed by the operating system's
// cryptographically secure entropy reader. Read failures are reported by
// Uint64.
func NewCryptoSource() Source {
	return &readerSource{r: rand.Reader, numBytes: 8}
}

// NewReaderSource returns a Source that draws [bits] bits per value from [r].
// [bits] must be a multiple of 8 in [8, 64]. The source does not manage the
// lifecycle of [r]; closing or reseeding it is the caller's concern.
func NewReaderSource(r io.Reader, bits uint) (Source, error) {
	if bits == 0 || bits > 64 || bits%8 != 0 {
		return nil, fmt.Errorf("unsupported source width %d", bits)
	}
	return &readerSource{r: r, numBytes: int(bits / 8)}, nil
}

type readerSource struct {
	r        io.Reader
	numBytes int
}

func (s *readerSource) Uint64() (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(s.r, buf[8-s.numBytes:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

func (s *readerSource) Bits() uint {
	return uint(8 * s.numBytes)
}
