package core

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSeed reports seed text that does not follow the v0-v1-v2-v3 format.
var ErrInvalidSeed = errors.New("invalid seed")

const (
	seedWords     = 4
	seedMinDigits = 6
	seedMaxDigits = 10
	seedSeparator = "-"
)

// Seed holds the four 32-bit generator words. Its text form is four decimal
// segments of 6 to 10 digits joined by dashes, e.g. 2885257376-2099986581-1044521005-723764510.
type Seed [seedWords]uint32

// ParseSeed decodes seed text. Segments shorter than six digits are zero padded
// in canonical form, so any other leading zero is rejected to keep
// ParseSeed(s).String() == s for every accepted s.
func ParseSeed(s string) (Seed, error) {
	parts := strings.Split(s, seedSeparator)
	if len(parts) != seedWords {
		return Seed{}, fmt.Errorf("%w: want %d segments, got %d", ErrInvalidSeed, seedWords, len(parts))
	}

	var seed Seed
	for i, part := range parts {
		if n := len(part); n < seedMinDigits || n > seedMaxDigits {
			return Seed{}, fmt.Errorf("%w: segment %d has %d digits", ErrInvalidSeed, i+1, n)
		}
		for _, c := range part {
			if c < '0' || c > '9' {
				return Seed{}, fmt.Errorf("%w: segment %d contains %q", ErrInvalidSeed, i+1, c)
			}
		}
		v, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return Seed{}, fmt.Errorf("%w: segment %d overflows 32 bits", ErrInvalidSeed, i+1)
		}
		if formatWord(uint32(v)) != part {
			return Seed{}, fmt.Errorf("%w: segment %d is not canonical", ErrInvalidSeed, i+1)
		}
		seed[i] = uint32(v)
	}
	return seed, nil
}

// String encodes the seed as v0-v1-v2-v3.
func (s Seed) String() string {
	parts := make([]string, seedWords)
	for i, v := range s {
		parts[i] = formatWord(v)
	}
	return strings.Join(parts, seedSeparator)
}

// NewEntropySeed generates a seed using crypto/rand.
func NewEntropySeed() (Seed, error) {
	var b [4 * seedWords]byte
	if _, err := crand.Read(b[:]); err != nil {
		return Seed{}, fmt.Errorf("read random seed: %w", err)
	}
	var seed Seed
	for i := range seed {
		seed[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return seed, nil
}

func formatWord(v uint32) string {
	return fmt.Sprintf("%0*d", seedMinDigits, v)
}

func (s Seed) hi() uint64 { return uint64(s[0])<<32 | uint64(s[1]) }

func (s Seed) lo() uint64 { return uint64(s[2])<<32 | uint64(s[3]) }

func seedFromHalves(hi, lo uint64) Seed {
	return Seed{uint32(hi >> 32), uint32(hi), uint32(lo >> 32), uint32(lo)}
}
