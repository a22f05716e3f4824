// Package random resolves battle seeds and builds the per-run generators.
//
// A caller-supplied seed makes a run reproducible; without one a seed is
// drawn from crypto/rand and reported back so the run can still be replayed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/npc-arena/internal/platform/errors"
)

// SeedSource records where a run's seed came from.
type SeedSource string

const (
	// SeedSourceClient marks a seed supplied by the caller.
	SeedSourceClient SeedSource = "CLIENT"
	// SeedSourceServer marks a seed generated for the caller.
	SeedSourceServer SeedSource = "SERVER"
)

// Algorithm names the generator behind New. Battle spans record it.
const Algorithm = "math/rand"

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ResolveSeed returns the caller's seed when present, otherwise a fresh one.
func ResolveSeed(seed *int64) (int64, SeedSource, error) {
	if seed != nil {
		return *seed, SeedSourceClient, nil
	}
	generated, err := NewSeed()
	if err != nil {
		return 0, "", err
	}
	return generated, SeedSourceServer, nil
}

// ParseSeed parses a decimal seed. Values outside int64 report
// SEED_OUT_OF_RANGE; anything else unparsable is INVALID_ARGUMENT.
func ParseSeed(value string) (int64, error) {
	seed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err == nil {
		return seed, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, apperrors.WithMetadata(apperrors.CodeSeedOutOfRange, fmt.Sprintf("seed %q does not fit in 64 bits", value), map[string]string{"Field": "seed"})
	}
	return 0, apperrors.WithMetadata(apperrors.CodeInvalidArgument, fmt.Sprintf("seed %q is not an integer", value), map[string]string{"Field": "seed"})
}

// New returns a generator owned by a single run.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
