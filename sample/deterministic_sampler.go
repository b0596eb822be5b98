// Package sample holds the sampler used to bound the volume of section
// events the publisher sends. Sampling decisions are deterministic on the
// key they're given, so the same section key always gets the same answer.
package sample

import (
	"crypto/sha1"
	"errors"
	"math"
)

// Sampler is the decision interface the publisher consults before
// sending a section event.
type Sampler interface {
	Sample(key string) bool
	GetSampleRate() int
}

// DeterministicSampler keeps roughly 1/N of keys by hashing them and
// comparing against a fixed upper bound, so the keep/drop decision for a
// given key is stable across processes and restarts.
type DeterministicSampler struct {
	sampleRate int
	upperBound uint32
}

// NewDeterministicSampler returns a sampler keeping 1 in sampleRate keys.
// A rate of 1 keeps everything.
func NewDeterministicSampler(sampleRate uint) (*DeterministicSampler, error) {
	if sampleRate < 1 {
		return nil, errors.New("sample rate must be >= 1")
	}
	// the largest possible hash value divided by the sample rate; keys
	// hashing at or below it are kept
	return &DeterministicSampler{
		sampleRate: int(sampleRate),
		upperBound: math.MaxUint32 / uint32(sampleRate),
	}, nil
}

func bytesToUint32be(b []byte) uint32 {
	return uint32(b[3]) | (uint32(b[2]) << 8) | (uint32(b[1]) << 16) | (uint32(b[0]) << 24)
}

// Sample returns whether an event keyed by key should be kept.
func (ds *DeterministicSampler) Sample(key string) bool {
	sum := sha1.Sum([]byte(key))
	v := bytesToUint32be(sum[:4])
	return v <= ds.upperBound
}

// GetSampleRate returns the rate the sampler was built with.
func (ds *DeterministicSampler) GetSampleRate() int {
	return ds.sampleRate
}
