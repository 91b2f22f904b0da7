//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package calibrate

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/zenkuro/swanky/fancy"
	"github.com/zenkuro/swanky/pkg/math"
)

// Entry names the accuracy tier and the prime counts to calibrate.
type Entry struct {
	Accuracy string `toml:"accuracy"`
	Primes   []int  `toml:"primes"`
}

// Profile specifies a calibration run. Each entry is sampled Batches
// times with Samples uniform values per batch.
type Profile struct {
	Samples    int     `toml:"samples"`
	Batches    int     `toml:"batches"`
	Confidence float64 `toml:"confidence"`
	Entries    []Entry `toml:"entries"`
}

// DefaultProfile returns a profile that calibrates every tier with
// the prime counts whose composite fits into 32 bits.
func DefaultProfile() *Profile {
	profile := &Profile{
		Samples:    1000,
		Batches:    10,
		Confidence: 0.95,
	}
	for _, acc := range fancy.Accuracies() {
		entry := Entry{
			Accuracy: string(acc),
		}
		for _, n := range fancy.SupportedPrimes(acc) {
			if math.Product(math.Primes[:n]) <= math.MaxUint32 {
				entry.Primes = append(entry.Primes, n)
			}
		}
		profile.Entries = append(profile.Entries, entry)
	}
	return profile
}

// LoadProfile loads the calibration profile from the TOML file path.
// Unset parameters get their default values.
func LoadProfile(path string) (*Profile, error) {
	def := DefaultProfile()
	profile := &Profile{
		Samples:    def.Samples,
		Batches:    def.Batches,
		Confidence: def.Confidence,
	}
	md, err := toml.DecodeFile(path, profile)
	if err != nil {
		return nil, errors.Wrapf(err, "profile %s", path)
	}
	if !md.IsDefined("entries") {
		profile.Entries = def.Entries
	}
	if err := profile.Validate(); err != nil {
		return nil, errors.Wrapf(err, "profile %s", path)
	}
	return profile, nil
}

// Validate checks the profile parameters.
func (p *Profile) Validate() error {
	if p.Samples <= 0 {
		return errors.Newf("invalid samples %d", p.Samples)
	}
	if p.Batches < 2 {
		return errors.Newf("invalid batches %d: need at least 2", p.Batches)
	}
	if p.Confidence <= 0 || p.Confidence >= 1 {
		return errors.Newf("invalid confidence %v", p.Confidence)
	}
	widest, err := math.PrimesWithWidth(math.MaxWidth)
	if err != nil {
		return err
	}
	for _, e := range p.Entries {
		acc, err := fancy.ParseAccuracy(e.Accuracy)
		if err != nil {
			return err
		}
		for _, n := range e.Primes {
			if _, err := fancy.MixedRadixModuli(acc, n); err != nil {
				return err
			}
			if n > len(widest) {
				return errors.Newf("%d primes: composite exceeds %d bits",
					n, math.MaxWidth)
			}
		}
	}
	return nil
}
