//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the gadget system.
package env

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/zenkuro/swanky/fancy"
	"golang.org/x/crypto/chacha20"
)

// DefaultAccuracy is the accuracy tier used when the configuration
// does not name one.
const DefaultAccuracy = fancy.Exact

// Config defines the global system configuration. It configures the
// entropy source, verbosity, and the default accuracy tier of all
// modules. Config must not be modified after being passed to any
// module.
type Config struct {
	Rand     io.Reader `toml:"-"`
	Verbose  bool      `toml:"verbose"`
	Accuracy string    `toml:"accuracy"`
	Seed     string    `toml:"seed"`
}

// LoadConfig loads the configuration from the TOML file path.
func LoadConfig(path string) (*Config, error) {
	config := new(Config)
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return config, nil
}

// Validate checks the configuration values.
func (config *Config) Validate() error {
	if _, err := config.GetAccuracy(); err != nil {
		return err
	}
	if len(config.Seed) > 0 {
		if _, err := config.seed(); err != nil {
			return err
		}
	}
	return nil
}

func (config *Config) seed() ([]byte, error) {
	key, err := hex.DecodeString(config.Seed)
	if err != nil {
		return nil, errors.Wrap(err, "invalid seed")
	}
	if len(key) != chacha20.KeySize {
		return nil, errors.Newf("invalid seed length %d, expected %d",
			len(key), chacha20.KeySize)
	}
	return key, nil
}

// GetRandom returns the source of entropy. If Rand is set, it is
// returned as is. If Seed is set, the function returns a
// deterministic ChaCha20 keystream keyed with the seed. Otherwise
// the system entropy source is used.
func (config *Config) GetRandom() io.Reader {
	if config.Rand != nil {
		return config.Rand
	}
	if len(config.Seed) > 0 {
		key, err := config.seed()
		if err != nil {
			panic(err)
		}
		var nonce [chacha20.NonceSize]byte
		cipher, err := chacha20.NewUnauthenticatedCipher(key, nonce[:])
		if err != nil {
			panic(err)
		}
		return &keystream{
			cipher: cipher,
		}
	}
	return rand.Reader
}

// GetAccuracy returns the configured accuracy tier.
func (config *Config) GetAccuracy() (fancy.Accuracy, error) {
	if len(config.Accuracy) == 0 {
		return DefaultAccuracy, nil
	}
	return fancy.ParseAccuracy(config.Accuracy)
}

type keystream struct {
	cipher *chacha20.Cipher
}

func (ks *keystream) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	ks.cipher.XORKeyStream(p, p)
	return len(p), nil
}
