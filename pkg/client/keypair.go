package client

import (
	"crypto/ed25519"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// LoadKeypair reads a keypair file in the Solana CLI's JSON format: an
// array of 64 bytes holding the private seed followed by the public key.
func LoadKeypair(path string) (ed25519.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read keypair file %s", path)
	}

	var keyBytes []byte
	if err := json.Unmarshal(raw, &keyBytes); err != nil {
		return nil, errors.Wrapf(err, "invalid keypair file %s", path)
	}
	if len(keyBytes) != ed25519.PrivateKeySize {
		return nil, errors.Errorf("invalid keypair size: %d", len(keyBytes))
	}

	return ed25519.PrivateKey(keyBytes), nil
}
