package counter

import (
	"bytes"
	"crypto/ed25519"
	"sync"

	"github.com/EGORAGANIN/solana-counter/pkg/solana"
)

const CounterSeed = "counter"

var SettingsSeed = []byte("settings")

// GetCounterAddress derives the counter account address for a user. The
// derivation has no bump search, so the address is a pure function of the
// user key.
func GetCounterAddress(user ed25519.PublicKey) (ed25519.PublicKey, error) {
	return solana.CreateAddressWithSeed(user, CounterSeed, PROGRAM_ID)
}

var settingsAddress struct {
	once sync.Once

	key  ed25519.PublicKey
	bump uint8
	err  error
}

// GetSettingsAddress returns the program derived address of the settings
// account and its bump seed. The search result never changes for a fixed
// program id, so it is computed once and cached for the process lifetime.
func GetSettingsAddress() (ed25519.PublicKey, uint8, error) {
	settingsAddress.once.Do(func() {
		settingsAddress.key, settingsAddress.bump, settingsAddress.err = solana.FindProgramAddressAndBump(
			PROGRAM_ID,
			SettingsSeed,
		)
	})
	return settingsAddress.key, settingsAddress.bump, settingsAddress.err
}

// IsCounterAddress reports whether candidate is the derived counter address
// for the given user.
func IsCounterAddress(user, candidate ed25519.PublicKey) bool {
	derived, err := GetCounterAddress(user)
	if err != nil {
		return false
	}
	return bytes.Equal(derived, candidate)
}

// IsSettingsAddress reports whether candidate is the derived settings
// address.
func IsSettingsAddress(candidate ed25519.PublicKey) bool {
	derived, _, err := GetSettingsAddress()
	if err != nil {
		return false
	}
	return bytes.Equal(derived, candidate)
}
