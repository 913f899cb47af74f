package counter

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

const SettingsAccountSize = (32 + // admin
	4 + // inc_step
	4) // dec_step

// Admin distinguishes an unclaimed settings record from one claimed by a
// specific key. The stored form uses the all-zero key as the unclaimed
// sentinel; Admin keeps the two cases explicit so a decoded record can
// never be mistaken for a claim by the zero key.
type Admin struct {
	key ed25519.PublicKey
}

func UnclaimedAdmin() Admin {
	return Admin{}
}

func ClaimedAdmin(key ed25519.PublicKey) Admin {
	if isZeroKey(key) {
		return Admin{}
	}

	claimed := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(claimed, key)
	return Admin{key: claimed}
}

func (a Admin) IsClaimed() bool {
	return a.key != nil
}

// IsHeldBy reports whether the settings record is claimed by the given key.
func (a Admin) IsHeldBy(key ed25519.PublicKey) bool {
	return a.key != nil && bytes.Equal(a.key, key)
}

// Key returns the stored form of the admin: the claiming key, or the
// all-zero sentinel when unclaimed.
func (a Admin) Key() ed25519.PublicKey {
	if a.key == nil {
		return make(ed25519.PublicKey, ed25519.PublicKeySize)
	}
	return a.key
}

func (a Admin) String() string {
	if a.key == nil {
		return "unclaimed"
	}
	return base58.Encode(a.key)
}

// SettingsAccount is the singleton settings record governing the step
// sizes applied by increment and decrement.
type SettingsAccount struct {
	Admin   Admin
	IncStep uint32
	DecStep uint32
}

func (obj *SettingsAccount) Marshal() []byte {
	data := make([]byte, SettingsAccountSize)

	var offset int
	putKey(data, obj.Admin.Key(), &offset)
	putUint32(data, obj.IncStep, &offset)
	putUint32(data, obj.DecStep, &offset)

	return data
}

func (obj *SettingsAccount) Unmarshal(data []byte) error {
	if len(data) != SettingsAccountSize {
		return ErrInvalidAccountData
	}

	var offset int
	var admin ed25519.PublicKey
	getKey(data, &admin, &offset)
	obj.Admin = ClaimedAdmin(admin)
	getUint32(data, &obj.IncStep, &offset)
	getUint32(data, &obj.DecStep, &offset)

	return nil
}

func (obj *SettingsAccount) String() string {
	return fmt.Sprintf(
		"SettingsAccount{admin=%s,inc_step=%d,dec_step=%d}",
		obj.Admin.String(),
		obj.IncStep,
		obj.DecStep,
	)
}

func isZeroKey(key ed25519.PublicKey) bool {
	for _, b := range key {
		if b != 0 {
			return false
		}
	}
	return true
}
