package counter

import (
	"bytes"
)

// counterOpAccounts is the validated account shape shared by increment,
// decrement and reset.
type counterOpAccounts struct {
	user     *Account
	counter  *Account
	settings *Account // nil for reset
}

// validateCounterOpAccounts checks the ordered accounts of an increment,
// decrement or reset call: the user must have signed, the counter slot must
// hold the user's derived counter address, and when withSettings is set the
// settings slot must hold the derived settings address.
//
// The counter address check applies regardless of the slot's writable flag.
func validateCounterOpAccounts(accounts []*Account, withSettings bool) (*counterOpAccounts, error) {
	need := 2
	if withSettings {
		need = 3
	}
	if len(accounts) < need {
		return nil, ErrNotEnoughAccounts
	}

	validated := &counterOpAccounts{
		user:    accounts[0],
		counter: accounts[1],
	}

	if !validated.user.IsSigner {
		return nil, ErrMissingSignature
	}
	if !IsCounterAddress(validated.user.Key, validated.counter.Key) {
		return nil, ErrWrongCounterAddress
	}

	if withSettings {
		validated.settings = accounts[2]
		if !IsSettingsAddress(validated.settings.Key) {
			return nil, ErrWrongSettingsAddress
		}
	}

	return validated, nil
}

// updateSettingsAccounts is the validated account shape of an update
// settings call.
type updateSettingsAccounts struct {
	admin    *Account
	settings *Account
}

// validateUpdateSettingsAccounts checks the ordered accounts of an update
// settings call: the admin must have signed and hold write permission (it
// funds lazy creation of the settings account), the settings slot must hold
// the derived settings address, and the rent and system program references
// must be present.
func validateUpdateSettingsAccounts(accounts []*Account) (*updateSettingsAccounts, error) {
	if len(accounts) < 4 {
		return nil, ErrNotEnoughAccounts
	}

	validated := &updateSettingsAccounts{
		admin:    accounts[0],
		settings: accounts[1],
	}

	if !validated.admin.IsSigner {
		return nil, ErrMissingSignature
	}
	if !validated.admin.IsWritable {
		return nil, ErrAdminRequired
	}
	if !IsSettingsAddress(validated.settings.Key) {
		return nil, ErrWrongSettingsAddress
	}

	if !bytes.Equal(accounts[2].Key, SYSVAR_RENT_PUBKEY) {
		return nil, ErrInvalidAccountData
	}
	if !bytes.Equal(accounts[3].Key, SYSTEM_PROGRAM_ID) {
		return nil, ErrInvalidAccountData
	}

	return validated, nil
}
