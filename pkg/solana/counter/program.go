// Package counter implements the on-chain counter program: a per-user
// counter account plus a single admin-controlled settings account that
// fixes the increment and decrement step sizes.
package counter

import (
	"crypto/ed25519"
	"errors"
)

var (
	ErrInvalidProgram         = errors.New("invalid program id")
	ErrInvalidAccountData     = errors.New("unexpected account data")
	ErrInvalidInstructionData = errors.New("unexpected instruction data")

	ErrNotEnoughAccounts = errors.New("not enough accounts")
	ErrMissingSignature  = errors.New("required signature is missing")

	ErrAdminRequired        = errors.New("settings can only be updated by the current admin")
	ErrWrongCounterAddress  = errors.New("counter account is not the user's derived counter address")
	ErrWrongSettingsAddress = errors.New("settings account is not the derived settings address")
)

var (
	PROGRAM_ADDRESS = mustBase58Decode("7eWFSioVjHdJjbobEZu6hn5QLhmjWSv7qLMyCuzamYCG")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

var (
	SYSTEM_PROGRAM_ID  = ed25519.PublicKey(mustBase58Decode("11111111111111111111111111111111"))
	SYSVAR_RENT_PUBKEY = ed25519.PublicKey(mustBase58Decode("SysvarRent111111111111111111111111111111111"))
)

// Custom error codes reported through transaction metadata when an
// instruction is rejected on chain.
const (
	CustomErrorCodeAdminRequired uint32 = iota
	CustomErrorCodeWrongCounterAddress
	CustomErrorCodeWrongSettingsAddress
)

// ErrorFromCustomErrorCode maps an on-chain custom error code back to the
// corresponding package error.
func ErrorFromCustomErrorCode(code uint32) error {
	switch code {
	case CustomErrorCodeAdminRequired:
		return ErrAdminRequired
	case CustomErrorCodeWrongCounterAddress:
		return ErrWrongCounterAddress
	case CustomErrorCodeWrongSettingsAddress:
		return ErrWrongSettingsAddress
	default:
		return nil
	}
}

// CustomErrorCode maps a package error to its on-chain custom error code.
func CustomErrorCode(err error) (uint32, bool) {
	switch err {
	case ErrAdminRequired:
		return CustomErrorCodeAdminRequired, true
	case ErrWrongCounterAddress:
		return CustomErrorCodeWrongCounterAddress, true
	case ErrWrongSettingsAddress:
		return CustomErrorCodeWrongSettingsAddress, true
	default:
		return 0, false
	}
}
