// Package client is the transaction-building driver for the counter
// program. It assembles, signs and submits the program's instructions over
// JSON RPC, and reads back the resulting account state.
package client

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/EGORAGANIN/solana-counter/pkg/solana"
	"github.com/EGORAGANIN/solana-counter/pkg/solana/counter"
	"github.com/EGORAGANIN/solana-counter/pkg/solana/system"
)

type Client struct {
	log        *logrus.Entry
	sol        solana.Client
	commitment solana.Commitment

	user  ed25519.PrivateKey
	admin ed25519.PrivateKey

	counterAddress  ed25519.PublicKey
	settingsAddress ed25519.PublicKey
}

// New derives the user's counter address and the settings address up front
// and returns a driver bound to the given keys.
func New(sol solana.Client, user, admin ed25519.PrivateKey, commitment solana.Commitment) (*Client, error) {
	userPub := user.Public().(ed25519.PublicKey)

	counterAddress, err := counter.GetCounterAddress(userPub)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive counter address")
	}

	settingsAddress, _, err := counter.GetSettingsAddress()
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive settings address")
	}

	return &Client{
		log: logrus.StandardLogger().WithFields(logrus.Fields{
			"type": "client",
			"user": base58.Encode(userPub),
		}),
		sol:        sol,
		commitment: commitment,

		user:  user,
		admin: admin,

		counterAddress:  counterAddress,
		settingsAddress: settingsAddress,
	}, nil
}

func (c *Client) CounterAddress() ed25519.PublicKey {
	return c.counterAddress
}

func (c *Client) SettingsAddress() ed25519.PublicKey {
	return c.settingsAddress
}

// UpdateSettings submits an update settings instruction signed by the
// admin. On the first call the program creates the settings account, funded
// by the admin.
func (c *Client) UpdateSettings(newAdmin ed25519.PublicKey, incStep, decStep uint32) error {
	adminPub := c.admin.Public().(ed25519.PublicKey)

	instruction := counter.NewUpdateSettingsInstruction(
		&counter.UpdateSettingsInstructionAccounts{
			Admin:    adminPub,
			Settings: c.settingsAddress,
		},
		&counter.UpdateSettingsInstructionArgs{
			Admin:   newAdmin,
			IncStep: incStep,
			DecStep: decStep,
		},
	)

	return c.submit(c.admin, instruction)
}

// EnsureCounterAccount creates the user's counter account if it does not
// exist yet. Creation goes through the system program with the same seed
// the program validates against, funded by the user with the rent-exempt
// minimum for the counter layout.
func (c *Client) EnsureCounterAccount() error {
	userPub := c.user.Public().(ed25519.PublicKey)

	_, err := c.sol.GetAccountInfo(c.counterAddress, c.commitment)
	if err == nil {
		return nil
	}
	if err != solana.ErrNoAccountInfo {
		return errors.Wrap(err, "failed to check counter account")
	}

	lamports, err := c.sol.GetMinimumBalanceForRentExemption(counter.CounterAccountSize)
	if err != nil {
		return errors.Wrap(err, "failed to get rent-exempt minimum")
	}

	c.log.WithField("account", base58.Encode(c.counterAddress)).Debug("creating counter account")

	instruction := system.CreateAccountWithSeed(
		userPub,
		c.counterAddress,
		userPub,
		counter.PROGRAM_ID,
		counter.CounterSeed,
		lamports,
		counter.CounterAccountSize,
	)

	return c.submit(c.user, instruction)
}

// Increment submits an increment instruction signed by the user.
func (c *Client) Increment() error {
	instruction := counter.NewIncrementInstruction(&counter.IncrementInstructionAccounts{
		User:     c.user.Public().(ed25519.PublicKey),
		Counter:  c.counterAddress,
		Settings: c.settingsAddress,
	})

	return c.submit(c.user, instruction)
}

// Decrement submits a decrement instruction signed by the user.
func (c *Client) Decrement() error {
	instruction := counter.NewDecrementInstruction(&counter.DecrementInstructionAccounts{
		User:     c.user.Public().(ed25519.PublicKey),
		Counter:  c.counterAddress,
		Settings: c.settingsAddress,
	})

	return c.submit(c.user, instruction)
}

// Reset submits a reset instruction signed by the user.
func (c *Client) Reset() error {
	instruction := counter.NewResetInstruction(&counter.ResetInstructionAccounts{
		User:    c.user.Public().(ed25519.PublicKey),
		Counter: c.counterAddress,
	})

	return c.submit(c.user, instruction)
}

// GetCounter reads and decodes the user's counter account.
func (c *Client) GetCounter() (*counter.CounterAccount, error) {
	info, err := c.sol.GetAccountInfo(c.counterAddress, c.commitment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get counter account")
	}

	var state counter.CounterAccount
	if err := state.Unmarshal(info.Data); err != nil {
		return nil, err
	}

	return &state, nil
}

// GetSettings reads and decodes the settings account.
func (c *Client) GetSettings() (*counter.SettingsAccount, error) {
	info, err := c.sol.GetAccountInfo(c.settingsAddress, c.commitment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get settings account")
	}

	var settings counter.SettingsAccount
	if err := settings.Unmarshal(info.Data); err != nil {
		return nil, err
	}

	return &settings, nil
}

// submit builds a transaction from the instructions, signs it with payer,
// sends it, and waits for the configured commitment level. Program
// rejections surface as the counter package's errors.
func (c *Client) submit(payer ed25519.PrivateKey, instructions ...solana.Instruction) error {
	payerPub := payer.Public().(ed25519.PublicKey)

	txn := solana.NewTransaction(payerPub, instructions...)

	blockhash, err := c.sol.GetLatestBlockhash()
	if err != nil {
		return errors.Wrap(err, "failed to get latest blockhash")
	}
	txn.SetBlockhash(blockhash)

	if err := txn.Sign(payer); err != nil {
		return errors.Wrap(err, "failed to sign transaction")
	}

	sig, err := c.sol.SubmitTransaction(txn, c.commitment)
	if err != nil {
		return mapProgramError(err)
	}

	status, err := c.sol.GetSignatureStatus(sig, c.commitment)
	if err != nil {
		return errors.Wrap(err, "failed to confirm transaction")
	}
	if status.ErrorResult != nil {
		if instructionErr := status.ErrorResult.InstructionError(); instructionErr != nil {
			return mapProgramError(instructionErr)
		}
		return status.ErrorResult
	}

	c.log.WithField("signature", base58.Encode(sig[:])).Trace("transaction confirmed")

	return nil
}

// mapProgramError translates an on-chain custom error code into the
// corresponding counter package error, leaving other errors untouched.
func mapProgramError(err error) error {
	instructionErr, ok := err.(*solana.InstructionError)
	if !ok {
		return err
	}

	customErr := instructionErr.CustomError()
	if customErr == nil {
		return err
	}

	if mapped := counter.ErrorFromCustomErrorCode(uint32(*customErr)); mapped != nil {
		return mapped
	}

	return err
}
