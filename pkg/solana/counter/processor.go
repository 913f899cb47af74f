package counter

import (
	"bytes"
	"crypto/ed25519"

	"github.com/sirupsen/logrus"
)

// Account is one entry of the ordered account list a transaction grants to
// the program for a single invocation. Data aliases the host's account
// buffer; mutations to it are the only persistent effect an invocation can
// have.
type Account struct {
	Key        ed25519.PublicKey
	Data       []byte
	Owner      ed25519.PublicKey
	IsSigner   bool
	IsWritable bool
}

// Host exposes the ledger capabilities the program needs beyond its own
// account buffers: the rent-exemption minimum for a data size, and account
// creation at a program derived address. The seeds passed to CreateAccount
// replay the derivation that produced the address, which is what authorizes
// the creation on the program's behalf.
type Host interface {
	MinimumBalanceForRentExemption(size uint64) (uint64, error)
	CreateAccount(address, funder, owner ed25519.PublicKey, size, lamports uint64, seeds ...[]byte) error
}

// Processor is the program's state transition engine. It holds no state
// between invocations; every call operates solely on the account buffers
// and instruction bytes it is handed.
type Processor struct {
	log *logrus.Entry
}

func NewProcessor() *Processor {
	return &Processor{
		log: logrus.StandardLogger().WithField("type", "counter/processor"),
	}
}

// Process executes one instruction against the ordered account list. Any
// validation or decode failure aborts the call with no partial writes; the
// host discards the enclosing transaction on error.
func (p *Processor) Process(program ed25519.PublicKey, accounts []*Account, data []byte, host Host) error {
	if !bytes.Equal(program, PROGRAM_ADDRESS) {
		return ErrInvalidProgram
	}

	decoded, err := DecodeInstruction(data)
	if err != nil {
		return err
	}

	log := p.log.WithField("instruction", decoded.Type.String())
	log.Trace("processing instruction")

	switch decoded.Type {
	case CounterInstructionIncrement:
		return p.processIncrement(accounts)
	case CounterInstructionDecrement:
		return p.processDecrement(accounts)
	case CounterInstructionReset:
		return p.processReset(accounts)
	case CounterInstructionUpdateSettings:
		return p.processUpdateSettings(accounts, decoded.UpdateSettings, host)
	default:
		return ErrInvalidInstructionData
	}
}

func (p *Processor) processIncrement(accounts []*Account) error {
	validated, err := validateCounterOpAccounts(accounts, true)
	if err != nil {
		return err
	}

	var settings SettingsAccount
	if err := settings.Unmarshal(validated.settings.Data); err != nil {
		return err
	}

	var state CounterAccount
	if err := state.Unmarshal(validated.counter.Data); err != nil {
		return err
	}

	state.Value += int64(settings.IncStep)
	copy(validated.counter.Data, state.Marshal())

	return nil
}

func (p *Processor) processDecrement(accounts []*Account) error {
	validated, err := validateCounterOpAccounts(accounts, true)
	if err != nil {
		return err
	}

	var settings SettingsAccount
	if err := settings.Unmarshal(validated.settings.Data); err != nil {
		return err
	}

	var state CounterAccount
	if err := state.Unmarshal(validated.counter.Data); err != nil {
		return err
	}

	state.Value -= int64(settings.DecStep)
	copy(validated.counter.Data, state.Marshal())

	return nil
}

func (p *Processor) processReset(accounts []*Account) error {
	validated, err := validateCounterOpAccounts(accounts, false)
	if err != nil {
		return err
	}

	var state CounterAccount
	if err := state.Unmarshal(validated.counter.Data); err != nil {
		return err
	}

	state.Value = 0
	copy(validated.counter.Data, state.Marshal())

	return nil
}

func (p *Processor) processUpdateSettings(accounts []*Account, args *UpdateSettingsInstructionArgs, host Host) error {
	validated, err := validateUpdateSettingsAccounts(accounts)
	if err != nil {
		return err
	}

	if len(validated.settings.Data) == 0 {
		if err := p.createSettingsAccount(validated, host); err != nil {
			return err
		}
	}

	var settings SettingsAccount
	if err := settings.Unmarshal(validated.settings.Data); err != nil {
		return err
	}

	if settings.Admin.IsClaimed() && !settings.Admin.IsHeldBy(validated.admin.Key) {
		return ErrAdminRequired
	}

	settings.Admin = ClaimedAdmin(args.Admin)
	settings.IncStep = args.IncStep
	settings.DecStep = args.DecStep
	copy(validated.settings.Data, settings.Marshal())

	p.log.WithField("settings", settings.String()).Debug("settings updated")

	return nil
}

// createSettingsAccount lazily creates the settings account on the first
// update, funded by the calling admin and sized for the settings layout.
func (p *Processor) createSettingsAccount(validated *updateSettingsAccounts, host Host) error {
	_, bump, err := GetSettingsAddress()
	if err != nil {
		return err
	}

	lamports, err := host.MinimumBalanceForRentExemption(SettingsAccountSize)
	if err != nil {
		return err
	}

	err = host.CreateAccount(
		validated.settings.Key,
		validated.admin.Key,
		PROGRAM_ID,
		SettingsAccountSize,
		lamports,
		SettingsSeed,
		[]byte{bump},
	)
	if err != nil {
		return err
	}

	validated.settings.Data = make([]byte, SettingsAccountSize)
	validated.settings.Owner = PROGRAM_ID

	return nil
}
