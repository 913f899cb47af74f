package counter

import (
	"crypto/ed25519"

	"github.com/EGORAGANIN/solana-counter/pkg/solana"
)

const UpdateSettingsInstructionArgsSize = (32 + // admin
	4 + // inc_step
	4) // dec_step

type UpdateSettingsInstructionArgs struct {
	Admin   ed25519.PublicKey
	IncStep uint32
	DecStep uint32
}

func (args *UpdateSettingsInstructionArgs) Unmarshal(data []byte) error {
	if len(data) != UpdateSettingsInstructionArgsSize {
		return ErrInvalidInstructionData
	}

	var offset int
	getKey(data, &args.Admin, &offset)
	getUint32(data, &args.IncStep, &offset)
	getUint32(data, &args.DecStep, &offset)

	return nil
}

type UpdateSettingsInstructionAccounts struct {
	Admin    ed25519.PublicKey
	Settings ed25519.PublicKey
}

func NewUpdateSettingsInstruction(
	accounts *UpdateSettingsInstructionAccounts,
	args *UpdateSettingsInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 1+UpdateSettingsInstructionArgsSize)

	putCounterInstruction(data, CounterInstructionUpdateSettings, &offset)
	putKey(data, args.Admin, &offset)
	putUint32(data, args.IncStep, &offset)
	putUint32(data, args.DecStep, &offset)

	return solana.Instruction{
		Program: PROGRAM_ADDRESS,

		Data: data,

		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Admin,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.Settings,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSVAR_RENT_PUBKEY,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
