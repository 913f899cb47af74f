package counter

import (
	"crypto/ed25519"

	"github.com/EGORAGANIN/solana-counter/pkg/solana"
)

type ResetInstructionAccounts struct {
	User    ed25519.PublicKey
	Counter ed25519.PublicKey
}

func NewResetInstruction(
	accounts *ResetInstructionAccounts,
) solana.Instruction {
	var offset int

	data := make([]byte, 1)
	putCounterInstruction(data, CounterInstructionReset, &offset)

	return solana.Instruction{
		Program: PROGRAM_ADDRESS,

		Data: data,

		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.User,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.Counter,
				IsWritable: true,
				IsSigner:   false,
			},
		},
	}
}
