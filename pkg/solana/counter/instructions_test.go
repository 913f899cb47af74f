package counter

import (
	"bytes"
	"crypto/ed25519"
	"math"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIncrementInstruction(t *testing.T) {
	keys := generateKeys(t, 3)

	instruction := NewIncrementInstruction(&IncrementInstructionAccounts{
		User:     keys[0],
		Counter:  keys[1],
		Settings: keys[2],
	})

	assert.EqualValues(t, PROGRAM_ADDRESS, instruction.Program)
	assert.Equal(t, []byte{0}, instruction.Data)

	require.Len(t, instruction.Accounts, 3)

	assert.EqualValues(t, keys[0], instruction.Accounts[0].PublicKey)
	assert.True(t, instruction.Accounts[0].IsSigner)
	assert.False(t, instruction.Accounts[0].IsWritable)

	assert.EqualValues(t, keys[1], instruction.Accounts[1].PublicKey)
	assert.False(t, instruction.Accounts[1].IsSigner)
	assert.True(t, instruction.Accounts[1].IsWritable)

	assert.EqualValues(t, keys[2], instruction.Accounts[2].PublicKey)
	assert.False(t, instruction.Accounts[2].IsSigner)
	assert.False(t, instruction.Accounts[2].IsWritable)
}

func TestNewDecrementInstruction(t *testing.T) {
	keys := generateKeys(t, 3)

	instruction := NewDecrementInstruction(&DecrementInstructionAccounts{
		User:     keys[0],
		Counter:  keys[1],
		Settings: keys[2],
	})

	assert.Equal(t, []byte{1}, instruction.Data)
	require.Len(t, instruction.Accounts, 3)
	assert.True(t, instruction.Accounts[0].IsSigner)
	assert.True(t, instruction.Accounts[1].IsWritable)
}

func TestNewResetInstruction(t *testing.T) {
	keys := generateKeys(t, 2)

	instruction := NewResetInstruction(&ResetInstructionAccounts{
		User:    keys[0],
		Counter: keys[1],
	})

	assert.Equal(t, []byte{2}, instruction.Data)
	require.Len(t, instruction.Accounts, 2)
	assert.True(t, instruction.Accounts[0].IsSigner)
	assert.True(t, instruction.Accounts[1].IsWritable)
}

func TestNewUpdateSettingsInstruction(t *testing.T) {
	admin, err := base58.Decode("2wY7hT8TJhFpQqQJ5PGSed76vEgGNeQ11y1PvPsLUcS4")
	require.NoError(t, err)

	keys := generateKeys(t, 1)

	instruction := NewUpdateSettingsInstruction(
		&UpdateSettingsInstructionAccounts{
			Admin:    admin,
			Settings: keys[0],
		},
		&UpdateSettingsInstructionArgs{
			Admin:   admin,
			IncStep: 2,
			DecStep: 10,
		},
	)

	expected := []byte{
		3, 28, 212, 59, 165, 120, 246, 217, 222, 54, 146, 40, 15, 29, 116, 181,
		170, 127, 95, 104, 96, 111, 182, 220, 59, 176, 28, 79, 38, 63, 193, 241,
		65, 2, 0, 0, 0, 10, 0, 0, 0,
	}
	assert.Equal(t, expected, instruction.Data)

	require.Len(t, instruction.Accounts, 4)

	assert.EqualValues(t, admin, instruction.Accounts[0].PublicKey)
	assert.True(t, instruction.Accounts[0].IsSigner)
	assert.True(t, instruction.Accounts[0].IsWritable)

	assert.EqualValues(t, keys[0], instruction.Accounts[1].PublicKey)
	assert.False(t, instruction.Accounts[1].IsSigner)
	assert.True(t, instruction.Accounts[1].IsWritable)

	assert.EqualValues(t, SYSVAR_RENT_PUBKEY, instruction.Accounts[2].PublicKey)
	assert.False(t, instruction.Accounts[2].IsWritable)

	assert.EqualValues(t, SYSTEM_PROGRAM_ID, instruction.Accounts[3].PublicKey)
	assert.False(t, instruction.Accounts[3].IsWritable)
}

func TestDecodeInstruction_RoundTrip(t *testing.T) {
	keys := generateKeys(t, 3)

	for _, instructionType := range []CounterInstruction{
		CounterInstructionIncrement,
		CounterInstructionDecrement,
		CounterInstructionReset,
	} {
		decoded, err := DecodeInstruction([]byte{uint8(instructionType)})
		require.NoError(t, err)
		assert.Equal(t, instructionType, decoded.Type)
		assert.Nil(t, decoded.UpdateSettings)
	}

	for _, args := range []UpdateSettingsInstructionArgs{
		{Admin: keys[0], IncStep: 9, DecStep: 5},
		{Admin: make(ed25519.PublicKey, ed25519.PublicKeySize), IncStep: 0, DecStep: 0},
		{Admin: bytes.Repeat([]byte{0xff}, ed25519.PublicKeySize), IncStep: math.MaxUint32, DecStep: math.MaxUint32},
	} {
		instruction := NewUpdateSettingsInstruction(
			&UpdateSettingsInstructionAccounts{Admin: keys[1], Settings: keys[2]},
			&args,
		)

		decoded, err := DecodeInstruction(instruction.Data)
		require.NoError(t, err)
		assert.Equal(t, CounterInstructionUpdateSettings, decoded.Type)
		require.NotNil(t, decoded.UpdateSettings)
		assert.EqualValues(t, args.Admin, decoded.UpdateSettings.Admin)
		assert.Equal(t, args.IncStep, decoded.UpdateSettings.IncStep)
		assert.Equal(t, args.DecStep, decoded.UpdateSettings.DecStep)
	}
}

func TestDecodeInstruction_Invalid(t *testing.T) {
	_, err := DecodeInstruction(nil)
	assert.Equal(t, ErrInvalidInstructionData, err)

	// unknown discriminant
	_, err = DecodeInstruction([]byte{4})
	assert.Equal(t, ErrInvalidInstructionData, err)

	// trailing bytes on an argument-free instruction
	_, err = DecodeInstruction([]byte{0, 1})
	assert.Equal(t, ErrInvalidInstructionData, err)

	// truncated update settings payload
	_, err = DecodeInstruction(append([]byte{3}, make([]byte, UpdateSettingsInstructionArgsSize-1)...))
	assert.Equal(t, ErrInvalidInstructionData, err)
}

func generateKeys(t *testing.T, amount int) []ed25519.PublicKey {
	keys := make([]ed25519.PublicKey, amount)

	for i := 0; i < amount; i++ {
		pub, _, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)
		keys[i] = pub
	}

	return keys
}
