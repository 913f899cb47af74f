package solana

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRawError(t *testing.T, s string) interface{} {
	d := json.NewDecoder(bytes.NewBufferString(s))

	var raw interface{}
	require.NoError(t, d.Decode(&raw))
	return raw
}

func TestParseTransactionError_CustomError(t *testing.T) {
	// a program rejection surfaces as a Custom code at the failing
	// instruction's index
	raw := decodeRawError(t, `{"InstructionError":[0,{"Custom":1}]}`)

	e, err := ParseTransactionError(raw)
	assert.NoError(t, err)

	assert.Equal(t, TransactionErrorInstructionError, e.ErrorKey())
	require.NotNil(t, e.InstructionError())
	assert.Equal(t, 0, e.InstructionError().Index)
	assert.Equal(t, InstructionErrorCustom, e.InstructionError().ErrorKey())
	require.NotNil(t, e.InstructionError().CustomError())
	assert.Equal(t, CustomError(1), *e.InstructionError().CustomError())
}

func TestParseTransactionError_InstructionError(t *testing.T) {
	raw := decodeRawError(t, `{"InstructionError":[0,"InvalidArgument"]}`)

	e, err := ParseTransactionError(raw)
	assert.NoError(t, err)

	assert.Equal(t, TransactionErrorInstructionError, e.ErrorKey())
	require.NotNil(t, e.InstructionError())
	assert.Equal(t, 0, e.InstructionError().Index)
	assert.Equal(t, InstructionErrorInvalidArgument, e.InstructionError().ErrorKey())
	assert.Nil(t, e.InstructionError().CustomError())
}

func TestParseTransactionError_TransactionLevel(t *testing.T) {
	raw := decodeRawError(t, `"DuplicateSignature"`)

	e, err := ParseTransactionError(raw)
	assert.NoError(t, err)

	assert.Equal(t, TransactionErrorDuplicateSignature, e.ErrorKey())
	assert.Nil(t, e.InstructionError())
}

func TestNewTransactionError(t *testing.T) {
	expected := decodeRawError(t, `"DuplicateSignature"`)
	e := NewTransactionError(TransactionErrorDuplicateSignature)
	assert.Equal(t, expected, e.raw)

	expected = decodeRawError(t, `{"InstructionError":[0,"InvalidArgument"]}`)
	e, err := TransactionErrorFromInstructionError(&InstructionError{
		Index: 0,
		Err:   errors.New(string(InstructionErrorInvalidArgument)),
	})
	assert.NoError(t, err)
	assert.Equal(t, expected, e.raw)

	expected = decodeRawError(t, `{"InstructionError":[0,{"Custom":2}]}`)
	e, err = TransactionErrorFromInstructionError(&InstructionError{
		Index: 0,
		Err:   CustomError(2),
	})
	assert.NoError(t, err)
	assert.Equal(t, expected, e.raw)
}

func TestParseJSONNumber(t *testing.T) {
	tc := []interface{}{
		"1",
		1.0,
		json.Number("1"),
	}
	for i, c := range tc {
		v, err := parseJSONNumber(c)
		assert.NoError(t, err)
		assert.Equal(t, 1, v, i)
	}
}
