package counter

import (
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCounterAddress(t *testing.T) {
	user, err := base58.Decode("4UPHhQxnJrsmLE5w1qLencgCCttYiPswdaRRpQ9xwG5Z")
	require.NoError(t, err)

	address, err := GetCounterAddress(user)
	require.NoError(t, err)
	assert.Equal(t, "Ffav6rApgVYVogddJrLsccYwveUZCS8KJoM5TLW8T6CH", base58.Encode(address))

	again, err := GetCounterAddress(user)
	require.NoError(t, err)
	assert.Equal(t, address, again)

	other, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	otherAddress, err := GetCounterAddress(other)
	require.NoError(t, err)
	assert.NotEqual(t, address, otherAddress)
}

func TestGetSettingsAddress(t *testing.T) {
	address, bump, err := GetSettingsAddress()
	require.NoError(t, err)
	assert.Equal(t, "5KCTQH1ZLtbm3C9AmatRBt4roj6yjoVErS2xMkLAN3nA", base58.Encode(address))
	assert.EqualValues(t, 255, bump)

	again, againBump, err := GetSettingsAddress()
	require.NoError(t, err)
	assert.Equal(t, address, again)
	assert.Equal(t, bump, againBump)
}

func TestAddressPredicates(t *testing.T) {
	user, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	counterAddress, err := GetCounterAddress(user)
	require.NoError(t, err)
	assert.True(t, IsCounterAddress(user, counterAddress))
	assert.False(t, IsCounterAddress(user, user))

	settingsAddress, _, err := GetSettingsAddress()
	require.NoError(t, err)
	assert.True(t, IsSettingsAddress(settingsAddress))
	assert.False(t, IsSettingsAddress(counterAddress))
}
