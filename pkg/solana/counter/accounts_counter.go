package counter

import (
	"fmt"
)

const CounterAccountSize = 8 // value

// CounterAccount is the per-user counter record. One instance exists per
// user, at the user's derived counter address.
type CounterAccount struct {
	Value int64
}

func (obj *CounterAccount) Marshal() []byte {
	data := make([]byte, CounterAccountSize)

	var offset int
	putInt64(data, obj.Value, &offset)

	return data
}

func (obj *CounterAccount) Unmarshal(data []byte) error {
	if len(data) != CounterAccountSize {
		return ErrInvalidAccountData
	}

	var offset int
	getInt64(data, &obj.Value, &offset)

	return nil
}

func (obj *CounterAccount) String() string {
	return fmt.Sprintf("CounterAccount{value=%d}", obj.Value)
}
