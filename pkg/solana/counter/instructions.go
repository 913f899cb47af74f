package counter

// CounterInstruction is the one-byte discriminant leading every
// instruction payload.
type CounterInstruction uint8

const (
	CounterInstructionIncrement CounterInstruction = iota
	CounterInstructionDecrement
	CounterInstructionReset
	CounterInstructionUpdateSettings
)

func (i CounterInstruction) String() string {
	switch i {
	case CounterInstructionIncrement:
		return "increment"
	case CounterInstructionDecrement:
		return "decrement"
	case CounterInstructionReset:
		return "reset"
	case CounterInstructionUpdateSettings:
		return "update_settings"
	default:
		return "unknown"
	}
}

func putCounterInstruction(dst []byte, v CounterInstruction, offset *int) {
	dst[*offset] = uint8(v)
	*offset += 1
}

// DecodedInstruction is the result of decoding raw instruction bytes. The
// UpdateSettings args are set only when Type is
// CounterInstructionUpdateSettings.
type DecodedInstruction struct {
	Type CounterInstruction

	UpdateSettings *UpdateSettingsInstructionArgs
}

// DecodeInstruction decodes the discriminant and, where one exists, the
// argument payload. An unknown discriminant or a truncated payload fails
// with ErrInvalidInstructionData.
func DecodeInstruction(data []byte) (*DecodedInstruction, error) {
	if len(data) < 1 {
		return nil, ErrInvalidInstructionData
	}

	decoded := &DecodedInstruction{Type: CounterInstruction(data[0])}
	switch decoded.Type {
	case CounterInstructionIncrement, CounterInstructionDecrement, CounterInstructionReset:
		if len(data) != 1 {
			return nil, ErrInvalidInstructionData
		}
	case CounterInstructionUpdateSettings:
		var args UpdateSettingsInstructionArgs
		if err := args.Unmarshal(data[1:]); err != nil {
			return nil, err
		}
		decoded.UpdateSettings = &args
	default:
		return nil, ErrInvalidInstructionData
	}

	return decoded, nil
}
