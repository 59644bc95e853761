package prog

import (
	"encoding/binary"
)

// InstructionLen is the exact byte length of an instruction payload:
// operand A, operand B and the operation selector, each a little-endian u32.
const InstructionLen = 12

// Operation selectors.
const (
	OpAdd uint32 = 0
	OpSub uint32 = 1
)

// Instruction is one decoded invocation request.
type Instruction struct {
	A  uint32 // first operand
	B  uint32 // second operand
	Op uint32 // operation selector, validated by Apply
}

// DecodeInstruction parses an instruction payload. Inputs that are not
// exactly InstructionLen bytes fail with ErrInvalidInstructionSize. The
// operation selector is not range-checked here.
func DecodeInstruction(data []byte) (Instruction, error) {
	if len(data) != InstructionLen {
		return Instruction{}, ErrInvalidInstructionSize
	}
	return Instruction{
		A:  binary.LittleEndian.Uint32(data[0:4]),
		B:  binary.LittleEndian.Uint32(data[4:8]),
		Op: binary.LittleEndian.Uint32(data[8:12]),
	}, nil
}

// Encode is the client-side inverse of DecodeInstruction.
func (inst Instruction) Encode() []byte {
	out := make([]byte, 0, InstructionLen)
	out = binary.LittleEndian.AppendUint32(out, inst.A)
	out = binary.LittleEndian.AppendUint32(out, inst.B)
	out = binary.LittleEndian.AppendUint32(out, inst.Op)
	return out
}
