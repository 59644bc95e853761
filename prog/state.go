package prog

import (
	"encoding/binary"
)

// StateLen is the serialized size of CalcState: two little-endian u32 fields.
const StateLen = 8

// CalcState is the per-account calculator state. Each field holds the
// result of the most recent successful operation of its kind.
type CalcState struct {
	AddResult uint32 `json:"addResult"`
	SubResult uint32 `json:"subResult"`
}

// DecodeState reads calculator state from the first StateLen bytes of buf.
// Buffers shorter than StateLen fail with ErrMalformedState; trailing bytes
// are ignored.
func DecodeState(buf []byte) (CalcState, error) {
	if len(buf) < StateLen {
		return CalcState{}, ErrMalformedState
	}
	return CalcState{
		AddResult: binary.LittleEndian.Uint32(buf[0:4]),
		SubResult: binary.LittleEndian.Uint32(buf[4:8]),
	}, nil
}

// Encode returns the StateLen-byte serialized form.
func (s CalcState) Encode() []byte {
	out := make([]byte, 0, StateLen)
	out = binary.LittleEndian.AppendUint32(out, s.AddResult)
	out = binary.LittleEndian.AppendUint32(out, s.SubResult)
	return out
}

// EncodeInto overwrites the first StateLen bytes of buf in place.
// The buffer must already hold at least StateLen bytes.
func (s CalcState) EncodeInto(buf []byte) error {
	if len(buf) < StateLen {
		return ErrMalformedState
	}
	binary.LittleEndian.PutUint32(buf[0:4], s.AddResult)
	binary.LittleEndian.PutUint32(buf[4:8], s.SubResult)
	return nil
}
