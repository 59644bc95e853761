package prog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyAdd(t *testing.T) {
	state := CalcState{SubResult: 9}
	require.NoError(t, state.Apply(Instruction{A: 100, B: 30, Op: OpAdd}))
	require.Equal(t, CalcState{AddResult: 130, SubResult: 9}, state, "sub result must be untouched")
}

func TestApplyAddWraps(t *testing.T) {
	state := CalcState{}
	require.NoError(t, state.Apply(Instruction{A: math.MaxUint32, B: 2, Op: OpAdd}))
	require.Equal(t, uint32(1), state.AddResult, "addition must wrap modulo 2^32")
}

func TestApplySub(t *testing.T) {
	state := CalcState{AddResult: 5}
	require.NoError(t, state.Apply(Instruction{A: 100, B: 30, Op: OpSub}))
	require.Equal(t, CalcState{AddResult: 5, SubResult: 70}, state, "add result must be untouched")

	require.NoError(t, state.Apply(Instruction{A: 30, B: 30, Op: OpSub}))
	require.Equal(t, uint32(0), state.SubResult, "equal operands must be allowed")
}

func TestApplySubUnderflow(t *testing.T) {
	state := CalcState{AddResult: 130, SubResult: 70}
	err := state.Apply(Instruction{A: 30, B: 100, Op: OpSub})
	require.ErrorIs(t, err, ErrSubtractionUnderflow)
	require.Equal(t, CalcState{AddResult: 130, SubResult: 70}, state, "state must be unchanged")
}

func TestApplyUnsupportedOp(t *testing.T) {
	for _, op := range []uint32{2, 3, math.MaxUint32} {
		state := CalcState{AddResult: 1, SubResult: 2}
		err := state.Apply(Instruction{A: 10, B: 5, Op: op})
		require.ErrorIs(t, err, ErrUnsupportedOperation, "op %d must be rejected", op)
		require.Equal(t, CalcState{AddResult: 1, SubResult: 2}, state, "state must be unchanged")
	}
}
