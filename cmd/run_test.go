package cmd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ledgerlabs/abacus/prog"
)

func TestParseOp(t *testing.T) {
	op, err := parseOp("add")
	require.NoError(t, err)
	require.Equal(t, prog.OpAdd, op)

	op, err = parseOp("sub")
	require.NoError(t, err)
	require.Equal(t, prog.OpSub, op)

	_, err = parseOp("mul")
	require.ErrorContains(t, err, "unknown operation")
}

func TestBuildInstruction(t *testing.T) {
	t.Run("FromOperands", func(t *testing.T) {
		data, err := buildInstruction("", 100, 30, "sub")
		require.NoError(t, err)
		inst, err := prog.DecodeInstruction(data)
		require.NoError(t, err)
		require.Equal(t, prog.Instruction{A: 100, B: 30, Op: prog.OpSub}, inst)
	})

	t.Run("FromHex", func(t *testing.T) {
		data, err := buildInstruction("0x640000001e000000000000000", 0, 0, "add")
		require.Error(t, err, "odd-length hex must be rejected")

		data, err = buildInstruction("0x640000001e00000000000000", 0, 0, "add")
		require.NoError(t, err)
		inst, err := prog.DecodeInstruction(data)
		require.NoError(t, err)
		require.Equal(t, prog.Instruction{A: 100, B: 30, Op: prog.OpAdd}, inst)
	})

	t.Run("OperandRange", func(t *testing.T) {
		_, err := buildInstruction("", math.MaxUint32+1, 0, "add")
		require.ErrorContains(t, err, "must fit in 32 bits")
	})
}
