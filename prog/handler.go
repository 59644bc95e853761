// Package prog implements the calculator ledger program: it decodes a
// 12-byte instruction, checks that the target account is program-owned,
// and applies one add or subtract operation to the account's 8-byte state.
package prog

import (
	"github.com/ethereum/go-ethereum/log"
	"github.com/gagliardetto/solana-go"
)

// Process handles a single invocation. Steps run in strict order and the
// account buffer is only written after every validation has passed; a
// failed call leaves the buffer byte-identical to before.
func Process(programID solana.PublicKey, accounts []*Account, data []byte, logger log.Logger) error {
	logger.Info("calculator program entrypoint")

	inst, err := DecodeInstruction(data)
	if err != nil {
		logger.Error("invalid instruction data size", "len", len(data))
		return err
	}

	acc, err := firstAccount(accounts)
	if err != nil {
		logger.Error("calculator account not supplied")
		return err
	}

	if err := acc.CheckOwner(programID); err != nil {
		logger.Error("calculator account does not have the correct owner",
			"account", acc.Key, "owner", acc.Owner, "program", programID)
		return err
	}

	state, err := DecodeState(acc.Data)
	if err != nil {
		logger.Error("calculator account state is malformed", "len", len(acc.Data))
		return err
	}

	if err := state.Apply(inst); err != nil {
		switch inst.Op {
		case OpSub:
			logger.Error("invalid subtraction: first operand is less than second",
				"a", inst.A, "b", inst.B)
		default:
			logger.Error("invalid operation choice", "op", inst.Op)
		}
		return err
	}

	switch inst.Op {
	case OpAdd:
		logger.Info("addition result", "result", state.AddResult)
	case OpSub:
		logger.Info("subtraction result", "result", state.SubResult)
	}

	return state.EncodeInto(acc.Data)
}
