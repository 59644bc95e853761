package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"

	"github.com/ledgerlabs/abacus/prog"
	"github.com/ledgerlabs/abacus/store"
)

// RunResult is the JSON output of a successful invocation.
type RunResult struct {
	Account solana.PublicKey `json:"account"`
	State   prog.CalcState   `json:"state"`
}

func parseOp(s string) (uint32, error) {
	switch s {
	case "add":
		return prog.OpAdd, nil
	case "sub":
		return prog.OpSub, nil
	default:
		return 0, fmt.Errorf("unknown operation %q, must be add or sub", s)
	}
}

// buildInstruction assembles the 12-byte payload: raw hex wins over the
// operand/operation form.
func buildInstruction(rawHex string, a, b uint64, op string) ([]byte, error) {
	if rawHex != "" {
		data, err := hexutil.Decode(rawHex)
		if err != nil {
			return nil, fmt.Errorf("invalid instruction hex: %w", err)
		}
		return data, nil
	}
	sel, err := parseOp(op)
	if err != nil {
		return nil, err
	}
	if a > math.MaxUint32 || b > math.MaxUint32 {
		return nil, fmt.Errorf("operands must fit in 32 bits, got a=%d b=%d", a, b)
	}
	inst := prog.Instruction{A: uint32(a), B: uint32(b), Op: sel}
	return inst.Encode(), nil
}

func instructionData(ctx *cli.Context) ([]byte, error) {
	return buildInstruction(
		ctx.String(DataFlag.Name),
		ctx.Uint64(OperandAFlag.Name),
		ctx.Uint64(OperandBFlag.Name),
		ctx.String(OpFlag.Name),
	)
}

func Run(ctx *cli.Context) error {
	if ctx.Bool(PProfCPUFlag.Name) {
		defer profile.Start(profile.NoShutdownHook, profile.ProfilePath("."), profile.CPUProfile).Stop()
	}

	programID, err := solana.PublicKeyFromBase58(ctx.String(ProgramFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid program key: %w", err)
	}
	accountKey, err := solana.PublicKeyFromBase58(ctx.String(AccountFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid account key: %w", err)
	}
	data, err := instructionData(ctx)
	if err != nil {
		return err
	}

	db, err := store.Open(ctx.Path(DBFlag.Name))
	if err != nil {
		return err
	}
	defer db.Close()

	acc, found, err := db.Get(accountKey)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("account %s not found", accountKey)
	}

	l := Logger(os.Stderr, log.LevelInfo)
	if err := prog.Process(programID, []*prog.Account{acc}, data, l); err != nil {
		return fmt.Errorf("invocation failed: %w", err)
	}
	if err := db.Put(acc); err != nil {
		return fmt.Errorf("failed to persist account %s: %w", acc.Key, err)
	}

	state, err := prog.DecodeState(acc.Data)
	if err != nil {
		return err
	}
	return writeJSON(ctx.Path(OutputFlag.Name), &RunResult{
		Account: acc.Key,
		State:   state,
	})
}

var RunCommand = &cli.Command{
	Name:        "run",
	Usage:       "Run one calculator invocation against an account",
	Description: "Build or accept a 12-byte instruction, invoke the program on the stored account, and persist the mutated state on success",
	Action:      Run,
	Flags: []cli.Flag{
		DBFlag,
		ProgramFlag,
		AccountFlag,
		DataFlag,
		OperandAFlag,
		OperandBFlag,
		OpFlag,
		OutputFlag,
		PProfCPUFlag,
	},
}
