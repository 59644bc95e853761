package cmd

import (
	"github.com/urfave/cli/v2"
)

var (
	DBFlag = &cli.PathFlag{
		Name:  "db",
		Usage: "Directory of the account database",
		Value: "abacus.db",
	}
	ProgramFlag = &cli.StringFlag{
		Name:     "program",
		Usage:    "Base58 public key of the executing program",
		Required: true,
	}
	AccountFlag = &cli.StringFlag{
		Name:     "account",
		Usage:    "Base58 public key of the calculator account",
		Required: true,
	}
	DataFlag = &cli.StringFlag{
		Name:  "data",
		Usage: "Raw 12-byte instruction payload as hex, overrides --a/--b/--op",
	}
	OperandAFlag = &cli.Uint64Flag{
		Name:  "a",
		Usage: "First operand (u32)",
	}
	OperandBFlag = &cli.Uint64Flag{
		Name:  "b",
		Usage: "Second operand (u32)",
	}
	OpFlag = &cli.StringFlag{
		Name:  "op",
		Usage: "Operation to perform: add or sub",
		Value: "add",
	}
	OutputFlag = &cli.PathFlag{
		Name:  "output",
		Usage: "Path to write the JSON result to, stdout if empty or '-'",
	}
	PProfCPUFlag = &cli.BoolFlag{
		Name:  "pprof.cpu",
		Usage: "enable pprof cpu profiling",
	}
)
