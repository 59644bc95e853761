package cmd

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/urfave/cli/v2"

	"github.com/ledgerlabs/abacus/prog"
	"github.com/ledgerlabs/abacus/store"
)

type ViewOutput struct {
	Account *prog.Account  `json:"account"`
	State   prog.CalcState `json:"state"`
}

func View(ctx *cli.Context) error {
	accountKey, err := solana.PublicKeyFromBase58(ctx.String(AccountFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid account key: %w", err)
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

	state, err := prog.DecodeState(acc.Data)
	if err != nil {
		return fmt.Errorf("account %s holds undecodable state: %w", acc.Key, err)
	}
	return writeJSON(ctx.Path(OutputFlag.Name), &ViewOutput{
		Account: acc,
		State:   state,
	})
}

var ViewCommand = &cli.Command{
	Name:        "view",
	Usage:       "Print a stored account and its decoded state as JSON",
	Action:      View,
	Flags: []cli.Flag{
		DBFlag,
		AccountFlag,
		OutputFlag,
	},
}
