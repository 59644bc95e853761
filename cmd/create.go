package cmd

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/urfave/cli/v2"

	"github.com/ledgerlabs/abacus/prog"
	"github.com/ledgerlabs/abacus/store"
)

var CreateAccountFlag = &cli.StringFlag{
	Name:  "account",
	Usage: "Base58 public key for the new account, random if empty",
}

func Create(ctx *cli.Context) error {
	programID, err := solana.PublicKeyFromBase58(ctx.String(ProgramFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid program key: %w", err)
	}

	var key solana.PublicKey
	if in := ctx.String(CreateAccountFlag.Name); in != "" {
		key, err = solana.PublicKeyFromBase58(in)
		if err != nil {
			return fmt.Errorf("invalid account key: %w", err)
		}
	} else {
		priv, err := solana.NewRandomPrivateKey()
		if err != nil {
			return fmt.Errorf("failed to generate account key: %w", err)
		}
		key = priv.PublicKey()
	}

	db, err := store.Open(ctx.Path(DBFlag.Name))
	if err != nil {
		return err
	}
	defer db.Close()

	if _, found, err := db.Get(key); err != nil {
		return err
	} else if found {
		return fmt.Errorf("account %s already exists", key)
	}

	acc := prog.NewCalcAccount(key, programID)
	if err := db.Put(acc); err != nil {
		return err
	}
	fmt.Println(key.String())
	return nil
}

var CreateCommand = &cli.Command{
	Name:        "create",
	Usage:       "Allocate a zeroed calculator account",
	Description: "Allocate a zero-filled calculator account owned by the program and persist it. The account key is written to stdout",
	Action:      Create,
	Flags: []cli.Flag{
		DBFlag,
		ProgramFlag,
		CreateAccountFlag,
	},
}
