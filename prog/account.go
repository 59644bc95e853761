package prog

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gagliardetto/solana-go"
)

// Account is one owner-tagged ledger record. The program reads and mutates
// Data; everything else is runtime-managed metadata.
type Account struct {
	Key        solana.PublicKey `json:"key"`
	Owner      solana.PublicKey `json:"owner"`
	Lamports   uint64           `json:"lamports"`
	Data       hexutil.Bytes    `json:"data"`
	Executable bool             `json:"executable"`
}

// NewCalcAccount allocates a zero-filled calculator account owned by the
// given program. This is the account provider's job, not the handler's;
// it exists for the host harness and tests.
func NewCalcAccount(key, owner solana.PublicKey) *Account {
	return &Account{
		Key:   key,
		Owner: owner,
		Data:  make(hexutil.Bytes, StateLen),
	}
}

// CheckOwner confirms the account is under the executing program's control.
// Read-only; this is the sole authorization gate.
func (a *Account) CheckOwner(programID solana.PublicKey) error {
	if !a.Owner.Equals(programID) {
		return ErrUnauthorizedAccount
	}
	return nil
}

// firstAccount returns the calculator account: the first entry of the
// account list supplied by the runtime.
func firstAccount(accounts []*Account) (*Account, error) {
	if len(accounts) == 0 {
		return nil, ErrMissingAccount
	}
	return accounts[0], nil
}
