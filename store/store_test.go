package store

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlabs/abacus/prog"
)

func TestStoreRoundTrip(t *testing.T) {
	s, err := OpenMemory()
	require.NoError(t, err)
	defer s.Close()

	acc := prog.NewCalcAccount(solana.PublicKey{0x02}, solana.PublicKey{0x01})
	acc.Lamports = 500
	require.NoError(t, prog.CalcState{AddResult: 130, SubResult: 70}.EncodeInto(acc.Data))
	require.NoError(t, s.Put(acc))

	got, found, err := s.Get(acc.Key)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, acc, got, "must roundtrip account")
}

func TestStoreMissing(t *testing.T) {
	s, err := OpenMemory()
	require.NoError(t, err)
	defer s.Close()

	got, found, err := s.Get(solana.PublicKey{0xaa})
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, got)
}

func TestStoreDelete(t *testing.T) {
	s, err := OpenMemory()
	require.NoError(t, err)
	defer s.Close()

	acc := prog.NewCalcAccount(solana.PublicKey{0x02}, solana.PublicKey{0x01})
	require.NoError(t, s.Put(acc))
	require.NoError(t, s.Delete(acc.Key))

	_, found, err := s.Get(acc.Key)
	require.NoError(t, err)
	require.False(t, found)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	acc := prog.NewCalcAccount(solana.PublicKey{0x02}, solana.PublicKey{0x01})
	require.NoError(t, s.Put(acc))
	require.NoError(t, s.Close())

	s, err = Open(dir)
	require.NoError(t, err)
	defer s.Close()
	got, found, err := s.Get(acc.Key)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, acc, got)
}
