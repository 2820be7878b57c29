package wallet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oruchain/sendtx/errors"
)

func TestNewSourceEnforcesOneSource(t *testing.T) {
	_, err := NewSource("wallet/wallet.key", "SENDTX_MNEMONIC")
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindUsage))

	_, err = NewSource("", "")
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindUsage))

	src, err := NewSource("wallet/wallet.key", "")
	require.NoError(t, err)
	assert.Equal(t, "file:wallet/wallet.key", src.Describe())

	src, err = NewSource("", "SENDTX_MNEMONIC")
	require.NoError(t, err)
	assert.Equal(t, "env:SENDTX_MNEMONIC", src.Describe())
}

func TestResolveFromFileTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.key")
	require.NoError(t, os.WriteFile(path, []byte("  "+testMnemonic+"\n"), 0o600))

	src, err := NewSource(path, "")
	require.NoError(t, err)
	phrase, err := src.Resolve()
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, phrase)
}

func TestResolveMissingFileIsActionable(t *testing.T) {
	src, err := NewSource(filepath.Join(t.TempDir(), "absent.key"), "")
	require.NoError(t, err)

	_, err = src.Resolve()
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindCredential))
	assert.Contains(t, err.Error(), "readme.md")
}

func TestResolveEmptyFileRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.key")
	require.NoError(t, os.WriteFile(path, []byte("   \n"), 0o600))
	src, _ := NewSource(path, "")
	_, err := src.Resolve()
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindCredential))
}

func TestResolveFromEnv(t *testing.T) {
	t.Setenv("SENDTX_TEST_MNEMONIC", " "+testMnemonic+" ")
	src, err := NewSource("", "SENDTX_TEST_MNEMONIC")
	require.NoError(t, err)
	phrase, err := src.Resolve()
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, phrase)
}

func TestResolveUnsetEnvRejected(t *testing.T) {
	src, _ := NewSource("", "SENDTX_TEST_MNEMONIC_UNSET")
	_, err := src.Resolve()
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindCredential))
	assert.Contains(t, err.Error(), "readme.md")
}
