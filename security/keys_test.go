package security

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyPairRoundTripThroughFiles(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	privatePath := filepath.Join(dir, "encoding.pem")
	publicPath := filepath.Join(dir, "decoding.pem")

	keys, err := GenerateKeyPair()
	req.NoError(err)
	req.NoError(keys.SaveKeyPair(privatePath, publicPath))

	info, err := os.Stat(privatePath)
	req.NoError(err)
	req.Equal(os.FileMode(0600), info.Mode().Perm())

	loaded, err := LoadKeyPair(privatePath, publicPath)
	req.NoError(err)
	req.True(keys.Private.Equal(loaded.Private))
	req.True(keys.Public.Equal(loaded.Public))

	public, err := LoadPublicKey(publicPath)
	req.NoError(err)
	req.True(keys.Public.Equal(public))
}

func TestParseKeyPairRejectsMismatchedKeys(t *testing.T) {
	req := require.New(t)

	first, err := GenerateKeyPair()
	req.NoError(err)
	second, err := GenerateKeyPair()
	req.NoError(err)

	privatePEM, _, err := first.EncodePEM()
	req.NoError(err)
	_, publicPEM, err := second.EncodePEM()
	req.NoError(err)

	_, err = ParseKeyPair(privatePEM, publicPEM)
	req.ErrorContains(err, "does not match")
}

func TestParseKeyPairRejectsGarbage(t *testing.T) {
	req := require.New(t)

	keys, err := GenerateKeyPair()
	req.NoError(err)
	_, publicPEM, err := keys.EncodePEM()
	req.NoError(err)

	_, err = ParseKeyPair([]byte("not pem"), publicPEM)
	req.Error(err)

	_, err = LoadKeyPair(filepath.Join(t.TempDir(), "missing.pem"), "missing.pub")
	req.ErrorContains(err, "reading private key")
}
