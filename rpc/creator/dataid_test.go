package creator

import (
	"crypto/sha256"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"
)

func TestParseDataID(t *testing.T) {
	h := sha256.Sum256([]byte("profile"))
	raw := append([]byte{multihashSHA256, sha256Size}, h[:]...)
	s := base58.Encode(raw)
	require.Equal(t, byte('Q'), s[0])

	id, err := ParseDataID(s)
	require.NoError(t, err)
	require.Equal(t, raw, id)
	require.Equal(t, s, FormatDataID(id))

	_, err = ParseDataID("0OIl")
	require.ErrorIs(t, err, ErrInvalidDataID)

	_, err = ParseDataID(base58.Encode(h[:]))
	require.ErrorIs(t, err, ErrInvalidDataID)
}
