package testchain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddBlockAt(t *testing.T) {
	e := NewExecutor(t)

	h := e.Chain.BlockHeight()
	AddBlockAt(t, e, Epoch)
	AddBlockAt(t, e, Epoch+60)

	require.Equal(t, h+2, e.Chain.BlockHeight())
	require.Equal(t, uint64(Epoch+60)*1000, e.TopBlock(t).Timestamp)
}
