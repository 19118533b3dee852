package creator

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
	"github.com/subscast/subscast-contract/rpc/billing"
)

func TestPostAddress(t *testing.T) {
	c := CreatorAddress(util.Uint160{1})

	require.NotEqual(t, PostAddress(c, 0), PostAddress(c, 1))
	require.NotEqual(t, PostAddress(c, 1), PostAddress(c, 10))
	require.Equal(t, billing.PlanAddress(util.Uint160{1}, "alice"), CreatorPlanAddress(util.Uint160{1}, "alice"))
}
