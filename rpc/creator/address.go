package creator

import (
	"strconv"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/subscast/subscast-contract/contracts/creator/creatorconst"
	"github.com/subscast/subscast-contract/rpc/billing"
)

// CreatorAddress returns address of the creator profile of the authority.
func CreatorAddress(authority util.Uint160) util.Uint160 {
	return billing.DeriveAddress(creatorconst.SeedCreator, authority.BytesBE())
}

// PostAddress returns address of the creator's post with the given index.
func PostAddress(creator util.Uint160, index int) util.Uint160 {
	return billing.DeriveAddress(creatorconst.SeedPost, creator.BytesBE(), []byte(strconv.Itoa(index)))
}

// CreatorPlanAddress returns address of the subscription plan provisioned
// for the creator with the given name.
func CreatorPlanAddress(authority util.Uint160, name string) util.Uint160 {
	return billing.PlanAddress(authority, name)
}
