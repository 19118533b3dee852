package creatorconst

import "github.com/subscast/subscast-contract/contracts/billing/billingconst"

// Seed tags of the derived record addresses.
const (
	SeedRegistry = "creator_registry"
	SeedCreator  = "creator"
	SeedPost     = "post"
)

// Creator plan policy.
const (
	// PlanFrequency is a billing period of every creator plan: 30 days.
	PlanFrequency = 30 * 86400
	// PlanFeePercent is a node fee tier of every creator plan.
	PlanFeePercent = 2
)

// Field and list bounds.
const (
	// MaxNameLength follows plan name bound since the creator name becomes
	// the name of its plan.
	MaxNameLength      = billingconst.MaxPlanNameLength
	MaxTitleLength     = 64
	MaxCreators        = 100
	MaxPostsPerCreator = 50
)

// Error messages thrown by the creator contract.
const (
	ErrInvalidName     = "invalid name"
	ErrInvalidHash     = "invalid script hash"
	ErrInvalidTitle    = "invalid title"
	ErrCreatorExists   = "creator already exists"
	ErrCreatorNotFound = "creator not found"
	ErrPostNotFound    = "post not found"
)
