// Package creator contains RPC wrappers for Subscast Creator contract.
package creator

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// CreatorCreator is a contract-specific creator.Creator type used by its methods.
type CreatorCreator struct {
	Authority util.Uint160
	Name string
	SubscriptionPlan util.Uint160
	DataID []byte
	Posts []util.Uint160
	PostCount *big.Int
}

// CreatorPost is a contract-specific creator.Post type used by its methods.
type CreatorPost struct {
	Creator util.Uint160
	Title string
	Body string
	Index *big.Int
	Visible bool
}

// CreatorInitializedEvent represents "CreatorInitialized" event emitted by the contract.
type CreatorInitializedEvent struct {
	Creator util.Uint160
	Authority util.Uint160
	Plan util.Uint160
}

// PostCreatedEvent represents "PostCreated" event emitted by the contract.
type PostCreatedEvent struct {
	Post util.Uint160
	Creator util.Uint160
	Index *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// BillingContract invokes `billingContract` method of contract.
func (c *ContractReader) BillingContract() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "billingContract"))
}

// CreatorAddress invokes `creatorAddress` method of contract.
func (c *ContractReader) CreatorAddress(authority util.Uint160) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "creatorAddress", authority))
}

// Creators invokes `creators` method of contract.
func (c *ContractReader) Creators() ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "creators"))
}

// GetCreator invokes `getCreator` method of contract.
func (c *ContractReader) GetCreator(authority util.Uint160) (*CreatorCreator, error) {
	return itemToCreatorCreator(unwrap.Item(c.invoker.Call(c.hash, "getCreator", authority)))
}

// GetPost invokes `getPost` method of contract.
func (c *ContractReader) GetPost(post util.Uint160) (*CreatorPost, error) {
	return itemToCreatorPost(unwrap.Item(c.invoker.Call(c.hash, "getPost", post)))
}

// Mint invokes `mint` method of contract.
func (c *ContractReader) Mint() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "mint"))
}

// PostAddress invokes `postAddress` method of contract.
func (c *ContractReader) PostAddress(creator util.Uint160, index *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "postAddress", creator, index))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// CreatePost creates a transaction invoking `createPost` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreatePost(authority util.Uint160, title string, body string, visible bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createPost", authority, title, body, visible)
}

// CreatePostTransaction creates a transaction invoking `createPost` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreatePostTransaction(authority util.Uint160, title string, body string, visible bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createPost", authority, title, body, visible)
}

// CreatePostUnsigned creates a transaction invoking `createPost` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreatePostUnsigned(authority util.Uint160, title string, body string, visible bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createPost", nil, authority, title, body, visible)
}

// InitCreator creates a transaction invoking `initCreator` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) InitCreator(authority util.Uint160, name string, amount *big.Int, dataID []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "initCreator", authority, name, amount, dataID)
}

// InitCreatorTransaction creates a transaction invoking `initCreator` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) InitCreatorTransaction(authority util.Uint160, name string, amount *big.Int, dataID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "initCreator", authority, name, amount, dataID)
}

// InitCreatorUnsigned creates a transaction invoking `initCreator` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) InitCreatorUnsigned(authority util.Uint160, name string, amount *big.Int, dataID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "initCreator", nil, authority, name, amount, dataID)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// itemToCreatorCreator converts stack item into *CreatorCreator.
func itemToCreatorCreator(item stackitem.Item, err error) (*CreatorCreator, error) {
	if err != nil {
		return nil, err
	}
	var res = new(CreatorCreator)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of CreatorCreator from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *CreatorCreator) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Authority, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	index++
	res.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.SubscriptionPlan, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field SubscriptionPlan: %w", err)
	}

	index++
	res.DataID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field DataID: %w", err)
	}

	index++
	res.Posts, err = func (item stackitem.Item) ([]util.Uint160, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]util.Uint160, len(arr))
		for i := range res {
			res[i], err = func (item stackitem.Item) (util.Uint160, error) {
				b, err := item.TryBytes()
				if err != nil {
					return util.Uint160{}, err
				}
				u, err := util.Uint160DecodeBytesBE(b)
				if err != nil {
					return util.Uint160{}, err
				}
				return u, nil
			} (arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Posts: %w", err)
	}

	index++
	res.PostCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PostCount: %w", err)
	}

	return nil
}

// itemToCreatorPost converts stack item into *CreatorPost.
func itemToCreatorPost(item stackitem.Item, err error) (*CreatorPost, error) {
	if err != nil {
		return nil, err
	}
	var res = new(CreatorPost)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of CreatorPost from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *CreatorPost) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Creator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Creator: %w", err)
	}

	index++
	res.Title, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Title: %w", err)
	}

	index++
	res.Body, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Body: %w", err)
	}

	index++
	res.Index, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Index: %w", err)
	}

	index++
	res.Visible, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Visible: %w", err)
	}

	return nil
}

// CreatorInitializedEventsFromApplicationLog retrieves a set of all emitted events
// with "CreatorInitialized" name from the provided [result.ApplicationLog].
func CreatorInitializedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CreatorInitializedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CreatorInitializedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CreatorInitialized" {
				continue
			}
			event := new(CreatorInitializedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CreatorInitializedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CreatorInitializedEvent or
// returns an error if it's not possible to do to so.
func (e *CreatorInitializedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Creator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Creator: %w", err)
	}

	index++
	e.Authority, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	index++
	e.Plan, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Plan: %w", err)
	}

	return nil
}

// PostCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "PostCreated" name from the provided [result.ApplicationLog].
func PostCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*PostCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PostCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PostCreated" {
				continue
			}
			event := new(PostCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PostCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PostCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *PostCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Post, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Post: %w", err)
	}

	index++
	e.Creator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Creator: %w", err)
	}

	index++
	e.Index, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Index: %w", err)
	}

	return nil
}
