// Package billing contains RPC wrappers for Subscast Billing contract.
package billing

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

// BillingNode is a contract-specific billing.Node type used by its methods.
type BillingNode struct {
	Authority util.Uint160
	PayoutWallet util.Uint160
	PaymentAccount util.Uint160
	Registered bool
}

// BillingPaymentAccount is a contract-specific billing.PaymentAccount type used by its methods.
type BillingPaymentAccount struct {
	Owner util.Uint160
	Mint util.Uint160
	Balance *big.Int
	Delegated bool
	Allowance *big.Int
}

// BillingPlan is a contract-specific billing.Plan type used by its methods.
type BillingPlan struct {
	Name string
	Author util.Uint160
	PaymentAccount util.Uint160
	Mint util.Uint160
	Amount *big.Int
	Frequency *big.Int
	FeePercent *big.Int
	Active bool
	Subscriptions []util.Uint160
}

// BillingPlanAuthor is a contract-specific billing.PlanAuthor type used by its methods.
type BillingPlanAuthor struct {
	Authority util.Uint160
	Plans []util.Uint160
}

// BillingProtocol is a contract-specific billing.Protocol type used by its methods.
type BillingProtocol struct {
	Authority util.Uint160
	PlanAuthors []util.Uint160
	Nodes []util.Uint160
}

// BillingSubscriber is a contract-specific billing.Subscriber type used by its methods.
type BillingSubscriber struct {
	Authority util.Uint160
	PaymentAccount util.Uint160
	Subscriptions []util.Uint160
}

// BillingSubscription is a contract-specific billing.Subscription type used by its methods.
type BillingSubscription struct {
	Subscriber util.Uint160
	Plan util.Uint160
	Active bool
	Cancelled bool
	CancellationReason *big.Int
	LastPaymentTimestamp *big.Int
	NextPaymentTimestamp *big.Int
}

// ProtocolInitializedEvent represents "ProtocolInitialized" event emitted by the contract.
type ProtocolInitializedEvent struct {
	Authority util.Uint160
}

// NodeRegisteredEvent represents "NodeRegistered" event emitted by the contract.
type NodeRegisteredEvent struct {
	Node util.Uint160
	Authority util.Uint160
	PayoutWallet util.Uint160
}

// PlanCreatedEvent represents "PlanCreated" event emitted by the contract.
type PlanCreatedEvent struct {
	Plan util.Uint160
	Author util.Uint160
	Name string
}

// PlanClosedEvent represents "PlanClosed" event emitted by the contract.
type PlanClosedEvent struct {
	Plan util.Uint160
}

// SubscribedEvent represents "Subscribed" event emitted by the contract.
type SubscribedEvent struct {
	Subscription util.Uint160
	Subscriber util.Uint160
	Plan util.Uint160
}

// UnsubscribedEvent represents "Unsubscribed" event emitted by the contract.
type UnsubscribedEvent struct {
	Subscription util.Uint160
}

// PaymentExecutedEvent represents "PaymentExecuted" event emitted by the contract.
type PaymentExecutedEvent struct {
	Subscription util.Uint160
	Node util.Uint160
	Amount *big.Int
	Fee *big.Int
}

// SubscriptionCancelledEvent represents "SubscriptionCancelled" event emitted by the contract.
type SubscriptionCancelledEvent struct {
	Subscription util.Uint160
	Reason *big.Int
}

// DepositEvent represents "Deposit" event emitted by the contract.
type DepositEvent struct {
	Owner util.Uint160
	Mint util.Uint160
	Amount *big.Int
}

// WithdrawEvent represents "Withdraw" event emitted by the contract.
type WithdrawEvent struct {
	Owner util.Uint160
	Mint util.Uint160
	Amount *big.Int
}

// DelegateEvent represents "Delegate" event emitted by the contract.
type DelegateEvent struct {
	Owner util.Uint160
	Mint util.Uint160
	Allowance *big.Int
}

// RevokeEvent represents "Revoke" event emitted by the contract.
type RevokeEvent struct {
	Owner util.Uint160
	Mint util.Uint160
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

// DueSubscriptions invokes `dueSubscriptions` method of contract.
func (c *ContractReader) DueSubscriptions(now *big.Int, limit *big.Int) ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "dueSubscriptions", now, limit))
}

// GetNode invokes `getNode` method of contract.
func (c *ContractReader) GetNode(authority util.Uint160) (*BillingNode, error) {
	return itemToBillingNode(unwrap.Item(c.invoker.Call(c.hash, "getNode", authority)))
}

// GetPaymentAccount invokes `getPaymentAccount` method of contract.
func (c *ContractReader) GetPaymentAccount(owner util.Uint160, mint util.Uint160) (*BillingPaymentAccount, error) {
	return itemToBillingPaymentAccount(unwrap.Item(c.invoker.Call(c.hash, "getPaymentAccount", owner, mint)))
}

// GetPlan invokes `getPlan` method of contract.
func (c *ContractReader) GetPlan(plan util.Uint160) (*BillingPlan, error) {
	return itemToBillingPlan(unwrap.Item(c.invoker.Call(c.hash, "getPlan", plan)))
}

// GetPlanAuthor invokes `getPlanAuthor` method of contract.
func (c *ContractReader) GetPlanAuthor(author util.Uint160) (*BillingPlanAuthor, error) {
	return itemToBillingPlanAuthor(unwrap.Item(c.invoker.Call(c.hash, "getPlanAuthor", author)))
}

// GetProtocol invokes `getProtocol` method of contract.
func (c *ContractReader) GetProtocol() (*BillingProtocol, error) {
	return itemToBillingProtocol(unwrap.Item(c.invoker.Call(c.hash, "getProtocol")))
}

// GetSubscriber invokes `getSubscriber` method of contract.
func (c *ContractReader) GetSubscriber(authority util.Uint160) (*BillingSubscriber, error) {
	return itemToBillingSubscriber(unwrap.Item(c.invoker.Call(c.hash, "getSubscriber", authority)))
}

// GetSubscription invokes `getSubscription` method of contract.
func (c *ContractReader) GetSubscription(subscription util.Uint160) (*BillingSubscription, error) {
	return itemToBillingSubscription(unwrap.Item(c.invoker.Call(c.hash, "getSubscription", subscription)))
}

// PaymentAccountAddress invokes `paymentAccountAddress` method of contract.
func (c *ContractReader) PaymentAccountAddress(owner util.Uint160, mint util.Uint160) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "paymentAccountAddress", owner, mint))
}

// PlanAddress invokes `planAddress` method of contract.
func (c *ContractReader) PlanAddress(author util.Uint160, name string) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "planAddress", author, name))
}

// SubscriptionAddress invokes `subscriptionAddress` method of contract.
func (c *ContractReader) SubscriptionAddress(subscriber util.Uint160, plan util.Uint160) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "subscriptionAddress", subscriber, plan))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// ClosePlan creates a transaction invoking `closePlan` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ClosePlan(author util.Uint160, plan util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "closePlan", author, plan)
}

// ClosePlanTransaction creates a transaction invoking `closePlan` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClosePlanTransaction(author util.Uint160, plan util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "closePlan", author, plan)
}

// ClosePlanUnsigned creates a transaction invoking `closePlan` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClosePlanUnsigned(author util.Uint160, plan util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "closePlan", nil, author, plan)
}

// CreateSubscriptionPlan creates a transaction invoking `createSubscriptionPlan` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateSubscriptionPlan(author util.Uint160, name string, amount *big.Int, frequency *big.Int, feePercent *big.Int, mint util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createSubscriptionPlan", author, name, amount, frequency, feePercent, mint)
}

// CreateSubscriptionPlanTransaction creates a transaction invoking `createSubscriptionPlan` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateSubscriptionPlanTransaction(author util.Uint160, name string, amount *big.Int, frequency *big.Int, feePercent *big.Int, mint util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createSubscriptionPlan", author, name, amount, frequency, feePercent, mint)
}

// CreateSubscriptionPlanUnsigned creates a transaction invoking `createSubscriptionPlan` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateSubscriptionPlanUnsigned(author util.Uint160, name string, amount *big.Int, frequency *big.Int, feePercent *big.Int, mint util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createSubscriptionPlan", nil, author, name, amount, frequency, feePercent, mint)
}

// Delegate creates a transaction invoking `delegate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Delegate(owner util.Uint160, mint util.Uint160, allowance *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "delegate", owner, mint, allowance)
}

// DelegateTransaction creates a transaction invoking `delegate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DelegateTransaction(owner util.Uint160, mint util.Uint160, allowance *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "delegate", owner, mint, allowance)
}

// DelegateUnsigned creates a transaction invoking `delegate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DelegateUnsigned(owner util.Uint160, mint util.Uint160, allowance *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "delegate", nil, owner, mint, allowance)
}

// InitProtocol creates a transaction invoking `initProtocol` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) InitProtocol(authority util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "initProtocol", authority)
}

// InitProtocolTransaction creates a transaction invoking `initProtocol` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) InitProtocolTransaction(authority util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "initProtocol", authority)
}

// InitProtocolUnsigned creates a transaction invoking `initProtocol` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) InitProtocolUnsigned(authority util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "initProtocol", nil, authority)
}

// RegisterNode creates a transaction invoking `registerNode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterNode(authority util.Uint160, payoutWallet util.Uint160, mint util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerNode", authority, payoutWallet, mint)
}

// RegisterNodeTransaction creates a transaction invoking `registerNode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterNodeTransaction(authority util.Uint160, payoutWallet util.Uint160, mint util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerNode", authority, payoutWallet, mint)
}

// RegisterNodeUnsigned creates a transaction invoking `registerNode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterNodeUnsigned(authority util.Uint160, payoutWallet util.Uint160, mint util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerNode", nil, authority, payoutWallet, mint)
}

// Revoke creates a transaction invoking `revoke` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Revoke(owner util.Uint160, mint util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "revoke", owner, mint)
}

// RevokeTransaction creates a transaction invoking `revoke` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RevokeTransaction(owner util.Uint160, mint util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "revoke", owner, mint)
}

// RevokeUnsigned creates a transaction invoking `revoke` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RevokeUnsigned(owner util.Uint160, mint util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "revoke", nil, owner, mint)
}

// Subscribe creates a transaction invoking `subscribe` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Subscribe(subscriber util.Uint160, plan util.Uint160, mint util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "subscribe", subscriber, plan, mint)
}

// SubscribeTransaction creates a transaction invoking `subscribe` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubscribeTransaction(subscriber util.Uint160, plan util.Uint160, mint util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "subscribe", subscriber, plan, mint)
}

// SubscribeUnsigned creates a transaction invoking `subscribe` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubscribeUnsigned(subscriber util.Uint160, plan util.Uint160, mint util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "subscribe", nil, subscriber, plan, mint)
}

// TriggerPayment creates a transaction invoking `triggerPayment` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TriggerPayment(node util.Uint160, subscription util.Uint160, plan util.Uint160, subscriber util.Uint160, mint util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "triggerPayment", node, subscription, plan, subscriber, mint)
}

// TriggerPaymentTransaction creates a transaction invoking `triggerPayment` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TriggerPaymentTransaction(node util.Uint160, subscription util.Uint160, plan util.Uint160, subscriber util.Uint160, mint util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "triggerPayment", node, subscription, plan, subscriber, mint)
}

// TriggerPaymentUnsigned creates a transaction invoking `triggerPayment` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TriggerPaymentUnsigned(node util.Uint160, subscription util.Uint160, plan util.Uint160, subscriber util.Uint160, mint util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "triggerPayment", nil, node, subscription, plan, subscriber, mint)
}

// Unsubscribe creates a transaction invoking `unsubscribe` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Unsubscribe(subscriber util.Uint160, subscription util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unsubscribe", subscriber, subscription)
}

// UnsubscribeTransaction creates a transaction invoking `unsubscribe` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnsubscribeTransaction(subscriber util.Uint160, subscription util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unsubscribe", subscriber, subscription)
}

// UnsubscribeUnsigned creates a transaction invoking `unsubscribe` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnsubscribeUnsigned(subscriber util.Uint160, subscription util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unsubscribe", nil, subscriber, subscription)
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

// Withdraw creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Withdraw(owner util.Uint160, mint util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdraw", owner, mint, amount)
}

// WithdrawTransaction creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawTransaction(owner util.Uint160, mint util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdraw", owner, mint, amount)
}

// WithdrawUnsigned creates a transaction invoking `withdraw` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawUnsigned(owner util.Uint160, mint util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdraw", nil, owner, mint, amount)
}

// itemToBillingNode converts stack item into *BillingNode.
func itemToBillingNode(item stackitem.Item, err error) (*BillingNode, error) {
	if err != nil {
		return nil, err
	}
	var res = new(BillingNode)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of BillingNode from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *BillingNode) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
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
	res.PayoutWallet, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field PayoutWallet: %w", err)
	}

	index++
	res.PaymentAccount, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field PaymentAccount: %w", err)
	}

	index++
	res.Registered, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Registered: %w", err)
	}

	return nil
}

// itemToBillingPaymentAccount converts stack item into *BillingPaymentAccount.
func itemToBillingPaymentAccount(item stackitem.Item, err error) (*BillingPaymentAccount, error) {
	if err != nil {
		return nil, err
	}
	var res = new(BillingPaymentAccount)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of BillingPaymentAccount from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *BillingPaymentAccount) FromStackItem(item stackitem.Item) error {
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
	res.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.Mint, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Mint: %w", err)
	}

	index++
	res.Balance, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Balance: %w", err)
	}

	index++
	res.Delegated, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Delegated: %w", err)
	}

	index++
	res.Allowance, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Allowance: %w", err)
	}

	return nil
}

// itemToBillingPlan converts stack item into *BillingPlan.
func itemToBillingPlan(item stackitem.Item, err error) (*BillingPlan, error) {
	if err != nil {
		return nil, err
	}
	var res = new(BillingPlan)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of BillingPlan from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *BillingPlan) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 9 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
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
	res.Author, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Author: %w", err)
	}

	index++
	res.PaymentAccount, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field PaymentAccount: %w", err)
	}

	index++
	res.Mint, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Mint: %w", err)
	}

	index++
	res.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	res.Frequency, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Frequency: %w", err)
	}

	index++
	res.FeePercent, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FeePercent: %w", err)
	}

	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	index++
	res.Subscriptions, err = func (item stackitem.Item) ([]util.Uint160, error) {
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
		return fmt.Errorf("field Subscriptions: %w", err)
	}

	return nil
}

// itemToBillingPlanAuthor converts stack item into *BillingPlanAuthor.
func itemToBillingPlanAuthor(item stackitem.Item, err error) (*BillingPlanAuthor, error) {
	if err != nil {
		return nil, err
	}
	var res = new(BillingPlanAuthor)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of BillingPlanAuthor from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *BillingPlanAuthor) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
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
	res.Plans, err = func (item stackitem.Item) ([]util.Uint160, error) {
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
		return fmt.Errorf("field Plans: %w", err)
	}

	return nil
}

// itemToBillingProtocol converts stack item into *BillingProtocol.
func itemToBillingProtocol(item stackitem.Item, err error) (*BillingProtocol, error) {
	if err != nil {
		return nil, err
	}
	var res = new(BillingProtocol)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of BillingProtocol from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *BillingProtocol) FromStackItem(item stackitem.Item) error {
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
	res.PlanAuthors, err = func (item stackitem.Item) ([]util.Uint160, error) {
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
		return fmt.Errorf("field PlanAuthors: %w", err)
	}

	index++
	res.Nodes, err = func (item stackitem.Item) ([]util.Uint160, error) {
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
		return fmt.Errorf("field Nodes: %w", err)
	}

	return nil
}

// itemToBillingSubscriber converts stack item into *BillingSubscriber.
func itemToBillingSubscriber(item stackitem.Item, err error) (*BillingSubscriber, error) {
	if err != nil {
		return nil, err
	}
	var res = new(BillingSubscriber)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of BillingSubscriber from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *BillingSubscriber) FromStackItem(item stackitem.Item) error {
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
	res.PaymentAccount, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field PaymentAccount: %w", err)
	}

	index++
	res.Subscriptions, err = func (item stackitem.Item) ([]util.Uint160, error) {
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
		return fmt.Errorf("field Subscriptions: %w", err)
	}

	return nil
}

// itemToBillingSubscription converts stack item into *BillingSubscription.
func itemToBillingSubscription(item stackitem.Item, err error) (*BillingSubscription, error) {
	if err != nil {
		return nil, err
	}
	var res = new(BillingSubscription)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of BillingSubscription from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *BillingSubscription) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 7 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Subscriber, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Subscriber: %w", err)
	}

	index++
	res.Plan, err = func (item stackitem.Item) (util.Uint160, error) {
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

	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	index++
	res.Cancelled, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Cancelled: %w", err)
	}

	index++
	res.CancellationReason, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CancellationReason: %w", err)
	}

	index++
	res.LastPaymentTimestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field LastPaymentTimestamp: %w", err)
	}

	index++
	res.NextPaymentTimestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NextPaymentTimestamp: %w", err)
	}

	return nil
}

// ProtocolInitializedEventsFromApplicationLog retrieves a set of all emitted events
// with "ProtocolInitialized" name from the provided [result.ApplicationLog].
func ProtocolInitializedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProtocolInitializedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProtocolInitializedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProtocolInitialized" {
				continue
			}
			event := new(ProtocolInitializedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProtocolInitializedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProtocolInitializedEvent or
// returns an error if it's not possible to do to so.
func (e *ProtocolInitializedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
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

	return nil
}

// NodeRegisteredEventsFromApplicationLog retrieves a set of all emitted events
// with "NodeRegistered" name from the provided [result.ApplicationLog].
func NodeRegisteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*NodeRegisteredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NodeRegisteredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NodeRegistered" {
				continue
			}
			event := new(NodeRegisteredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NodeRegisteredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NodeRegisteredEvent or
// returns an error if it's not possible to do to so.
func (e *NodeRegisteredEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Node, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Node: %w", err)
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
	e.PayoutWallet, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field PayoutWallet: %w", err)
	}

	return nil
}

// PlanCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "PlanCreated" name from the provided [result.ApplicationLog].
func PlanCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*PlanCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PlanCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PlanCreated" {
				continue
			}
			event := new(PlanCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PlanCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PlanCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *PlanCreatedEvent) FromStackItem(item *stackitem.Array) error {
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

	index++
	e.Author, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Author: %w", err)
	}

	index++
	e.Name, err = func (item stackitem.Item) (string, error) {
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

	return nil
}

// PlanClosedEventsFromApplicationLog retrieves a set of all emitted events
// with "PlanClosed" name from the provided [result.ApplicationLog].
func PlanClosedEventsFromApplicationLog(log *result.ApplicationLog) ([]*PlanClosedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PlanClosedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PlanClosed" {
				continue
			}
			event := new(PlanClosedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PlanClosedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PlanClosedEvent or
// returns an error if it's not possible to do to so.
func (e *PlanClosedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
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

// SubscribedEventsFromApplicationLog retrieves a set of all emitted events
// with "Subscribed" name from the provided [result.ApplicationLog].
func SubscribedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SubscribedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SubscribedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Subscribed" {
				continue
			}
			event := new(SubscribedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SubscribedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SubscribedEvent or
// returns an error if it's not possible to do to so.
func (e *SubscribedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Subscription, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Subscription: %w", err)
	}

	index++
	e.Subscriber, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Subscriber: %w", err)
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

// UnsubscribedEventsFromApplicationLog retrieves a set of all emitted events
// with "Unsubscribed" name from the provided [result.ApplicationLog].
func UnsubscribedEventsFromApplicationLog(log *result.ApplicationLog) ([]*UnsubscribedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*UnsubscribedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Unsubscribed" {
				continue
			}
			event := new(UnsubscribedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize UnsubscribedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to UnsubscribedEvent or
// returns an error if it's not possible to do to so.
func (e *UnsubscribedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Subscription, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Subscription: %w", err)
	}

	return nil
}

// PaymentExecutedEventsFromApplicationLog retrieves a set of all emitted events
// with "PaymentExecuted" name from the provided [result.ApplicationLog].
func PaymentExecutedEventsFromApplicationLog(log *result.ApplicationLog) ([]*PaymentExecutedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PaymentExecutedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PaymentExecuted" {
				continue
			}
			event := new(PaymentExecutedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PaymentExecutedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PaymentExecutedEvent or
// returns an error if it's not possible to do to so.
func (e *PaymentExecutedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Subscription, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Subscription: %w", err)
	}

	index++
	e.Node, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Node: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Fee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Fee: %w", err)
	}

	return nil
}

// SubscriptionCancelledEventsFromApplicationLog retrieves a set of all emitted events
// with "SubscriptionCancelled" name from the provided [result.ApplicationLog].
func SubscriptionCancelledEventsFromApplicationLog(log *result.ApplicationLog) ([]*SubscriptionCancelledEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SubscriptionCancelledEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SubscriptionCancelled" {
				continue
			}
			event := new(SubscriptionCancelledEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SubscriptionCancelledEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SubscriptionCancelledEvent or
// returns an error if it's not possible to do to so.
func (e *SubscriptionCancelledEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Subscription, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Subscription: %w", err)
	}

	index++
	e.Reason, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Reason: %w", err)
	}

	return nil
}

// DepositEventsFromApplicationLog retrieves a set of all emitted events
// with "Deposit" name from the provided [result.ApplicationLog].
func DepositEventsFromApplicationLog(log *result.ApplicationLog) ([]*DepositEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DepositEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Deposit" {
				continue
			}
			event := new(DepositEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DepositEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DepositEvent or
// returns an error if it's not possible to do to so.
func (e *DepositEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Mint, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Mint: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// WithdrawEventsFromApplicationLog retrieves a set of all emitted events
// with "Withdraw" name from the provided [result.ApplicationLog].
func WithdrawEventsFromApplicationLog(log *result.ApplicationLog) ([]*WithdrawEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*WithdrawEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Withdraw" {
				continue
			}
			event := new(WithdrawEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize WithdrawEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to WithdrawEvent or
// returns an error if it's not possible to do to so.
func (e *WithdrawEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Mint, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Mint: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// DelegateEventsFromApplicationLog retrieves a set of all emitted events
// with "Delegate" name from the provided [result.ApplicationLog].
func DelegateEventsFromApplicationLog(log *result.ApplicationLog) ([]*DelegateEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DelegateEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Delegate" {
				continue
			}
			event := new(DelegateEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DelegateEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DelegateEvent or
// returns an error if it's not possible to do to so.
func (e *DelegateEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Mint, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Mint: %w", err)
	}

	index++
	e.Allowance, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Allowance: %w", err)
	}

	return nil
}

// RevokeEventsFromApplicationLog retrieves a set of all emitted events
// with "Revoke" name from the provided [result.ApplicationLog].
func RevokeEventsFromApplicationLog(log *result.ApplicationLog) ([]*RevokeEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RevokeEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Revoke" {
				continue
			}
			event := new(RevokeEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RevokeEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RevokeEvent or
// returns an error if it's not possible to do to so.
func (e *RevokeEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Mint, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Mint: %w", err)
	}

	return nil
}
