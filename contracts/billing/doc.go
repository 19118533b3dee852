/*
Package billing implements Billing contract of the Subscast recurring payment
protocol.

Billing contract keeps subscription plans published by plan authors,
subscriptions of the subscribers to these plans and the registry of payment
nodes. Any registered node may trigger a due payment of any active
subscription: the plan amount is moved from the subscriber's payment account
to the plan's payment account, the node takes a fee share of it and the
subscription is re-armed for the next billing period. Funding failures do not
fault the transaction, they cancel the subscription with a persisted
cancellation reason instead.

Tokens are held by the contract in payment accounts, one per owner and NEP-17
token (payment medium). Tokens are deposited with a regular NEP-17 transfer to
the contract (the data argument may name the account owner) and withdrawn by
the owner with Withdraw method. An owner delegates the right to charge the
account to the protocol with Delegate method and revokes it with Revoke.

# Contract notifications

ProtocolInitialized notification. This notification is produced once when the
protocol singleton is created.

	ProtocolInitialized:
	  - name: authority
	    type: Hash160

NodeRegistered notification. This notification is produced on every node
(re-)registration.

	NodeRegistered:
	  - name: node
	    type: Hash160
	  - name: authority
	    type: Hash160
	  - name: payoutWallet
	    type: Hash160

PlanCreated and PlanClosed notifications.

	PlanCreated:
	  - name: plan
	    type: Hash160
	  - name: author
	    type: Hash160
	  - name: name
	    type: String
	PlanClosed:
	  - name: plan
	    type: Hash160

Subscribed and Unsubscribed notifications.

	Subscribed:
	  - name: subscription
	    type: Hash160
	  - name: subscriber
	    type: Hash160
	  - name: plan
	    type: Hash160
	Unsubscribed:
	  - name: subscription
	    type: Hash160

PaymentExecuted notification. This notification is produced when a due
payment has been charged by the node.

	PaymentExecuted:
	  - name: subscription
	    type: Hash160
	  - name: node
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: fee
	    type: Integer

SubscriptionCancelled notification. This notification is produced when a
charge could not be made, reason values are listed in cancellation package.

	SubscriptionCancelled:
	  - name: subscription
	    type: Hash160
	  - name: reason
	    type: Integer

Deposit, Withdraw, Delegate and Revoke notifications track payment accounts.

	Deposit:
	  - name: owner
	    type: Hash160
	  - name: mint
	    type: Hash160
	  - name: amount
	    type: Integer
	Withdraw:
	  - name: owner
	    type: Hash160
	  - name: mint
	    type: Hash160
	  - name: amount
	    type: Integer
	Delegate:
	  - name: owner
	    type: Hash160
	  - name: mint
	    type: Hash160
	  - name: allowance
	    type: Integer
	Revoke:
	  - name: owner
	    type: Hash160
	  - name: mint
	    type: Hash160
*/
package billing

/*
Contract storage model.

# Summary
Every record is stored by the key made of a one-byte kind prefix and the
record address derived with common.DeriveAddress:
 - 'r' + derive("protocol") -> std.Serialize(Protocol)
 - 'u' + derive("plan_author", author) -> std.Serialize(PlanAuthor)
 - 'p' + derive("subscription_plan", author, name) -> std.Serialize(Plan)
 - 'b' + derive("subscriber", authority) -> std.Serialize(Subscriber)
 - 's' + derive("subscription", subscriber record, plan) -> std.Serialize(Subscription)
 - 'n' + derive("node", authority) -> std.Serialize(Node)
 - 'a' + derive("payment_account", owner, mint) -> std.Serialize(PaymentAccount)

# Lists
Reference lists (plan authors and nodes of the protocol, plans of the author,
subscriptions of the plan and of the subscriber) have a fixed capacity, see
billingconst package.
*/
