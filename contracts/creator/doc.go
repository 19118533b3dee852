/*
Package creator implements Creator contract of the Subscast protocol.

Creator contract keeps creator profiles and their posts. Creator onboarding
provisions the creator's monthly subscription plan in Billing contract, the
profile is linked to the returned plan. Billing contract hash and the payment
medium of creator plans (GAS by default) are set on deploy.

# Contract notifications

CreatorInitialized notification. This notification is produced when a new
creator profile is created.

	CreatorInitialized:
	  - name: creator
	    type: Hash160
	  - name: authority
	    type: Hash160
	  - name: plan
	    type: Hash160

PostCreated notification. This notification is produced when the creator
publishes a post.

	PostCreated:
	  - name: post
	    type: Hash160
	  - name: creator
	    type: Hash160
	  - name: index
	    type: Integer
*/
package creator
