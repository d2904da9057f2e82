package marketplace

import (
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/lootex/goaggregator/domain"
)

type StepId string

const (
	StepApproveTokens     StepId = "approve-tokens"
	StepCreateOrders      StepId = "create-orders"
	StepApproveAggregator StepId = "approve-aggregator"
	StepExchange          StepId = "exchange"
	StepCancelOrders      StepId = "cancel-orders"
)

type ActionType string

const (
	ActionTransaction   ActionType = "transaction"
	ActionSignTypedData ActionType = "signTypedData"
	ActionPost          ActionType = "post"
)

// TransactionData is the wallet-facing portion of a transaction action
type TransactionData struct {
	To    domain.Address `json:"to"`
	Data  string         `json:"data"`
	Value string         `json:"value,omitempty"`
}

// Action is one unit of work inside a step. Exactly the fields for its type
// are set: transaction actions carry Transaction, signTypedData actions
// carry TypedData, post actions carry Endpoint and Body.
type Action struct {
	Type        ActionType          `json:"type"`
	Transaction *TransactionData    `json:"data,omitempty"`
	TypedData   *apitypes.TypedData `json:"typedData,omitempty"`
	Endpoint    string              `json:"endpoint,omitempty"`
	Body        interface{}         `json:"body,omitempty"`

	// approval context for transaction actions
	Token                domain.Address `json:"token,omitempty"`
	IdentifierOrCriteria string         `json:"identifierOrCriteria,omitempty"`

	// order hashes covered by a cancel transaction
	Hashes []domain.OrderHash `json:"hashes,omitempty"`
}

// Step groups ordered actions. Steps run in sequence, later steps depend on
// the side effects of earlier ones.
type Step struct {
	Id    StepId   `json:"id"`
	Items []Action `json:"items"`

	// set when the signTypedData item signs a bulk order tree and each
	// posted order still needs its proof-carrying signature encoded
	NeedEncodeProofAndSignature bool `json:"needEncodeProofAndSignature,omitempty"`
}

// Plan is the ordered step list handed back to the caller for execution
type Plan struct {
	Steps []Step `json:"steps"`
}
