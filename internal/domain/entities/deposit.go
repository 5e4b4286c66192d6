package entities

import (
	"encoding/json"
	"time"
)

// DepositStatus represents the deposit processing outcome.
type DepositStatus string

const (
	DepositStatusPending  DepositStatus = "pending"
	DepositStatusApproved DepositStatus = "approved"
	DepositStatusDenied   DepositStatus = "denied"
)

// Deposit is the down payment a customer places on an approved budget.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (budget_id-index): budget_id
//
// Gateway payload:
//   - GatewayPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - GatewayResponse keeps the provider response as returned.
type Deposit struct {
	ID       string        `json:"id"`
	BudgetID string        `json:"budget_id"`
	Amount   float64       `json:"amount"`
	Currency string        `json:"currency"`
	Date     time.Time     `json:"date"`
	Status   DepositStatus `json:"status"`

	GatewayPaymentID  string          `json:"gateway_payment_id,omitempty"`
	GatewayPayloadRaw json.RawMessage `json:"gateway_payload_raw,omitempty"`
	GatewayResponse   json.RawMessage `json:"gateway_response,omitempty"`
}
