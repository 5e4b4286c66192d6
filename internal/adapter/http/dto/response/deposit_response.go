package response

import (
	"encoding/json"
	"time"

	"tripbudget/internal/domain/entities"
)

type DepositResponse struct {
	ID       string    `json:"id"`
	BudgetID string    `json:"budget_id"`
	Amount   float64   `json:"amount"`
	Currency string    `json:"currency"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`

	GatewayPaymentID string          `json:"gateway_payment_id,omitempty"`
	GatewayResponse  json.RawMessage `json:"gateway_response,omitempty"`
}

func FromDeposit(d entities.Deposit) DepositResponse {
	return DepositResponse{
		ID:               d.ID,
		BudgetID:         d.BudgetID,
		Amount:           d.Amount,
		Currency:         d.Currency,
		Date:             d.Date,
		Status:           string(d.Status),
		GatewayPaymentID: d.GatewayPaymentID,
		GatewayResponse:  d.GatewayResponse,
	}
}

func FromDeposits(deposits []entities.Deposit) []DepositResponse {
	out := make([]DepositResponse, 0, len(deposits))
	for _, d := range deposits {
		out = append(out, FromDeposit(d))
	}
	return out
}
