package request

import "encoding/json"

// DepositCreateRequest is the payload for the deposit route.
//
// `mp_payload` is stored as-is (raw JSON) to support varying Mercado Pago schemas.

type DepositCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
