package entities

import "encoding/json"

// ProviderOrderRequest is what we ask the payment provider to create.
// Receipt is our payment id, so provider dashboards can be traced back.
type ProviderOrderRequest struct {
	AmountMinor int64
	Currency    string
	Receipt     string
	Notes       map[string]string
}

// ProviderOrder is the provider's answer. Raw keeps the full response body.
type ProviderOrder struct {
	ID          string          `json:"id"`
	AmountMinor int64           `json:"amount"`
	Currency    string          `json:"currency"`
	Receipt     string          `json:"receipt,omitempty"`
	Status      string          `json:"status,omitempty"`
	Raw         json.RawMessage `json:"-"`
}
