package models

import "encoding/json"

// OrderRequest is what the cart submits to the order endpoint.
type OrderRequest struct {
	Items    []MenuItem `json:"items"`
	UserID   string     `json:"userId"`
	UserName string     `json:"userName"`
}

// OrderResponse is the fabricated confirmation. Items, UserID and UserName
// are carried as raw JSON so the endpoint echoes exactly what it received.
type OrderResponse struct {
	Status    string          `json:"status"`
	OrderID   string          `json:"orderId"`
	Items     json.RawMessage `json:"items,omitempty"`
	UserID    json.RawMessage `json:"userId,omitempty"`
	UserName  json.RawMessage `json:"userName,omitempty"`
	Timestamp string          `json:"timestamp"`
}

// OrderConfirmation is the client-side view of a decoded OrderResponse.
type OrderConfirmation struct {
	Status    string     `json:"status"`
	OrderID   string     `json:"orderId"`
	Items     []MenuItem `json:"items"`
	UserID    string     `json:"userId"`
	UserName  string     `json:"userName"`
	Timestamp string     `json:"timestamp"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
