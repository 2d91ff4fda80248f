package handler

import "time"

// --- Request / Response types ---
//
// Money fields travel as fixed two-decimal strings so the JSON contract
// never inherits binary-float rounding.

type beginOrderRequest struct {
	StoreID int64 `json:"store_id" validate:"required,gt=0"`
}

type beginOrderResponse struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

type addLineRequest struct {
	Item     string `json:"item"     validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

type addLineResponse struct {
	OrderID   int64  `json:"order_id"`
	Item      string `json:"item"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type commitOrderResponse struct {
	OrderID    int64  `json:"order_id"`
	TotalPrice string `json:"total_price"`
	Status     string `json:"status"`
}

type orderLineResponse struct {
	Item      string `json:"item"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

type orderDetailResponse struct {
	OrderID    int64               `json:"order_id"`
	Login      string              `json:"login"`
	StoreID    int64               `json:"store_id"`
	TotalPrice string              `json:"total_price"`
	Status     string              `json:"status"`
	Committed  bool                `json:"committed"`
	CreatedAt  time.Time           `json:"created_at"`
	Lines      []orderLineResponse `json:"lines"`
}

// orderSummaryResponse is the lightweight item used in list responses.
// It intentionally omits the lines to keep payloads small.
type orderSummaryResponse struct {
	OrderID    int64     `json:"order_id"`
	Login      string    `json:"login"`
	StoreID    int64     `json:"store_id"`
	TotalPrice string    `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type listOrdersResponse struct {
	Data []orderSummaryResponse `json:"data"`
}

type toggleStatusResponse struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}
