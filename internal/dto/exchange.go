package dto

import "time"

type SubmitOrderRequestDTO struct {
	AccountID int64   `json:"account_id" example:"42"`
	Side      string  `json:"side" example:"buy"`
	Amount    float64 `json:"amount" example:"1.5"`
	Price     int     `json:"price" example:"100"`
}

type OrderResponseDTO struct {
	ID        int       `json:"id" example:"17"`
	AccountID int64     `json:"account_id" example:"42"`
	Side      string    `json:"side" example:"buy"`
	Price     int       `json:"price" example:"100"`
	Amount    float64   `json:"amount" example:"1.5"`
	Locked    float64   `json:"locked" example:"150"`
	Status    string    `json:"status" example:"active"`
	CreatedAt time.Time `json:"created_at" example:"2025-02-09T16:09:57+03:00"`
}

type TakeRequestDTO struct {
	AccountID int64   `json:"account_id" example:"42"`
	Side      string  `json:"side" example:"buy"`
	Price     int     `json:"price" example:"100"`
	Amount    float64 `json:"amount" example:"2"`
}

type TakeResponseDTO struct {
	Filled float64 `json:"filled" example:"2"`
}

type PriceLevelDTO struct {
	Price  int     `json:"price" example:"100"`
	Amount float64 `json:"amount" example:"3.5"`
	Orders int     `json:"orders" example:"2"`
}

type OrderBookResponseDTO struct {
	Bids []PriceLevelDTO `json:"bids"`
	Asks []PriceLevelDTO `json:"asks"`
}
