package dto

type TheftRequestDTO struct {
	AttackerID  int64   `json:"attacker_id" example:"42"`
	VictimID    int64   `json:"victim_id" example:"43"`
	UpfrontCost float64 `json:"upfront_cost" example:"10"`
}

type TheftResponseDTO struct {
	Result  string  `json:"result" example:"stolen"`
	Amount  float64 `json:"amount" example:"85"`
	Penalty float64 `json:"penalty" example:"0"`
}

type CooldownResponseDTO struct {
	RemainingSeconds int64 `json:"remaining_seconds" example:"1800"`
}
