package dto

import "time"

type SpawnHeistRequestDTO struct {
	RoomID int64 `json:"room_id" example:"-100123"`
}

type HeistResponseDTO struct {
	ID            int       `json:"id" example:"5"`
	RoomID        int64     `json:"room_id" example:"-100123"`
	Pot           int       `json:"pot" example:"750"`
	Bonus         float64   `json:"bonus" example:"1.25"`
	Phase         string    `json:"phase" example:"joining"`
	JoinDeadline  time.Time `json:"join_deadline"`
	SplitDeadline time.Time `json:"split_deadline"`
}

type JoinHeistRequestDTO struct {
	AccountID int64 `json:"account_id" example:"42"`
}

type JoinHeistResponseDTO struct {
	Joined bool `json:"joined" example:"true"`
}

type BetrayRequestDTO struct {
	AttackerID int64 `json:"attacker_id" example:"42"`
	TargetID   int64 `json:"target_id" example:"43"`
}

type BetrayResponseDTO struct {
	Success bool    `json:"success" example:"true"`
	Amount  float64 `json:"amount" example:"112.5"`
}

type HeistParticipantDTO struct {
	AccountID    int64   `json:"account_id" example:"42"`
	BaseShare    float64 `json:"base_share" example:"375"`
	CurrentShare float64 `json:"current_share" example:"262.5"`
	BonusShare   float64 `json:"bonus_share" example:"0.625"`
	DefenseBonus int     `json:"defense_bonus" example:"10"`
}

type BetrayalDTO struct {
	AttackerID int64   `json:"attacker_id" example:"42"`
	TargetID   int64   `json:"target_id" example:"43"`
	Success    bool    `json:"success" example:"true"`
	Amount     float64 `json:"amount" example:"112.5"`
}

type HeistStatusResponseDTO struct {
	Heist        HeistResponseDTO      `json:"heist"`
	Participants []HeistParticipantDTO `json:"participants"`
	Betrayals    []BetrayalDTO         `json:"betrayals"`
}
