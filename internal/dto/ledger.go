package dto

type EnsureAccountRequestDTO struct {
	AccountID int64  `json:"account_id" example:"42"`
	Username  string `json:"username" example:"vinny"`
}

type BalanceResponseDTO struct {
	AccountID  int64   `json:"account_id" example:"42"`
	Username   string  `json:"username" example:"vinny"`
	Cash       float64 `json:"cash" example:"512.75"`
	Debt       float64 `json:"debt" example:"0"`
	Crypto     float64 `json:"crypto" example:"3.1415"`
	Reputation int     `json:"reputation" example:"7"`
	Exp        int64   `json:"exp" example:"350"`
	Level      int     `json:"level" example:"3"`
}

type AmountRequestDTO struct {
	Amount float64 `json:"amount" example:"100.5"`
}

type CashResponseDTO struct {
	Cash float64 `json:"cash" example:"412.25"`
	Debt float64 `json:"debt" example:"0"`
}

type CryptoResponseDTO struct {
	Crypto float64 `json:"crypto" example:"2.6415"`
}

type ReputationRequestDTO struct {
	Delta int `json:"delta" example:"1"`
}

type ReputationResponseDTO struct {
	Reputation int `json:"reputation" example:"8"`
}

type SkillRequestDTO struct {
	Skill string `json:"skill" example:"luck"`
	Delta int    `json:"delta" example:"1"`
}

type SkillResponseDTO struct {
	Skill string `json:"skill" example:"luck"`
	Value int    `json:"value" example:"4"`
}

type ExperienceRequestDTO struct {
	Amount int64 `json:"amount" example:"25"`
}
