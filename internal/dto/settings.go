package dto

type SetSettingRequestDTO struct {
	Key   string  `json:"key" example:"theft_cooldown_sec"`
	Value float64 `json:"value" example:"1800"`
}
