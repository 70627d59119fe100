package dto

// SettingsResponse preferencias del usuario.
type SettingsResponse struct {
	ValuationMethod string `json:"valuation_method"` // "FIFO" | "WAC"
}

// UpdateSettingsRequest body para PUT /api/settings.
type UpdateSettingsRequest struct {
	ValuationMethod string `json:"valuation_method"`
}
