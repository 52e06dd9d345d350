// FILE: internal/dto/preference_dto.go
package dto

type UpdatePreferenceRequest struct {
	Value *bool `json:"value" validate:"required"`
}

type PreferencesResponse struct {
	Owner       string          `json:"owner"`
	Preferences map[string]bool `json:"preferences"`
}
