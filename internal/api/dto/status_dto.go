package dto

// StatusCheckCreateRequest payload for a new status check.
type StatusCheckCreateRequest struct {
	ClientName string `json:"client_name"`
}
