package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ListParams carries the optional ?limit= of list endpoints.
type ListParams struct {
	Limit int `form:"limit" binding:"omitempty,gte=0"`
}

// DeleteResponse reports how many records a delete removed.
type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// HealthResponse is returned by the liveness probe.
type HealthResponse struct {
	Status string `json:"status"`
}
