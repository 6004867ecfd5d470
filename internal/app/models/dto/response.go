package dto

import "time"

// APIResponse is the envelope every successful endpoint replies with.
// Error is only set when HandleAPIError writes the body.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// PaginationInfo represents pagination metadata
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}

// PaginatedResponse represents a paginated list with metadata
type PaginatedResponse struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status     string `json:"status" example:"ok"`
	Courses    int    `json:"courses" example:"2"`
	Sections   int    `json:"sections" example:"3"`
	Students   int    `json:"students" example:"0"`
	Professors int    `json:"professors" example:"1"`
}
