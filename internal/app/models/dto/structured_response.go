package dto

import "time"

// StructuredResponse carries an explicit success flag and a human readable
// message next to the payload. Enrollment replies use it so rejections reach
// the client verbatim.
type StructuredResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message" example:"Enrollment successful"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewStructuredResponse creates a standard structured API response
func NewStructuredResponse(data interface{}, message string) StructuredResponse {
	return StructuredResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewStructuredFailure creates a structured response for a rejected operation
func NewStructuredFailure(message string) StructuredResponse {
	return StructuredResponse{
		Success:   false,
		Message:   message,
		Timestamp: time.Now(),
	}
}
