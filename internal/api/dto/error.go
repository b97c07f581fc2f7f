package dto

// Error represents a standard error response body.
type Error struct {
	Success bool   `json:"success"`
	Error   string `json:"error" example:"error message"`
}

func NewError(message string) Error {
	return Error{Success: false, Error: message}
}
