package dtos

// Response is the envelope for every non-list endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *string     `json:"error,omitempty"`
}

func ErrorResponse(err error) Response {
	errorMsg := err.Error()
	return Response{
		Success: false,
		Error:   &errorMsg,
	}
}
