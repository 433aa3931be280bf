package serverutils

// Response is the uniform JSON envelope for the merchant-console API.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(message string, data interface{}) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code, message string, data interface{}) Response {
	return Response{
		Success: false,
		Error:   code,
		Message: message,
		Data:    data,
	}
}
