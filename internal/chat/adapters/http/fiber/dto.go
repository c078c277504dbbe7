package fiber

// ChatRequest is the inbound chat message.
type ChatRequest struct {
	Message string `json:"message" example:"How are my conversions trending?"`
}

// ChatResponse is the assistant answer with its attribution label.
type ChatResponse struct {
	Reply  string `json:"reply" example:"Here is a sample answer."`
	Source string `json:"source" example:"AI • Model v1"`
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_message"`
	Message string `json:"message,omitempty" example:"message is required"`
}
