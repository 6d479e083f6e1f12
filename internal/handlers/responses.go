package handlers

// ErrorResponse is the body of JSON error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
