package metadomain

// ErrorResponse is the Meta API error envelope
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails carries the error fields the Graph API returns
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsPermission reports whether the error is a missing-scope/permission error
func (e *ErrorResponse) IsPermission() bool {
	// Code 10 and 200-299 are permission errors in Graph API responses
	return e.Error.Code == 10 || (e.Error.Code >= 200 && e.Error.Code < 300)
}
