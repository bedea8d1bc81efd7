package types

// ErrorDetail 上游错误详情
type ErrorDetail struct {
	Message string `json:"message"`
	Code    any    `json:"code,omitempty"`
}

// ErrorResponse 上游返回的错误响应
type ErrorResponse struct {
	Error *ErrorDetail `json:"error"`
}
