package http

const (
	KeyHeaderContentType = "Content-Type"
	KeyHeaderRequestID   = "X-Request-Id"
	KeyHeaderCartID      = "X-Cart-Id"

	ValueHeaderJson = "application/json"
)
