package errors

import "net/http"

var ErrUnauthorized = &Exception{
	Message:    "missing or invalid credentials",
	StatusCode: http.StatusUnauthorized,
}
