package errors

import "net/http"

var ErrOrganizationNotFound = &Exception{
	Message:    "organization not found",
	StatusCode: http.StatusNotFound,
}

var ErrProjectNotFound = &Exception{
	Message:    "project not found",
	StatusCode: http.StatusNotFound,
}

var ErrTaskNotFound = &Exception{
	Message:    "task not found",
	StatusCode: http.StatusNotFound,
}

var ErrProfileNotFound = &Exception{
	Message:    "profile not found",
	StatusCode: http.StatusNotFound,
}
