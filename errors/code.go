package errors

import (
	"net/http"
)

func BadRequest() ErrorEnricher   { return WithCode(http.StatusBadRequest) }
func Unauthorized() ErrorEnricher { return WithCode(http.StatusUnauthorized) }
func Forbidden() ErrorEnricher    { return WithCode(http.StatusForbidden) }
func NotFound() ErrorEnricher     { return WithCode(http.StatusNotFound) }

// Conflict marks a duplicate registration. The historical API reported those
// as 400, not 409, and clients depend on it.
func Conflict() ErrorEnricher { return WithCode(http.StatusBadRequest) }
