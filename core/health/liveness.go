package health

import (
	"github.com/dmitrymomot/patchbind/core/handler"
	"github.com/dmitrymomot/patchbind/core/response"
)

// Status is the body written by the health handlers.
type Status struct {
	Status string `json:"status"`
}

// Liveness reports that the process is running. No dependency checks.
func Liveness[C handler.Context](C) handler.Response {
	return response.JSON(Status{Status: "alive"})
}
