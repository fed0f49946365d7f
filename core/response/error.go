package response

import (
	"net/http"

	"github.com/dmitrymomot/patchbind/core/handler"
)

// Error returns a response that fails with err, leaving rendering to the
// error handler passed to handler.Adapt.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}
