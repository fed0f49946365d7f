package response

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/patchbind/core/handler"
)

// JSON writes v as application/json with 200 OK.
func JSON(v any) handler.Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus writes v as application/json with status.
// A zero status means 200, or 204 when v is nil. 204 and 304 carry no body.
func JSONWithStatus(v any, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		code := status
		if code == 0 {
			code = http.StatusOK
			if v == nil {
				code = http.StatusNoContent
			}
		}
		w.WriteHeader(code)

		if code == http.StatusNoContent || code == http.StatusNotModified {
			return nil
		}
		return json.NewEncoder(w).Encode(v)
	}
}
