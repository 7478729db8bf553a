// Package requestid assigns a unique id to every HTTP request.
package requestid

import (
	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// Header carries the request id on both request and response.
const Header = "X-Request-ID"

// Middleware tags each request with a time-ordered UUID. An id supplied by
// the caller is kept so ids can be traced across services.
func Middleware() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		id := rp.Request().Header.Get(Header)
		if id == "" {
			id = uuid.Must(uuid.NewV6()).String()
			rp.Request().Header.Set(Header, id)
		}
		rp.Writer().Header().Set(Header, id)
		rp.Next()
	}
}
