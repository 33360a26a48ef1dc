// utils/http.go
package utils

import (
	"net/http"
)

// HTTPClient is the shared client for collection-store calls. Store calls
// are single-attempt with no client-side deadline; a caller that needs a
// bound passes one through its request context.
var HTTPClient = &http.Client{}
