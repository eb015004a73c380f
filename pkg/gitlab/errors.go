package gitlab

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is matched by errors.Is for any 404 answer.
var ErrNotFound = errors.New("gitlab: not found")

// APIError is returned for every non-2xx answer.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gitlab API %s error %d: %s", e.Op, e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}
