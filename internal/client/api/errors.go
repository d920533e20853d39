package api

import (
	"fmt"
	"net/http"

	"github.com/dreamcatcher/dreamcatcher-go/internal/common"
)

// genericDetail is the message substituted when an error body is not valid
// JSON.
const genericDetail = "An error occurred"

// Error is a server-reported failure: a non-2xx status with, when the body
// allowed it, the backend's "detail" message.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// Is lets callers match authorization failures with
// errors.Is(err, common.ErrUnauthorized).
func (e *Error) Is(target error) bool {
	switch target {
	case common.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	case common.ErrUnavailable:
		return e.Status == http.StatusServiceUnavailable || e.Status == http.StatusBadGateway
	}
	return false
}
