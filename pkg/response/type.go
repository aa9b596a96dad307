package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// DateTime is an instant rendered as RFC 3339 in UTC.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}

// NullableDateTime maps an optional instant to an optional DateTime, so nil
// renders as JSON null.
func NullableDateTime(t *time.Time) *DateTime {
	if t == nil {
		return nil
	}
	v := DateTime(*t)
	return &v
}
