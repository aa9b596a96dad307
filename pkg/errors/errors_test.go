package errors_test

import (
	"net/http"
	"testing"

	pkgErrors "email-task-assistant/pkg/errors"
)

func TestNewHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		code       int
		wantStatus int
	}{
		{"Known status", http.StatusConflict, http.StatusConflict},
		{"Business code", 110001, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pkgErrors.NewHTTPError(tt.code, "boom")
			if err.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", err.StatusCode, tt.wantStatus)
			}
			if err.Error() != "boom" {
				t.Errorf("Error() = %q", err.Error())
			}
		})
	}
}
