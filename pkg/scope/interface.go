package scope

import "time"

// Manager issues and verifies the access tokens handed to the extension.
type Manager interface {
	Issue(userID, email string) (token string, expiresAt time.Time, err error)
	Verify(token string) (Payload, error)
}
