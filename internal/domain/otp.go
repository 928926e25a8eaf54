package domain

import "time"

// OTPRecord is the live one-time-passcode state for one email address.
// At most one record exists per email — issuing a new code overwrites any
// prior record and invalidates the old code.
type OTPRecord struct {
	Code         string    `json:"code" redis:"code"`
	AttemptsLeft int       `json:"attempts_left" redis:"attempts_left"`
	ExpiresAt    time.Time `json:"expires_at" redis:"expires_at"`
	IssuedAt     time.Time `json:"issued_at" redis:"issued_at"`
}
