package models

import "time"

type Session struct {
	SessionID string    `json:"session_id"`
	DoctorID  string    `json:"doctor_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}
