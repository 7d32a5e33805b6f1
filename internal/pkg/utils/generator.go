package utils

import (
	"carelink-service/internal/pkg/constvars"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateEventID() string {
	return uuid.NewString()
}

func BuildSessionKey(sessionID string) string {
	return constvars.SessionKeyPrefix + sessionID
}
