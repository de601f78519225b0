package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeUserRegistered  = "auth.user_registered"
	EventTypeSessionsRevoked = "auth.sessions_revoked"
	EventTypeTagSwitched     = "tenant.tag_switched"
	EventTypeBackupCreated   = "tenant.backup_created"
)

func newBase(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

func NewUserRegistered(userID, email string) Event {
	return newBase(EventTypeUserRegistered, map[string]interface{}{
		"user_id": userID,
		"email":   email,
	})
}

func NewSessionsRevoked(userID string, count int) Event {
	return newBase(EventTypeSessionsRevoked, map[string]interface{}{
		"user_id": userID,
		"count":   count,
	})
}

func NewTagSwitched(from, to string) Event {
	return newBase(EventTypeTagSwitched, map[string]interface{}{
		"from": from,
		"to":   to,
	})
}

func NewBackupCreated(file, tag string) Event {
	return newBase(EventTypeBackupCreated, map[string]interface{}{
		"file": file,
		"tag":  tag,
	})
}
