package domain

import (
	"fmt"
	"time"
)

type Notification struct {
	ID        string
	UserID    string
	Message   string
	Read      bool
	CreatedAt time.Time
}

func TaskStatusChangedMessage(title string, status Status) string {
	return fmt.Sprintf("Task \"%s\" status changed to %s", title, status)
}
