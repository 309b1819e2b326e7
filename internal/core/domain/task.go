package domain

import "time"

type Task struct {
	ID          int64
	Title       string `validate:"max=255"`
	Description string `validate:"max=1000"`
	Completed   bool
	UserID      int64
	CreatedAt   time.Time
}

func (t *Task) BelongsToUser(userID int64) bool {
	return t.UserID == userID
}
