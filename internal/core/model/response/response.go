package response

import (
	"time"

	"taskapp/internal/core/domain"
)

// TimeLayout matches the wire shape clients already parse: a local date-time
// without zone, sub-second digits included when present.
const TimeLayout = "2006-01-02T15:04:05.999999999"

type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
}

func NewTaskResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt.Format(TimeLayout),
	}
}

func NewTaskListResponse(tasks []domain.Task) []TaskResponse {
	data := make([]TaskResponse, 0, len(tasks))

	for _, task := range tasks {
		data = append(data, NewTaskResponse(task))
	}

	return data
}

type TokenResponse struct {
	Token string `json:"token"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ResponseError struct {
	Code   string            `json:"code"`
	Errors []ValidationError `json:"errors"`
}

type ErrorResponse struct {
	Error ResponseError `json:"error"`
}

func ParseCreatedAt(value string) (time.Time, error) {
	return time.ParseInLocation(TimeLayout, value, time.Local)
}
