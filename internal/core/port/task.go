package port

import (
	"context"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/request"
)

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	GetByID(ctx context.Context, id int64) (domain.Task, error)
	Update(ctx context.Context, task domain.Task) (domain.Task, error)
	ListTopOpen(ctx context.Context, userID int64, limit int) ([]domain.Task, error)
}

type TaskService interface {
	Create(ctx context.Context, owner *domain.User, req *request.CreateTaskRequest) (domain.Task, error)
	ListOpen(ctx context.Context, owner *domain.User) ([]domain.Task, error)
	Complete(ctx context.Context, owner *domain.User, taskID int64) error
}
