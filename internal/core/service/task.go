package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/port"
)

// OpenTaskLimit caps the task listing at the most recent open entries.
const OpenTaskLimit = 5

type TaskService struct {
	repo port.TaskRepository
}

func NewTaskService(repo port.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, owner *domain.User, req *request.CreateTaskRequest) (domain.Task, error) {
	task := domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Completed:   false,
		UserID:      owner.ID,
		CreatedAt:   time.Now(),
	}

	saved, err := s.repo.Create(ctx, task)

	if err != nil {
		log.Error().Err(err).Int64("user_id", owner.ID).Msg("task create failed")
		return domain.Task{}, err
	}

	return saved, nil
}

func (s *TaskService) ListOpen(ctx context.Context, owner *domain.User) ([]domain.Task, error) {
	return s.repo.ListTopOpen(ctx, owner.ID, OpenTaskLimit)
}

// Complete marks an owned task done. A task owned by someone else reports
// the same ErrTaskNotFound as a missing one, so callers cannot probe for
// other users' task ids.
func (s *TaskService) Complete(ctx context.Context, owner *domain.User, taskID int64) error {
	task, err := s.repo.GetByID(ctx, taskID)

	if err != nil {
		return err
	}

	if !task.BelongsToUser(owner.ID) {
		return domain.ErrTaskNotFound
	}

	if task.Completed {
		return nil
	}

	task.Completed = true

	_, err = s.repo.Update(ctx, task)

	return err
}
