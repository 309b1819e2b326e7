package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	database "taskapp/internal/adapter/database/postgres"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
)

type TaskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) port.TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	query := r.db.QueryBuilder.Insert("tasks").
		Columns("title", "description", "completed", "user_id", "created_at").
		Values(task.Title, task.Description, task.Completed, task.UserID, task.CreatedAt).
		Suffix("RETURNING id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Task{}, err
	}

	err = r.db.QueryRow(ctx, stmt, args...).Scan(&task.ID)

	if err != nil {
		log.Error().Err(err).Int64("user_id", task.UserID).Msg("error creating task")
		return domain.Task{}, err
	}

	return r.GetByID(ctx, task.ID)
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (domain.Task, error) {
	query := r.db.QueryBuilder.Select("id", "title", "description", "completed", "user_id", "created_at").
		From("tasks").
		Where(sq.Eq{"id": id}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Task{}, err
	}

	var task domain.Task

	err = r.db.QueryRow(ctx, stmt, args...).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.UserID,
		&task.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}

		return domain.Task{}, err
	}

	return task, nil
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	query := r.db.QueryBuilder.Update("tasks").
		SetMap(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"completed":   task.Completed,
		}).
		Where(sq.Eq{"id": task.ID})

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Task{}, err
	}

	tag, err := r.db.Exec(ctx, stmt, args...)

	if err != nil {
		log.Error().Err(err).Int64("task_id", task.ID).Msg("error updating task")
		return domain.Task{}, err
	}

	if tag.RowsAffected() == 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	return r.GetByID(ctx, task.ID)
}

func (r *TaskRepository) ListTopOpen(ctx context.Context, userID int64, limit int) ([]domain.Task, error) {
	query := r.db.QueryBuilder.Select("id", "title", "description", "completed", "user_id", "created_at").
		From("tasks").
		Where(sq.Eq{"user_id": userID, "completed": false}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, stmt, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	tasks := []domain.Task{}

	for rows.Next() {
		var task domain.Task

		err = rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Completed,
			&task.UserID,
			&task.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}
