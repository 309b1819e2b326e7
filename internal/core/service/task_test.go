package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	database "taskapp/internal/adapter/database/sqlite"
	"taskapp/internal/adapter/database/sqlite/repository"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/port"
	"taskapp/pkg/test"
	"taskapp/pkg/test/factory"
)

type TaskServiceTestSuite struct {
	suite.Suite
	db    *database.DB
	svc   *TaskService
	repo  port.TaskRepository
	owner *domain.User
	other *domain.User
}

func (s *TaskServiceTestSuite) SetupTest() {
	s.db = test.InitTestDB()
	s.repo = repository.NewTaskRepository(s.db)
	s.svc = NewTaskService(s.repo)

	users := repository.NewUserRepository(s.db)

	owner, err := users.Create(context.Background(), factory.NewUser[domain.User](map[string]any{
		"ID":        int64(0),
		"Email":     "owner@example.com",
		"CreatedAt": time.Now(),
	}))
	s.Require().NoError(err)

	other, err := users.Create(context.Background(), factory.NewUser[domain.User](map[string]any{
		"ID":        int64(0),
		"Email":     "other@example.com",
		"CreatedAt": time.Now(),
	}))
	s.Require().NoError(err)

	s.owner = &owner
	s.other = &other
}

func (s *TaskServiceTestSuite) TearDownTest() {
	if s.db != nil {
		s.db.Close()
	}
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}

func (s *TaskServiceTestSuite) TestCreate_OwnedAndOpen() {
	task, err := s.svc.Create(context.Background(), s.owner, &request.CreateTaskRequest{
		Title:       "Buy milk",
		Description: "2 liters",
	})

	assert.NoError(s.T(), err)
	assert.NotZero(s.T(), task.ID)
	assert.Equal(s.T(), s.owner.ID, task.UserID)
	assert.False(s.T(), task.Completed)
	assert.False(s.T(), task.CreatedAt.IsZero())
}

func (s *TaskServiceTestSuite) TestListOpen_CapsAtLimit() {
	for i := 1; i <= OpenTaskLimit+2; i++ {
		_, err := s.repo.Create(context.Background(), domain.Task{
			Title:     fmt.Sprintf("T%d", i),
			UserID:    s.owner.ID,
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		})
		s.Require().NoError(err)
	}

	tasks, err := s.svc.ListOpen(context.Background(), s.owner)

	assert.NoError(s.T(), err)
	assert.Len(s.T(), tasks, OpenTaskLimit)
	assert.Equal(s.T(), "T7", tasks[0].Title)
	assert.Equal(s.T(), "T3", tasks[OpenTaskLimit-1].Title)
}

func (s *TaskServiceTestSuite) TestComplete_Success() {
	task, err := s.svc.Create(context.Background(), s.owner, &request.CreateTaskRequest{Title: "T1"})
	s.Require().NoError(err)

	err = s.svc.Complete(context.Background(), s.owner, task.ID)
	assert.NoError(s.T(), err)

	found, err := s.repo.GetByID(context.Background(), task.ID)

	assert.NoError(s.T(), err)
	assert.True(s.T(), found.Completed)
}

func (s *TaskServiceTestSuite) TestComplete_Idempotent() {
	task, err := s.svc.Create(context.Background(), s.owner, &request.CreateTaskRequest{Title: "T1"})
	s.Require().NoError(err)

	assert.NoError(s.T(), s.svc.Complete(context.Background(), s.owner, task.ID))
	assert.NoError(s.T(), s.svc.Complete(context.Background(), s.owner, task.ID))
}

func (s *TaskServiceTestSuite) TestComplete_NotOwned() {
	task, err := s.svc.Create(context.Background(), s.other, &request.CreateTaskRequest{Title: "theirs"})
	s.Require().NoError(err)

	err = s.svc.Complete(context.Background(), s.owner, task.ID)

	assert.ErrorIs(s.T(), err, domain.ErrTaskNotFound)

	// Still open for its real owner.
	found, err := s.repo.GetByID(context.Background(), task.ID)

	assert.NoError(s.T(), err)
	assert.False(s.T(), found.Completed)
}

func (s *TaskServiceTestSuite) TestComplete_Unknown() {
	err := s.svc.Complete(context.Background(), s.owner, 99999)

	assert.ErrorIs(s.T(), err, domain.ErrTaskNotFound)
}
