package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	database "taskapp/internal/adapter/database/sqlite"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
	"taskapp/pkg/test"
	"taskapp/pkg/test/factory"
)

type TaskRepositoryTestSuite struct {
	suite.Suite
	db    *database.DB
	repo  port.TaskRepository
	owner domain.User
}

func (s *TaskRepositoryTestSuite) SetupTest() {
	s.db = test.InitTestDB()
	s.repo = NewTaskRepository(s.db)

	users := NewUserRepository(s.db)

	owner, err := users.Create(context.Background(), factory.NewUser[domain.User](map[string]any{
		"ID":        int64(0),
		"Email":     "owner@example.com",
		"CreatedAt": time.Now(),
	}))

	s.Require().NoError(err)
	s.owner = owner
}

func (s *TaskRepositoryTestSuite) TearDownTest() {
	if s.db != nil {
		s.db.Close()
	}
}

func TestTaskRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryTestSuite))
}

func (s *TaskRepositoryTestSuite) createTask(title string, createdAt time.Time, completed bool) domain.Task {
	saved, err := s.repo.Create(context.Background(), domain.Task{
		Title:       title,
		Description: "about " + title,
		Completed:   completed,
		UserID:      s.owner.ID,
		CreatedAt:   createdAt,
	})

	s.Require().NoError(err)

	return saved
}

func (s *TaskRepositoryTestSuite) TestCreate_Roundtrip() {
	task := factory.NewTask[domain.Task](map[string]any{
		"ID":        int64(0),
		"Title":     "Buy milk",
		"UserID":    s.owner.ID,
		"CreatedAt": time.Now(),
	})

	saved, err := s.repo.Create(context.Background(), task)

	assert.NoError(s.T(), err)
	assert.NotZero(s.T(), saved.ID)

	found, err := s.repo.GetByID(context.Background(), saved.ID)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Buy milk", found.Title)
	assert.Equal(s.T(), s.owner.ID, found.UserID)
	assert.False(s.T(), found.Completed)
}

func (s *TaskRepositoryTestSuite) TestGetByID_Unknown() {
	_, err := s.repo.GetByID(context.Background(), 99999)

	assert.ErrorIs(s.T(), err, domain.ErrTaskNotFound)
}

func (s *TaskRepositoryTestSuite) TestUpdate_MarksCompleted() {
	task := s.createTask("T1", time.Now(), false)

	task.Completed = true

	updated, err := s.repo.Update(context.Background(), task)

	assert.NoError(s.T(), err)
	assert.True(s.T(), updated.Completed)

	found, err := s.repo.GetByID(context.Background(), task.ID)

	assert.NoError(s.T(), err)
	assert.True(s.T(), found.Completed)
}

func (s *TaskRepositoryTestSuite) TestUpdate_Unknown() {
	task := domain.Task{ID: 99999, Title: "ghost", UserID: s.owner.ID, CreatedAt: time.Now()}

	_, err := s.repo.Update(context.Background(), task)

	assert.ErrorIs(s.T(), err, domain.ErrTaskNotFound)
}

func (s *TaskRepositoryTestSuite) TestListTopOpen_Empty() {
	tasks, err := s.repo.ListTopOpen(context.Background(), s.owner.ID, 5)

	assert.NoError(s.T(), err)
	assert.Empty(s.T(), tasks)
}

func (s *TaskRepositoryTestSuite) TestListTopOpen_SkipsCompleted() {
	base := time.Now()

	s.createTask("open", base, false)
	s.createTask("done", base.Add(time.Second), true)

	tasks, err := s.repo.ListTopOpen(context.Background(), s.owner.ID, 5)

	assert.NoError(s.T(), err)
	assert.Len(s.T(), tasks, 1)
	assert.Equal(s.T(), "open", tasks[0].Title)
}

func (s *TaskRepositoryTestSuite) TestListTopOpen_NewestFirstCapped() {
	base := time.Now()

	for i := 1; i <= 7; i++ {
		s.createTask(fmt.Sprintf("T%d", i), base.Add(time.Duration(i)*time.Second), false)
	}

	tasks, err := s.repo.ListTopOpen(context.Background(), s.owner.ID, 5)

	assert.NoError(s.T(), err)
	assert.Len(s.T(), tasks, 5)

	for i, title := range []string{"T7", "T6", "T5", "T4", "T3"} {
		assert.Equal(s.T(), title, tasks[i].Title)
	}
}

func (s *TaskRepositoryTestSuite) TestListTopOpen_TiesBreakOnHigherID() {
	at := time.Now()

	first := s.createTask("first", at, false)
	second := s.createTask("second", at, false)

	tasks, err := s.repo.ListTopOpen(context.Background(), s.owner.ID, 5)

	assert.NoError(s.T(), err)
	assert.Len(s.T(), tasks, 2)
	assert.Equal(s.T(), second.ID, tasks[0].ID)
	assert.Equal(s.T(), first.ID, tasks[1].ID)
}

func (s *TaskRepositoryTestSuite) TestListTopOpen_ScopedToOwner() {
	users := NewUserRepository(s.db)

	other, err := users.Create(context.Background(), factory.NewUser[domain.User](map[string]any{
		"ID":        int64(0),
		"Email":     "other@example.com",
		"CreatedAt": time.Now(),
	}))
	s.Require().NoError(err)

	s.createTask("mine", time.Now(), false)

	_, err = s.repo.Create(context.Background(), domain.Task{
		Title:     "theirs",
		UserID:    other.ID,
		CreatedAt: time.Now(),
	})
	s.Require().NoError(err)

	tasks, err := s.repo.ListTopOpen(context.Background(), s.owner.ID, 5)

	assert.NoError(s.T(), err)
	assert.Len(s.T(), tasks, 1)
	assert.Equal(s.T(), "mine", tasks[0].Title)
}
