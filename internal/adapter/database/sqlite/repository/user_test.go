package repository

import (
	"context"
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

type UserRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo port.UserRepository
}

func (s *UserRepositoryTestSuite) SetupTest() {
	s.db = test.InitTestDB()
	s.repo = NewUserRepository(s.db)
}

func (s *UserRepositoryTestSuite) TearDownTest() {
	if s.db != nil {
		s.db.Close()
	}
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}

func (s *UserRepositoryTestSuite) TestCreate_AssignsID() {
	user := factory.NewUser[domain.User](map[string]any{
		"ID":        int64(0),
		"Email":     "alice@example.com",
		"CreatedAt": time.Now(),
	})

	saved, err := s.repo.Create(context.Background(), user)

	assert.NoError(s.T(), err)
	assert.NotZero(s.T(), saved.ID)
	assert.Equal(s.T(), "alice@example.com", saved.Email)
}

func (s *UserRepositoryTestSuite) TestCreate_DuplicateEmail() {
	user := factory.NewUser[domain.User](map[string]any{
		"ID":        int64(0),
		"Email":     "alice@example.com",
		"CreatedAt": time.Now(),
	})

	_, err := s.repo.Create(context.Background(), user)
	assert.NoError(s.T(), err)

	user.ID = 0
	_, err = s.repo.Create(context.Background(), user)

	assert.ErrorIs(s.T(), err, domain.ErrEmailExists)
}

func (s *UserRepositoryTestSuite) TestGetByEmail_Roundtrip() {
	user := factory.NewUser[domain.User](map[string]any{
		"ID":        int64(0),
		"Email":     "bob@example.com",
		"FullName":  "Bob Example",
		"CreatedAt": time.Now(),
	})

	saved, err := s.repo.Create(context.Background(), user)
	assert.NoError(s.T(), err)

	found, err := s.repo.GetByEmail(context.Background(), "bob@example.com")

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), saved.ID, found.ID)
	assert.Equal(s.T(), "Bob Example", found.FullName)
	assert.Equal(s.T(), saved.PasswordHash, found.PasswordHash)
}

func (s *UserRepositoryTestSuite) TestGetByEmail_Unknown() {
	_, err := s.repo.GetByEmail(context.Background(), "nobody@example.com")

	assert.ErrorIs(s.T(), err, domain.ErrUserNotFound)
}

func (s *UserRepositoryTestSuite) TestGetByID_Unknown() {
	_, err := s.repo.GetByID(context.Background(), 12345)

	assert.ErrorIs(s.T(), err, domain.ErrUserNotFound)
}
