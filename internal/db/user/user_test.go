package user

import (
	"context"
	c "passreset/internal/core/domain/common"
	"passreset/internal/core/domain/user"
	"passreset/internal/db"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = "test@example.com"
	PASSWORD_HASH = "test-password-hash"
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool(suite.T())
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createUser(email string) user.User {
	u, err := suite.repo.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(email),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		CreatedAt:    NOW,
	})
	suite.Require().NoError(err)
	return u
}

func (suite *testSuite) TestCreateSuccess() {
	u := suite.createUser(EMAIL)

	assert := suite.Require()
	assert.NotZero(u.ID)
	assert.Equal(c.Email(EMAIL), u.Email)
	assert.Equal(user.PasswordHash(PASSWORD_HASH), u.PasswordHash)
	assert.True(NOW.Equal(u.CreatedAt))
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	suite.createUser(EMAIL)

	_, err := suite.repo.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(EMAIL),
		PasswordHash: user.PasswordHash("another-hash"),
		CreatedAt:    NOW,
	})

	suite.Require().ErrorIs(err, user.ErrEmailAlreadyExists)
}

func (suite *testSuite) TestGetByEmailSuccess() {
	created := suite.createUser(EMAIL)

	u, err := suite.repo.GetByEmail(context.Background(), c.Email(EMAIL))

	assert := suite.Require()
	assert.NoError(err)
	assert.Equal(created.ID, u.ID)
	assert.Equal(created.Email, u.Email)
	assert.Equal(created.PasswordHash, u.PasswordHash)
}

func (suite *testSuite) TestGetByEmailNotFound() {
	suite.createUser(EMAIL)

	_, err := suite.repo.GetByEmail(context.Background(), c.Email("unknown@example.com"))

	suite.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *testSuite) TestSetPasswordSuccess() {
	created := suite.createUser(EMAIL)

	err := suite.repo.SetPassword(context.Background(), created.ID, user.PasswordHash("new-hash"))

	assert := suite.Require()
	assert.NoError(err)
	u, err := suite.repo.GetByEmail(context.Background(), c.Email(EMAIL))
	assert.NoError(err)
	assert.Equal(user.PasswordHash("new-hash"), u.PasswordHash)
}

func (suite *testSuite) TestSetPasswordUserDoesNotExist() {
	err := suite.repo.SetPassword(context.Background(), user.ID(111222333), user.PasswordHash("new-hash"))

	suite.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}
