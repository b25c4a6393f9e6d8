package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ds3-project/ds3-backend/internal/models"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// UserRepositoryMySQLTestSuite exercises the repository against a mocked
// MySQL connection, covering driver behavior the in-memory database cannot
// reproduce.
type UserRepositoryMySQLTestSuite struct {
	suite.Suite
	mock sqlmock.Sqlmock
	repo UserRepository
}

// SetupTest runs before each test
func (suite *UserRepositoryMySQLTestSuite) SetupTest() {
	sqlDB, mock, err := sqlmock.New()
	suite.Require().NoError(err)
	suite.mock = mock

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	suite.repo = NewUserRepository(db)
}

// TearDownTest runs after each test
func (suite *UserRepositoryMySQLTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

// TestCreate_DuplicateKeyTranslated verifies that a MySQL duplicate entry
// error surfaces as gorm.ErrDuplicatedKey
func (suite *UserRepositoryMySQLTestSuite) TestCreate_DuplicateKeyTranslated() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry 'alice' for key 'users.idx_users_username'"})
	suite.mock.ExpectRollback()

	err := suite.repo.Create(&models.User{Username: "alice"})

	assert.ErrorIs(suite.T(), err, gorm.ErrDuplicatedKey)
}

// TestFindByUsername_QueriesByColumn verifies the lookup query shape
func (suite *UserRepositoryMySQLTestSuite) TestFindByUsername_QueriesByColumn() {
	rows := sqlmock.NewRows([]string{"id", "username", "display_name"}).
		AddRow(1, "alice", "Alice")

	suite.mock.ExpectQuery("SELECT \\* FROM `users` WHERE username = \\?").
		WithArgs("alice").
		WillReturnRows(rows)

	user, err := suite.repo.FindByUsername("alice")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint64(1), user.ID)
	assert.Equal(suite.T(), "alice", user.Username)
}

// TestFindByUsername_NotFound verifies empty results map to ErrRecordNotFound
func (suite *UserRepositoryMySQLTestSuite) TestFindByUsername_NotFound() {
	suite.mock.ExpectQuery("SELECT \\* FROM `users` WHERE username = \\?").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

	_, err := suite.repo.FindByUsername("ghost")

	assert.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)
}

// TestUserRepositoryMySQLTestSuite runs the test suite
func TestUserRepositoryMySQLTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryMySQLTestSuite))
}
