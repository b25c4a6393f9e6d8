package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ds3-project/ds3-backend/internal/constants"
	"github.com/ds3-project/ds3-backend/internal/database"
	"github.com/ds3-project/ds3-backend/internal/logger"
	"github.com/ds3-project/ds3-backend/internal/models"
	"github.com/ds3-project/ds3-backend/internal/repository"
	"github.com/ds3-project/ds3-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InternshipHandlerTestSuite defines the test suite for InternshipHandler
type InternshipHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *InternshipHandler
}

// SetupTest runs before each test
func (suite *InternshipHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.Internship{},
		&models.Hackathon{},
		&models.ChatRoom{},
		&models.ChatParticipant{},
		&models.Message{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	internshipRepo := repository.NewInternshipRepository(database.GetDB())
	suite.handler = NewInternshipHandler(services.NewInternshipService(internshipRepo), logger.NewNop())

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *InternshipHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *InternshipHandlerTestSuite) createTestUser(username string) *models.User {
	user := &models.User{
		Username:    username,
		DisplayName: "Test " + username,
	}
	suite.db.Create(user)
	return user
}

func (suite *InternshipHandlerTestSuite) createContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, userID)

	return c, w
}

// TestCreateInternship_Success tests successful internship creation
func (suite *InternshipHandlerTestSuite) TestCreateInternship_Success() {
	user := suite.createTestUser("alice")

	body, _ := json.Marshal(map[string]interface{}{
		"role":     "Backend Engineer",
		"company":  "Acme Corp",
		"duration": "Summer 2026",
		"note":     "worked on billing",
	})

	c, w := suite.createContext("POST", "/api/internships", body, user.ID)

	suite.handler.CreateInternship(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	response := decodeEnvelope(suite.T(), w)
	assert.Equal(suite.T(), "Internship created successfully", response["message"])

	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), "Backend Engineer", data["role"])
	assert.Equal(suite.T(), "Acme Corp", data["company"])
	assert.Equal(suite.T(), "alice", data["username"])
}

// TestCreateInternship_MissingRole tests creation without a role
func (suite *InternshipHandlerTestSuite) TestCreateInternship_MissingRole() {
	user := suite.createTestUser("alice")

	body, _ := json.Marshal(map[string]interface{}{
		"company": "Acme Corp",
	})

	c, w := suite.createContext("POST", "/api/internships", body, user.ID)

	suite.handler.CreateInternship(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	response := decodeEnvelope(suite.T(), w)
	assert.Equal(suite.T(), "Role and company are required", response["error"])
}

// TestCreateInternship_MissingCompany tests creation without a company
func (suite *InternshipHandlerTestSuite) TestCreateInternship_MissingCompany() {
	user := suite.createTestUser("alice")

	body, _ := json.Marshal(map[string]interface{}{
		"role": "Backend Engineer",
	})

	c, w := suite.createContext("POST", "/api/internships", body, user.ID)

	suite.handler.CreateInternship(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetInternship_NotFound tests retrieval of a missing internship
func (suite *InternshipHandlerTestSuite) TestGetInternship_NotFound() {
	c, w := suite.createContext("GET", "/api/internships/42", nil, 1)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	suite.handler.GetInternship(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	response := decodeEnvelope(suite.T(), w)
	assert.Equal(suite.T(), "Internship not found", response["error"])
}

// TestUpdateInternship_Success tests the full replacement semantics of PUT
func (suite *InternshipHandlerTestSuite) TestUpdateInternship_Success() {
	user := suite.createTestUser("alice")
	internship := &models.Internship{
		UserID:   user.ID,
		Role:     "Intern",
		Company:  "Acme Corp",
		Duration: "Summer 2025",
	}
	suite.db.Create(internship)

	body, _ := json.Marshal(map[string]interface{}{
		"role":    "Senior Intern",
		"company": "Acme Corp",
	})

	c, w := suite.createContext("PUT", "/api/internships/1", body, user.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.UpdateInternship(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var stored models.Internship
	suite.db.First(&stored, internship.ID)
	assert.Equal(suite.T(), "Senior Intern", stored.Role)
	// Omitted fields are replaced, not preserved
	assert.Equal(suite.T(), "", stored.Duration)
}

// TestDeleteInternship_Success tests deletion followed by retrieval
func (suite *InternshipHandlerTestSuite) TestDeleteInternship_Success() {
	user := suite.createTestUser("alice")
	suite.db.Create(&models.Internship{UserID: user.ID, Role: "Intern", Company: "Acme Corp"})

	c, w := suite.createContext("DELETE", "/api/internships/1", nil, user.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.DeleteInternship(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := decodeEnvelope(suite.T(), w)
	assert.Equal(suite.T(), "Internship deleted successfully", response["message"])

	c2, w2 := suite.createContext("GET", "/api/internships/1", nil, user.ID)
	c2.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.GetInternship(c2)

	assert.Equal(suite.T(), http.StatusNotFound, w2.Code)
}

// TestInternshipHandlerTestSuite runs the test suite
func TestInternshipHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InternshipHandlerTestSuite))
}
