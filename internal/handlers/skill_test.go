package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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

// SkillHandlerTestSuite defines the test suite for SkillHandler
type SkillHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *SkillHandler
}

// SetupTest runs before each test
func (suite *SkillHandlerTestSuite) SetupTest() {
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

	skillRepo := repository.NewSkillRepository(database.GetDB())
	suite.handler = NewSkillHandler(services.NewSkillService(skillRepo), logger.NewNop())

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *SkillHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *SkillHandlerTestSuite) createTestUser(username string) *models.User {
	user := &models.User{
		Username:    username,
		DisplayName: "Test " + username,
	}
	suite.db.Create(user)
	return user
}

func (suite *SkillHandlerTestSuite) createTestSkill(userID uint64, name string, progress int, createdAt time.Time) *models.Skill {
	skill := &models.Skill{
		UserID:    userID,
		Name:      name,
		Progress:  progress,
		CreatedAt: createdAt,
	}
	suite.db.Create(skill)
	return skill
}

func (suite *SkillHandlerTestSuite) createContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
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

// TestCreateSkill_Success tests successful skill creation
func (suite *SkillHandlerTestSuite) TestCreateSkill_Success() {
	user := suite.createTestUser("alice")

	body, _ := json.Marshal(map[string]interface{}{
		"name":     "Rust",
		"note":     "ownership is clicking",
		"progress": 40,
	})

	c, w := suite.createContext("POST", "/api/skills", body, user.ID)

	suite.handler.CreateSkill(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	response := decodeEnvelope(suite.T(), w)
	assert.Equal(suite.T(), true, response["success"])
	assert.Equal(suite.T(), "Skill created successfully", response["message"])

	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), "Rust", data["name"])
	assert.Equal(suite.T(), float64(40), data["progress"])
	assert.Equal(suite.T(), float64(user.ID), data["user_id"])
	assert.Equal(suite.T(), "alice", data["username"])
}

// TestCreateSkill_DefaultProgress tests that omitted progress defaults to zero
func (suite *SkillHandlerTestSuite) TestCreateSkill_DefaultProgress() {
	user := suite.createTestUser("alice")

	body, _ := json.Marshal(map[string]interface{}{
		"name": "Go",
	})

	c, w := suite.createContext("POST", "/api/skills", body, user.ID)

	suite.handler.CreateSkill(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	response := decodeEnvelope(suite.T(), w)
	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(0), data["progress"])
}

// TestCreateSkill_MissingName tests creation without a name
func (suite *SkillHandlerTestSuite) TestCreateSkill_MissingName() {
	user := suite.createTestUser("alice")

	body, _ := json.Marshal(map[string]interface{}{
		"progress": 50,
	})

	c, w := suite.createContext("POST", "/api/skills", body, user.ID)

	suite.handler.CreateSkill(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	response := decodeEnvelope(suite.T(), w)
	assert.Equal(suite.T(), "Skill name is required", response["error"])
}

// TestCreateSkill_ProgressOutOfRange tests the progress bounds
func (suite *SkillHandlerTestSuite) TestCreateSkill_ProgressOutOfRange() {
	user := suite.createTestUser("alice")

	for _, progress := range []int{-1, 101} {
		body, _ := json.Marshal(map[string]interface{}{
			"name":     "Go",
			"progress": progress,
		})

		c, w := suite.createContext("POST", "/api/skills", body, user.ID)

		suite.handler.CreateSkill(c)

		assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

		response := decodeEnvelope(suite.T(), w)
		assert.Equal(suite.T(), "Progress must be between 0 and 100", response["error"])
	}
}

// TestGetSkill_NotFound tests retrieval of a missing skill
func (suite *SkillHandlerTestSuite) TestGetSkill_NotFound() {
	c, w := suite.createContext("GET", "/api/skills/42", nil, 1)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	suite.handler.GetSkill(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	response := decodeEnvelope(suite.T(), w)
	assert.Equal(suite.T(), "Skill not found", response["error"])
}

// TestListSkills_FilteredByOwner tests the user_id query filter and ordering
func (suite *SkillHandlerTestSuite) TestListSkills_FilteredByOwner() {
	alice := suite.createTestUser("alice")
	bob := suite.createTestUser("bob")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.createTestSkill(alice.ID, "Go", 80, base)
	suite.createTestSkill(alice.ID, "Rust", 40, base.Add(time.Hour))
	suite.createTestSkill(bob.ID, "Python", 60, base.Add(2*time.Hour))

	c, w := suite.createContext("GET", "/api/skills", nil, bob.ID)
	c.Request.URL.RawQuery = "user_id=1"

	suite.handler.ListSkills(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := decodeEnvelope(suite.T(), w)
	skills := response["data"].([]interface{})
	suite.Require().Len(skills, 2)

	// Newest first, all owned by alice
	first := skills[0].(map[string]interface{})
	second := skills[1].(map[string]interface{})
	assert.Equal(suite.T(), "Rust", first["name"])
	assert.Equal(suite.T(), "Go", second["name"])
	assert.Equal(suite.T(), "alice", first["username"])
}

// TestListSkills_DefaultsToCaller tests listing without a filter
func (suite *SkillHandlerTestSuite) TestListSkills_DefaultsToCaller() {
	alice := suite.createTestUser("alice")
	bob := suite.createTestUser("bob")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.createTestSkill(alice.ID, "Go", 80, base)
	suite.createTestSkill(bob.ID, "Python", 60, base)

	c, w := suite.createContext("GET", "/api/skills", nil, bob.ID)

	suite.handler.ListSkills(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := decodeEnvelope(suite.T(), w)
	skills := response["data"].([]interface{})
	suite.Require().Len(skills, 1)
	assert.Equal(suite.T(), "Python", skills[0].(map[string]interface{})["name"])
}

// TestUpdateSkill_Success tests the full replacement semantics of PUT
func (suite *SkillHandlerTestSuite) TestUpdateSkill_Success() {
	user := suite.createTestUser("alice")
	skill := suite.createTestSkill(user.ID, "Go", 50, time.Now())
	suite.db.Model(skill).Update("note", "old note")

	body, _ := json.Marshal(map[string]interface{}{
		"name":     "Go",
		"progress": 75,
	})

	c, w := suite.createContext("PUT", "/api/skills/1", body, user.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.UpdateSkill(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var stored models.Skill
	suite.db.First(&stored, skill.ID)
	assert.Equal(suite.T(), 75, stored.Progress)
	// Omitted fields are replaced, not preserved
	assert.Equal(suite.T(), "", stored.Note)
}

// TestUpdateSkill_MissingName tests that PUT revalidates required fields
func (suite *SkillHandlerTestSuite) TestUpdateSkill_MissingName() {
	user := suite.createTestUser("alice")
	suite.createTestSkill(user.ID, "Go", 50, time.Now())

	body, _ := json.Marshal(map[string]interface{}{
		"progress": 75,
	})

	c, w := suite.createContext("PUT", "/api/skills/1", body, user.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.UpdateSkill(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestDeleteSkill_Success tests deletion followed by retrieval
func (suite *SkillHandlerTestSuite) TestDeleteSkill_Success() {
	user := suite.createTestUser("alice")
	suite.createTestSkill(user.ID, "Go", 50, time.Now())

	c, w := suite.createContext("DELETE", "/api/skills/1", nil, user.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.DeleteSkill(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := decodeEnvelope(suite.T(), w)
	assert.Equal(suite.T(), "Skill deleted successfully", response["message"])

	c2, w2 := suite.createContext("GET", "/api/skills/1", nil, user.ID)
	c2.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.GetSkill(c2)

	assert.Equal(suite.T(), http.StatusNotFound, w2.Code)
}

// TestDeleteSkill_NotFound tests deleting a missing skill
func (suite *SkillHandlerTestSuite) TestDeleteSkill_NotFound() {
	c, w := suite.createContext("DELETE", "/api/skills/42", nil, 1)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	suite.handler.DeleteSkill(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestSkillHandlerTestSuite runs the test suite
func TestSkillHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SkillHandlerTestSuite))
}
