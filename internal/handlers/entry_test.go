package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hazuki/health-log-api/internal/constants"
	"github.com/hazuki/health-log-api/internal/database"
	"github.com/hazuki/health-log-api/internal/models"
	"github.com/hazuki/health-log-api/internal/repository"
	"github.com/hazuki/health-log-api/internal/services"
)

const testUserID = "11111111-1111-1111-1111-111111111111"

// EntryHandlerTestSuite defines the test suite for EntryHandler
type EntryHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *EntryHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Entry{},
		&models.FieldType{},
		&models.FieldValue{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	user := models.User{ID: testUserID, Email: "handler@test.local"}
	suite.Require().NoError(suite.db.Create(&user).Error)

	handler := NewEntryHandler(services.NewEntryService(repository.NewEntryRepository(suite.db)))

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	// Stands in for the identity middleware.
	suite.router.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, testUserID)
	})
	suite.router.POST("/api/entries", handler.CreateEntry)
	suite.router.GET("/api/entries", handler.ListEntries)
}

// TearDownTest runs after each test
func (suite *EntryHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *EntryHandlerTestSuite) postJSON(url string, payload any) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *EntryHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_Success() {
	w := suite.postJSON("/api/entries", gin.H{
		"occurred_at": "2024-01-01T10:00:00Z",
		"fields": []gin.H{
			{"name": "Cramping", "data_type": "severity", "value": "severe"},
			{"name": "pizza", "data_type": "boolean", "value": true},
			{"name": "stress", "data_type": "scale_1_10", "value": 7},
		},
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.NotEmpty(response["entry_id"])

	var entryCount int64
	suite.Require().NoError(suite.db.Model(&models.Entry{}).Count(&entryCount).Error)
	suite.EqualValues(1, entryCount)
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_MissingOccurredAt() {
	w := suite.postJSON("/api/entries", gin.H{
		"fields": []gin.H{{"name": "cramping", "data_type": "severity", "value": "severe"}},
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_MalformedTimestamp() {
	w := suite.postJSON("/api/entries", gin.H{
		"occurred_at": "yesterday",
		"fields":      []gin.H{{"name": "cramping", "data_type": "severity", "value": "severe"}},
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_EmptyFields() {
	w := suite.postJSON("/api/entries", gin.H{
		"occurred_at": "2024-01-01T10:00:00Z",
		"fields":      []gin.H{},
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_UnsupportedDataType() {
	w := suite.postJSON("/api/entries", gin.H{
		"occurred_at": "2024-01-01T10:00:00Z",
		"fields":      []gin.H{{"name": "nap", "data_type": "duration", "value": 90}},
	})

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)

	var response map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("UNSUPPORTED_DATA_TYPE", response["code"])
}

func (suite *EntryHandlerTestSuite) TestListEntries_ReturnsDecodedValues() {
	w := suite.postJSON("/api/entries", gin.H{
		"occurred_at": "2024-01-01T10:00:00Z",
		"fields": []gin.H{
			{"name": "cramping", "data_type": "severity", "value": "severe"},
			{"name": "pizza", "data_type": "boolean", "value": true},
			{"name": "stress", "data_type": "scale_1_10", "value": 7},
		},
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.get("/api/entries")
	suite.Require().Equal(http.StatusOK, w.Code)

	var response struct {
		Entries []struct {
			ID         string  `json:"id"`
			OccurredAt string  `json:"occurred_at"`
			RawText    *string `json:"raw_text"`
			Fields     []struct {
				Name     string `json:"name"`
				DataType string `json:"data_type"`
				Value    any    `json:"value"`
			} `json:"fields"`
		} `json:"entries"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Entries, 1)

	entry := response.Entries[0]
	suite.Nil(entry.RawText)
	suite.Require().Len(entry.Fields, 3)

	decoded := map[string]any{}
	for _, field := range entry.Fields {
		decoded[field.Name] = field.Value
	}
	suite.Equal("severe", decoded["cramping"])
	suite.Equal(true, decoded["pizza"])
	suite.Equal(7.0, decoded["stress"])
}

func (suite *EntryHandlerTestSuite) TestListEntries_EmptyIsNotAnError() {
	w := suite.get("/api/entries")
	suite.Require().Equal(http.StatusOK, w.Code)

	var response map[string][]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Len(response["entries"], 0)
}

func (suite *EntryHandlerTestSuite) TestListEntries_Pagination() {
	for i := 0; i < 3; i++ {
		w := suite.postJSON("/api/entries", gin.H{
			"occurred_at": "2024-01-01T10:00:00Z",
			"fields":      []gin.H{{"name": "stress", "data_type": "scale_1_10", "value": i}},
		})
		suite.Require().Equal(http.StatusCreated, w.Code)
	}

	w := suite.get("/api/entries?limit=2&offset=2")
	suite.Require().Equal(http.StatusOK, w.Code)

	var response map[string][]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Len(response["entries"], 1)
}

func TestEntryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EntryHandlerTestSuite))
}
