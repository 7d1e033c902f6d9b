package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"careerboost-api/internal/model"
	"careerboost-api/internal/storage"
	"careerboost-api/pkg/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// setupTest points the package-level handler state at a fresh in-memory
// store and returns it so tests can seed data directly.
func setupTest(t *testing.T) *storage.MemoryStorage {
	t.Helper()
	mem := storage.NewMemoryStorage()
	Init(mem, &config.Config{AI: config.AIConfig{Model: "gemini-1.5-flash"}})
	return mem
}

func newJSONContext(t *testing.T, method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func mustCreateUser(t *testing.T, s storage.Storage, email string) *model.User {
	t.Helper()
	user, err := s.CreateUser(&model.UserInput{Email: email, FullName: "Test User"})
	require.NoError(t, err)
	return user
}

func mustCreateResume(t *testing.T, s storage.Storage, userID uint, title string, score int) *model.Resume {
	t.Helper()
	resume, err := s.CreateResume(&model.ResumeInput{
		UserID:   userID,
		Title:    title,
		Content:  datatypes.JSON(`{"sections":[]}`),
		ATSScore: &score,
	})
	require.NoError(t, err)
	return resume
}

func mustCreateApplication(t *testing.T, s storage.Storage, userID uint, company, status string) *model.Application {
	t.Helper()
	application, err := s.CreateApplication(&model.ApplicationInput{
		UserID:   userID,
		Company:  company,
		Position: "Software Intern",
		Status:   status,
	})
	require.NoError(t, err)
	return application
}
