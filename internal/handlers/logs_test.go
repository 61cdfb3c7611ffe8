package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	mw "learnlog/internal/middleware"
)

// postCreate exercises the request-side checks of Create; the repository is
// never reached for these inputs.
func postCreate(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewLogsHandler(nil)
	req := httptest.NewRequest(http.MethodPost, "/api/logs", strings.NewReader(body))
	req = req.WithContext(mw.WithUserID(req.Context(), "user-1"))
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	return rec
}

func TestCreateRejectsFutureDate(t *testing.T) {
	rec := postCreate(t, `{"title":"t","date":"2024-06-06","local_date":"2024-06-05"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "future date")
}

func TestCreateRejectsMissingTitle(t *testing.T) {
	rec := postCreate(t, `{"title":"","date":"2024-06-03","local_date":"2024-06-05"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRejectsMalformedDate(t *testing.T) {
	rec := postCreate(t, `{"title":"t","date":"June 3rd"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRejectsInvalidJSON(t *testing.T) {
	rec := postCreate(t, `{"title":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
