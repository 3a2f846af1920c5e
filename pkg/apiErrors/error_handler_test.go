package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrQueryExecutionFailed, "relation \"foo\" does not exist", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"code":"ASK_002","error":"relation \"foo\" does not exist"}`, rec.Body.String())
}

func TestStatusFor_UnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusFor("XYZ"))
}
