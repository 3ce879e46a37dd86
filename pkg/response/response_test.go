package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/futsalero/pkg/errorx"
)

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, Status(errorx.NotFound))
	assert.Equal(t, http.StatusBadRequest, Status(errorx.CommentTooLong))
	assert.Equal(t, http.StatusBadRequest, Status(errorx.SelfFollow))
	assert.Equal(t, http.StatusInternalServerError, Status(errorx.StorageFailure))
	assert.Equal(t, http.StatusInternalServerError, Status(errorx.IdentityExhausted))
}

func TestErrorHidesStorageDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, errorx.Storage(errors.New("UNIQUE constraint failed: players.code")))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "storage_failure", body.Code)
	assert.NotContains(t, w.Body.String(), "UNIQUE")
}

func TestErrorForeignErrorIsStorageFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, errors.New("disk I/O error"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "disk")
}
