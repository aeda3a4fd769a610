package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/catalog/pkg/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestSuccessEnvelope(t *testing.T) {
	c, w := newContext()
	Success(c, "author", gin.H{"id": 1, "name": "Kafka"})

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "Kafka", body["author"].(map[string]interface{})["name"])
}

func TestCreated(t *testing.T) {
	c, w := newContext()
	Created(c, "genre", gin.H{"id": 2})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestError(t *testing.T) {
	t.Run("业务错误映射HTTP状态", func(t *testing.T) {
		c, w := newContext()
		Error(c, apperrors.New(apperrors.ErrCodeConflict, "Author already exists"))

		assert.Equal(t, http.StatusConflict, w.Code)
		var body ErrorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 409, body.StatusCode)
		assert.Equal(t, "Author already exists", body.Message)
		assert.Equal(t, "Conflict", body.Error)
		assert.True(t, c.IsAborted())
	})

	t.Run("内部错误不泄露细节", func(t *testing.T) {
		c, w := newContext()
		Error(c, errors.New("pq: password authentication failed"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "password authentication")
	})

	t.Run("超时返回408", func(t *testing.T) {
		c, w := newContext()
		Error(c, apperrors.Wrap(context.DeadlineExceeded, "查询图书失败"))

		assert.Equal(t, http.StatusRequestTimeout, w.Code)
		assert.Contains(t, w.Body.String(), "Request Timeout")
	})
}

func TestValidationError(t *testing.T) {
	c, w := newContext()
	ValidationError(c, "validation failed", []FieldError{{Field: "title", Rule: "required", Message: "title is required"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "title", body.Errors[0].Field)
}

func TestNewPageData(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 7, 4},
	}
	for _, tc := range cases {
		pd := NewPageData([]int{}, tc.total, 1, tc.pageSize)
		assert.Equal(t, tc.want, pd.TotalPages, "total=%d pageSize=%d", tc.total, tc.pageSize)
		assert.True(t, pd.OK)
	}
	assert.Equal(t, 0, TotalPages(5, 0))
}
