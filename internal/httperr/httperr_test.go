package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBusinessThroughWrapping(t *testing.T) {
	err := fmt.Errorf("list: %w", ErrBusiness("invalid_day"))

	assert.True(t, IsBusiness(err, "invalid_day"))
	assert.False(t, IsBusiness(err, "invalid_time"))
	assert.False(t, IsBusiness(errors.New("invalid_day"), "invalid_day"))
}

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrBusiness("unknown_source"), http.StatusBadRequest, "unknown_source"},
		{ErrBusiness("brand_new"), http.StatusBadRequest, "brand_new"},
		{errors.New("db down"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		FromError(c, tc.err)

		require.Equal(t, tc.status, w.Code)
		var body HTTPError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tc.code, body.Code)
		assert.NotEmpty(t, body.Message)
	}
}
