package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talento-hq/talento/internal/shared/constants"
	"github.com/talento-hq/talento/internal/shared/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"valid values", 2, 20, 2, 20},
		{"page below one", 0, 20, constants.DefaultPage, 20},
		{"page size below one", 1, 0, 1, constants.DefaultPageSize},
		{"page size capped", 1, 1000, 1, constants.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ValidatePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
		})
	}
}

func TestPagination_Offset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, Pagination{Page: 3, PageSize: 20}.Offset())
}

func TestParsePagination(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=3&page_size=abc", nil)

	p := ParsePagination(c)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, constants.DefaultPageSize, p.PageSize)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
}

func TestErrorResponseWithError_FlattensContext(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorResponseWithError(c, errors.NewQuotaExceededError("Free", 5, 5))

	assert.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "QuotaExceeded", body["code"])
	assert.Equal(t, true, body["requiresUpgrade"])
	assert.Equal(t, "Free", body["currentPlan"])
	assert.Equal(t, float64(5), body["interviewsUsed"])
	assert.Equal(t, float64(5), body["interviewLimit"])
}

func TestErrorResponseWithError_SanitizesUnknownErrors(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorResponseWithError(c, fmt.Errorf("dial tcp 10.0.0.3:3306: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.3")
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", MaskSecret(""))
	assert.Equal(t, "****", MaskSecret("abc"))
	assert.Equal(t, "********1234", MaskSecret("sk_test_abcdef1234"))
}

func TestValidateStruct(t *testing.T) {
	type quote struct {
		Name string `json:"name" validate:"required"`
	}
	type input struct {
		Email  string  `json:"email" validate:"required,email"`
		Title  string  `json:"title" validate:"max=5"`
		Quotes []quote `json:"quotes" validate:"dive"`
	}

	err := ValidateStruct(input{Email: "nope", Title: "too long", Quotes: []quote{{Name: "ok"}, {}}})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	details := errors.GetAppError(err).Details
	assert.Contains(t, details, "email must be a valid email address")
	assert.Contains(t, details, "title must be at most 5 characters long")
	assert.Contains(t, details, "quotes[1].name is required")

	assert.NoError(t, ValidateStruct(input{Email: "a@b.com", Title: "ok"}))
}
