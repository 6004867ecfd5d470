package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/validation"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"course not found", fmt.Errorf("%w: CS999", apperrors.ErrCourseNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"duplicate student", apperrors.ErrStudentAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"dependents", apperrors.ErrCourseHasDependents, http.StatusConflict, dto.ErrorCodeConflict},
		{"cycle", apperrors.ErrCyclicPrerequisite, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"not enrolled", apperrors.ErrNotEnrolled, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"invalid", apperrors.InvalidArgument("credits must be positive"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad request", apperrors.NewBadRequestError("nope"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := classifyError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, detail.Code)
		})
	}
}

func TestClassifyError_HidesInternalDetails(t *testing.T) {
	_, detail := classifyError(fmt.Errorf("connection refused to 10.0.0.1"))
	assert.Equal(t, "Internal server error", detail.Message)
	assert.Equal(t, dto.ErrorSeverityCritical, detail.Severity)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	router := gin.New()
	router.Use(RequestID(), RequestLogger(zerolog.New(&buf)))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, generated, line["requestId"])
	assert.EqualValues(t, http.StatusNoContent, line["status"])

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))
}

func TestHandleBindError_ReportsFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	validation.RegisterBinding()
	router := gin.New()
	router.POST("/students", func(c *gin.Context) {
		var req dto.CreateStudentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleBindError(c, err, "Invalid student data")
			return
		}
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"name":"Alice"}`)
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/students", body))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Details []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "VAL_001", resp.Error.Code)
	require.Len(t, resp.Error.Details, 3)
	assert.Equal(t, "SSN", resp.Error.Details[0].Field)
	assert.Equal(t, "SSN is required", resp.Error.Details[0].Message)
}

func TestHandleBindError_CustomRules(t *testing.T) {
	gin.SetMode(gin.TestMode)
	validation.RegisterBinding()
	router := gin.New()
	router.POST("/enroll", func(c *gin.Context) {
		var req dto.EnrollRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleBindError(c, err, "Invalid enrollment data")
			return
		}
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/enroll", bytes.NewBufferString(`{"ssn":"S 001"}`)))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "without spaces")
}
