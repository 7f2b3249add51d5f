package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(ImportFileMissing, s.traceID)

	s.NotNil(response)
	s.Equal("IMPORT_001", response.Error.Code)
	s.Equal("Import file not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithMultipleOptions() {
	details := []string{"reading csv line 3: extraneous or missing \" in quoted-field"}
	response := NewErrorResponse(
		ImportFileUnreadable,
		s.traceID,
		WithMessage("Uploaded file is not valid CSV"),
		WithDetails(details...),
	)

	s.Equal("IMPORT_002", response.Error.Code)
	s.Equal("Uploaded file is not valid CSV", response.Error.Message)
	s.Equal(details, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_WithFieldErrors() {
	response := NewValidationError(map[string]string{
		"file": "is required",
	}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal([]string{"file: is required"}, response.Error.Details)
}

// TestWrapSystemError_NoInternalDetailsExposed tests that internal details are not exposed
func (s *ResponseTestSuite) TestWrapSystemError_NoInternalDetailsExposed() {
	sensitiveErr := errors.New("pq: relation \"transactions\" does not exist")

	response, originalErr := WrapSystemError(sensitiveErr, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "relation")
	s.Empty(response.Error.Details)
	s.Equal(sensitiveErr, originalErr)
}

func (s *ResponseTestSuite) TestMarshal_EmptyDetailsOmitted() {
	jsonBytes, err := json.Marshal(NewErrorResponse(ImportInvalidPath, s.traceID))
	s.NoError(err)

	var jsonMap map[string]interface{}
	s.NoError(json.Unmarshal(jsonBytes, &jsonMap))

	errorMap := jsonMap["error"].(map[string]interface{})
	_, hasDetails := errorMap["details"]
	s.False(hasDetails, "Empty details should be omitted from JSON")
	s.Equal("IMPORT_003", errorMap["code"])
}

func (s *ResponseTestSuite) TestGetHTTPStatus_AllErrorCodes() {
	testCases := []struct {
		code           ErrorCode
		expectedStatus int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationRequiredField, http.StatusBadRequest},
		{ImportInvalidPath, http.StatusBadRequest},
		{ImportFileMissing, http.StatusNotFound},
		{SystemRouteNotFound, http.StatusNotFound},
		{SystemMethodNotAllowed, http.StatusMethodNotAllowed},
		{ValidationFileTooLarge, http.StatusRequestEntityTooLarge},
		{ImportFileUnreadable, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemInternalError, http.StatusInternalServerError},
		{SystemDatabaseError, http.StatusInternalServerError},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{"UNKNOWN_999", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expectedStatus, GetHTTPStatus(tc.code))
		})
	}
}
