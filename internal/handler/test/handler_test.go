package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devconnect/internal/config"
	handlers "devconnect/internal/handler"
	"devconnect/internal/middleware"
	"devconnect/internal/token"
)

const testUserID = "user-123"

func createTestHandler() *handlers.Handlers {
	return &handlers.Handlers{
		AuthService:    &MockAuthService{},
		ProfileService: &MockProfileService{},
		PostService:    &MockPostService{},
		GithubService:  &MockGithubService{},
		Cfg:            &config.Config{JWTSecretKey: "test-secret-key"},
		Validate:       validator.New(),
	}
}

// authedRequest builds a request that passes the auth gate as testUserID.
func authedRequest(t *testing.T, tokens *token.Service, method, path, body string) *http.Request {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	tokenString, err := tokens.Issue(testUserID)
	require.NoError(t, err)
	req.Header.Set("x-auth-token", tokenString)

	return req
}

func gate(tokens *token.Service, h http.HandlerFunc) http.Handler {
	return middleware.Auth(tokens)(h)
}

func testTokens() *token.Service {
	return token.New("test-secret-key", time.Hour)
}

// assertMsg checks the {"msg": ...} bodies.
func assertMsg(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, expectedMsg, response["msg"])
}

// assertErrorList checks the {"errors":[{"msg":...}]} bodies.
func assertErrorList(t *testing.T, rr *httptest.ResponseRecorder, expectedMsgs ...string) {
	t.Helper()

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var response struct {
		Errors []struct {
			Msg string `json:"msg"`
		} `json:"errors"`
	}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	require.NoError(t, err)

	msgs := make([]string, 0, len(response.Errors))
	for _, item := range response.Errors {
		msgs = append(msgs, item.Msg)
	}
	assert.Equal(t, expectedMsgs, msgs)
}
