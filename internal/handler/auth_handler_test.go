package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/svj-dojo/bellwall-api/internal/service"
	"github.com/svj-dojo/bellwall-api/pkg/config"
)

func newLoginHandler(t *testing.T, password string) *AuthHandler {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	svc := service.NewAuthService(config.AuthConfig{
		JWTSecret:         "test_secret",
		TokenExpiry:       time.Hour,
		AdminPasswordHash: string(hash),
	}, nil, nil)
	return NewAuthHandler(svc)
}

func postLogin(handler *AuthHandler, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler.Login(c)
	return rec
}

func TestAuthHandlerLoginSuccess(t *testing.T) {
	handler := newLoginHandler(t, "osu")

	rec := postLogin(handler, `{"password":"osu"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data.AccessToken)
}

func TestAuthHandlerLoginWrongPassword(t *testing.T) {
	handler := newLoginHandler(t, "osu")

	rec := postLogin(handler, `{"password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandlerLoginBadPayload(t *testing.T) {
	handler := newLoginHandler(t, "osu")

	rec := postLogin(handler, `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
