package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-chat-memory/internal/application"
	"github.com/oksasatya/go-chat-memory/internal/domain/entity"
	repo "github.com/oksasatya/go-chat-memory/internal/domain/repository"
)

type memUserRepo struct {
	mu    sync.Mutex
	byID  map[string]*entity.User
	byKey map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[string]*entity.User{}, byKey: map[string]*entity.User{}}
}

func (f *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[u.UserID]; ok {
		return repo.ErrDuplicate
	}
	u.CreatedAt = time.Now()
	cp := *u
	f.byID[u.UserID] = &cp
	f.byKey[u.APIKey] = &cp
	return nil
}

func (f *memUserRepo) GetByUserID(ctx context.Context, userID string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byID[userID]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (f *memUserRepo) GetByAPIKey(ctx context.Context, apiKey string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byKey[apiKey]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data"`
}

func newAuthRouter(t *testing.T) (*gin.Engine, *application.CredentialService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	creds := application.NewCredentialService(newMemUserRepo(), bcrypt.MinCost, logger)
	h := NewAuthHandler(creds, logger)

	r := gin.New()
	r.POST("/api/register", h.Register)
	r.POST("/api/login", h.Login)
	return r, creds
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/register", `{"user_id":"alice","password":"pw1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data["api_key"])
}

func TestRegisterEndpoint_Duplicate(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/register", `{"user_id":"alice","password":"pw1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/register", `{"user_id":"alice","password":"pw2"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterEndpoint_InvalidPayload(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/register", `{"user_id":"alice"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/register", `{"user_id":"alice","password":"pw1"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var reg envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))

	w = doJSON(t, r, http.MethodPost, "/api/login", `{"user_id":"alice","password":"pw1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var login envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	assert.Equal(t, reg.Data["api_key"], login.Data["api_key"])
}

func TestLoginEndpoint_WrongPassword(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/register", `{"user_id":"alice","password":"pw1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/login", `{"user_id":"alice","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginEndpoint_UnknownUser(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/login", `{"user_id":"ghost","password":"pw"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
