package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kamalkharel2002/trackship/domain"
	httpx "github.com/kamalkharel2002/trackship/internal/http"
	"github.com/kamalkharel2002/trackship/internal/http/handlers"
	"github.com/kamalkharel2002/trackship/internal/http/middleware"
	infraauth "github.com/kamalkharel2002/trackship/internal/infrastructure/auth"
	"github.com/kamalkharel2002/trackship/internal/infrastructure/otpstore"
	"github.com/kamalkharel2002/trackship/internal/services"
	"github.com/stretchr/testify/require"
)

// memUserStore implements domain.UserRepository in memory so the full stack
// can be exercised without a database.
type memUserStore struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*domain.User)}
}

func (s *memUserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return domain.ErrUserAlreadyExists
		}
	}
	user.ID = uuid.NewString()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *memUserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *memUserStore) FindByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (s *memUserStore) Update(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

// memTokenStore implements domain.RefreshTokenRepository in memory.
type memTokenStore struct {
	mu     sync.Mutex
	tokens []*domain.RefreshToken
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{}
}

func (s *memTokenStore) Create(ctx context.Context, token *domain.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	token.ID = uuid.NewString()
	token.CreatedAt = time.Now()
	cp := *token
	s.tokens = append(s.tokens, &cp)
	return nil
}

func (s *memTokenStore) FindActiveByUser(ctx context.Context, userID string) ([]*domain.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.RefreshToken
	now := time.Now()
	// Newest first, matching the database ordering.
	for i := len(s.tokens) - 1; i >= 0; i-- {
		t := s.tokens[i]
		if t.UserID == userID && t.ExpiresAt.After(now) {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memTokenStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tokens {
		if t.ID == id {
			s.tokens = append(s.tokens[:i], s.tokens[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *memTokenStore) DeleteByUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.tokens[:0]
	for _, t := range s.tokens {
		if t.UserID != userID {
			kept = append(kept, t)
		}
	}
	s.tokens = kept
	return nil
}

// sentEmail captures one delivered message.
type sentEmail struct {
	To      string
	Subject string
	Body    string
}

// capturingNotifier implements domain.NotificationService and records every
// message instead of speaking SMTP.
type capturingNotifier struct {
	mu   sync.Mutex
	sent []sentEmail
}

func (n *capturingNotifier) SendEmail(to, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentEmail{To: to, Subject: subject, Body: body})
	return nil
}

func (n *capturingNotifier) last() (sentEmail, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.sent) == 0 {
		return sentEmail{}, false
	}
	return n.sent[len(n.sent)-1], true
}

// testServer wires the real router, handlers, services, token signing and
// hashing over in-memory stores.
type testServer struct {
	router   *gin.Engine
	users    *memUserStore
	tokens   *memTokenStore
	otps     domain.OTPStore
	notifier *capturingNotifier
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := newMemUserStore()
	tokens := newMemTokenStore()
	otps := otpstore.NewMemoryStore()
	notifier := &capturingNotifier{}

	tokenSvc := infraauth.NewJWTService(
		"e2e-access-secret", "e2e-refresh-secret", "trackship",
		15*time.Minute, 7*24*time.Hour,
	)
	passwordSvc := infraauth.NewPasswordService()
	tokenHasher := infraauth.NewTokenHasher()

	otpSvc := services.NewOTPService(otps, notifier, services.OTPConfig{TTL: 5 * time.Minute})
	authSvc := services.NewAuthService(users, tokens, passwordSvc, tokenSvc, tokenHasher, otpSvc)

	ah := handlers.NewAuthHandlers(authSvc, otpSvc)
	uh := handlers.NewUserHandlers(authSvc)
	jwtMW := middleware.NewAuthMW(tokenSvc)

	ping := func(ctx context.Context) error { return nil }

	return &testServer{
		router:   httpx.BuildRouter(ah, uh, jwtMW, ping),
		users:    users,
		tokens:   tokens,
		otps:     otps,
		notifier: notifier,
	}
}

// do performs a JSON request against the in-process server.
func (s *testServer) do(t *testing.T, method, path string, body interface{}, accessToken string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// lastOTPCode reads the live code straight out of the store, the same value
// the captured email carries.
func (s *testServer) lastOTPCode(t *testing.T, email string) string {
	t.Helper()
	entry, err := s.otps.Get(context.Background(), email)
	require.NoError(t, err, "expected a stored otp for %s", email)
	return entry.Code
}
