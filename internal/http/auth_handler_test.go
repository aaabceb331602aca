package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"crystalis-cms/internal/domain"
	"crystalis-cms/internal/service"
)

type mockAdminUsers struct {
	byEmail map[string]domain.AdminUser
}

func (m *mockAdminUsers) GetByID(_ context.Context, id string) (domain.AdminUser, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.AdminUser{}, pgx.ErrNoRows
}

func (m *mockAdminUsers) GetByEmail(_ context.Context, email string) (domain.AdminUser, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return domain.AdminUser{}, pgx.ErrNoRows
	}
	return u, nil
}

func (m *mockAdminUsers) Create(_ context.Context, user domain.AdminUser) error {
	m.byEmail[user.Email] = user
	return nil
}

type routerFixture struct {
	router    *gin.Engine
	tokens    *service.AuthTokenService
	accounts  *mockAdminUsers
	blogs     *mockBlogStore
	inquiries *mockInquiryStore
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	accounts := &mockAdminUsers{byEmail: make(map[string]domain.AdminUser)}
	admins := service.NewAdminService(logger, accounts)
	if _, err := admins.CreateAdmin(context.Background(), service.CreateAdminInput{
		Name:     "Admin User",
		Email:    "admin@crystalis.com",
		Role:     "admin",
		Password: "admin123",
	}); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	tokens := service.NewAuthTokenService("test-secret", time.Hour, nil)

	blogs := newMockBlogStore()
	inquiries := newMockInquiryStore()
	content := service.NewContentService(logger, service.ContentRepos{
		Blogs:     blogs,
		Inquiries: inquiries,
		Stats:     &mockStatsStore{},
	}, nil, "")

	authH := NewAuthHandler(logger, admins, tokens)
	contentH := NewContentHandler(logger, content)
	dashH := NewDashboardHandler(logger, content)

	return &routerFixture{
		router:    NewRouter(logger, tokens, authH, contentH, dashH),
		tokens:    tokens,
		accounts:  accounts,
		blogs:     blogs,
		inquiries: inquiries,
	}
}

func (f *routerFixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func (f *routerFixture) login(t *testing.T) string {
	t.Helper()
	w := f.do(t, http.MethodPost, "/admin/auth/login", "", gin.H{
		"email":    "admin@crystalis.com",
		"password": "admin123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status %d", w.Code)
	}
	body := decodeBody(t, w)
	data, _ := body["data"].(map[string]any)
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatalf("login returned no token: %s", w.Body.String())
	}
	return token
}

func TestLogin_Success(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(t, http.MethodPost, "/admin/auth/login", "", gin.H{
		"email":    "admin@crystalis.com",
		"password": "admin123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != true {
		t.Fatalf("expected success, got %v", body)
	}
	data := body["data"].(map[string]any)
	user := data["user"].(map[string]any)
	if user["email"] != "admin@crystalis.com" || user["role"] != "admin" {
		t.Fatalf("unexpected user payload: %v", user)
	}
	if data["token"] == "" {
		t.Fatal("expected token in payload")
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(t, http.MethodPost, "/admin/auth/login", "", gin.H{
		"email":    "admin@crystalis.com",
		"password": "wrong",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body)
	}
	if body["message"] != "Invalid credentials" {
		t.Fatalf("expected Invalid credentials, got %v", body["message"])
	}
}

func TestLogin_MissingFields(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(t, http.MethodPost, "/admin/auth/login", "", gin.H{"email": "admin@crystalis.com"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestVerify_WithValidToken(t *testing.T) {
	f := newRouterFixture(t)
	token := f.login(t)

	w := f.do(t, http.MethodGet, "/admin/auth/verify", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	user := body["data"].(map[string]any)["user"].(map[string]any)
	if user["email"] != "admin@crystalis.com" {
		t.Fatalf("unexpected user: %v", user)
	}
}

func TestVerify_WithoutToken(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(t, http.MethodGet, "/admin/auth/verify", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body)
	}
}

func TestVerify_DeletedAccount(t *testing.T) {
	f := newRouterFixture(t)
	token := f.login(t)

	// La cuenta desaparece con el token todavía firmado y sin revocar.
	delete(f.accounts.byEmail, "admin@crystalis.com")

	w := f.do(t, http.MethodGet, "/admin/auth/verify", token, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for deleted account, got %d", w.Code)
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	f := newRouterFixture(t)
	token := f.login(t)

	w := f.do(t, http.MethodPost, "/auth/logout", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("logout status %d", w.Code)
	}
	if decodeBody(t, w)["success"] != true {
		t.Fatal("expected success=true")
	}

	// El jti quedó revocado, el token ya no verifica.
	w = f.do(t, http.MethodGet, "/admin/auth/verify", token, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w.Code)
	}
}
