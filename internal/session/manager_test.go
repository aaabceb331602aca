package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"crystalis-cms/internal/api"
)

// testBackend arma un backend mínimo con las tres rutas de sesión.
type testBackend struct {
	validToken   string
	user         User
	loginSuccess bool
	loginMessage string
	logoutCalls  int
	verifyCalls  int
}

func (b *testBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if !b.loginSuccess {
			json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"message": b.loginMessage,
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"user":  b.user,
				"token": b.validToken,
			},
		})
	})
	mux.HandleFunc("/admin/auth/verify", func(w http.ResponseWriter, r *http.Request) {
		b.verifyCalls++
		if r.Header.Get("Authorization") != "Bearer "+b.validToken || b.validToken == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "invalid token"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"user": b.user},
		})
	})
	mux.HandleFunc("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		b.logoutCalls++
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})
	return mux
}

func newTestManager(t *testing.T, backend *testBackend) (*Manager, CredentialStore, func()) {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	client := api.NewClient(server.URL, nil)
	store := NewMemoryCredentialStore()
	return NewManager(client, store, nil), store, server.Close
}

func TestManager_InitialStateIsLoading(t *testing.T) {
	manager := NewManager(api.NewClient("http://localhost:0", nil), NewMemoryCredentialStore(), nil)
	current := manager.Current()
	if current.State != StateUnknown || !current.Loading || current.Authenticated {
		t.Fatalf("unexpected initial state: %+v", current)
	}
}

func TestManager_RestoreWithoutCredentials(t *testing.T) {
	backend := &testBackend{}
	manager, _, closeFn := newTestManager(t, backend)
	defer closeFn()

	manager.Restore(context.Background())

	current := manager.Current()
	if current.State != StateAnonymous || current.Loading || current.Authenticated {
		t.Fatalf("expected anonymous after restore, got %+v", current)
	}
	if backend.verifyCalls != 0 {
		t.Fatalf("verify should not be called without credentials")
	}
}

func TestManager_RestoreVerifiesAndRepersists(t *testing.T) {
	backend := &testBackend{
		validToken: "tok-valid",
		user:       User{ID: "u1", Name: "Admin", Email: "admin@crystalis.com", Role: "admin"},
	}
	manager, store, closeFn := newTestManager(t, backend)
	defer closeFn()

	if err := store.Save(Credentials{User: backend.user, Token: "tok-valid"}); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	manager.Restore(context.Background())

	current := manager.Current()
	if !current.Authenticated || current.Token != "tok-valid" {
		t.Fatalf("expected authenticated session, got %+v", current)
	}
	creds, found, err := store.Load()
	if err != nil || !found || creds.Token != "tok-valid" {
		t.Fatalf("expected re-persisted credentials, got %+v, %v, %v", creds, found, err)
	}
	if backend.verifyCalls != 1 {
		t.Fatalf("expected one verify call, got %d", backend.verifyCalls)
	}
}

func TestManager_RestoreRejectedTokenClearsStore(t *testing.T) {
	backend := &testBackend{validToken: "other-token"}
	manager, store, closeFn := newTestManager(t, backend)
	defer closeFn()

	if err := store.Save(Credentials{User: User{Name: "Stale"}, Token: "tok-stale"}); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	manager.Restore(context.Background())

	current := manager.Current()
	if current.State != StateAnonymous || current.Authenticated || current.Token != "" {
		t.Fatalf("expected anonymous after rejected verify, got %+v", current)
	}
	if _, found, _ := store.Load(); found {
		t.Fatal("expected credentials cleared after rejected verify")
	}
}

func TestManager_LoginRoundTrip(t *testing.T) {
	backend := &testBackend{
		validToken:   "abc123",
		loginSuccess: true,
		user:         User{Name: "Admin"},
	}
	manager, store, closeFn := newTestManager(t, backend)
	defer closeFn()

	user, err := manager.Login(context.Background(), "admin@crystalis.com", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Name != "Admin" {
		t.Fatalf("unexpected user: %+v", user)
	}

	current := manager.Current()
	if !current.Authenticated || current.User == nil || current.User.Name != "Admin" {
		t.Fatalf("expected authenticated session, got %+v", current)
	}
	creds, found, err := store.Load()
	if err != nil || !found {
		t.Fatalf("expected persisted credentials, got %v, %v", found, err)
	}
	if creds.Token != "abc123" || creds.User.Name != "Admin" {
		t.Fatalf("persisted credentials do not match session: %+v", creds)
	}

	// El token persistido debe pasar una verificación posterior.
	manager.Restore(context.Background())
	if !manager.Current().Authenticated {
		t.Fatal("expected verify with stored token to succeed")
	}
}

func TestManager_LoginInvalidCredentialsLeavesStateUntouched(t *testing.T) {
	backend := &testBackend{
		loginSuccess: false,
		loginMessage: "Invalid credentials",
	}
	manager, store, closeFn := newTestManager(t, backend)
	defer closeFn()
	manager.Restore(context.Background())

	_, err := manager.Login(context.Background(), "bad@x.com", "wrong")
	if err == nil {
		t.Fatal("expected login error")
	}
	if err.Error() != "Invalid credentials" {
		t.Fatalf("expected backend message, got %q", err.Error())
	}

	current := manager.Current()
	if current.Authenticated || current.State != StateAnonymous {
		t.Fatalf("expected anonymous after failed login, got %+v", current)
	}
	if _, found, _ := store.Load(); found {
		t.Fatal("expected storage untouched after failed login")
	}
}

func TestManager_LoginTransportErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()
	manager := NewManager(api.NewClient(server.URL, nil), NewMemoryCredentialStore(), nil)

	if _, err := manager.Login(context.Background(), "a@b.com", "pw"); err == nil {
		t.Fatal("expected transport error to propagate")
	}
	if manager.Current().Authenticated {
		t.Fatal("state must remain unauthenticated")
	}
}

func TestManager_LogoutIsIdempotent(t *testing.T) {
	backend := &testBackend{
		validToken:   "tok-1",
		loginSuccess: true,
		user:         User{Name: "Admin"},
	}
	manager, store, closeFn := newTestManager(t, backend)
	defer closeFn()

	if _, err := manager.Login(context.Background(), "admin@crystalis.com", "admin123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	manager.Logout(context.Background())
	if manager.Current().State != StateAnonymous {
		t.Fatal("expected anonymous after logout")
	}
	if _, found, _ := store.Load(); found {
		t.Fatal("expected empty storage after logout")
	}
	if backend.logoutCalls != 1 {
		t.Fatalf("expected one remote logout call, got %d", backend.logoutCalls)
	}

	// Segunda vez: sin token no hay llamada remota y el estado queda igual.
	manager.Logout(context.Background())
	if manager.Current().State != StateAnonymous {
		t.Fatal("expected anonymous after second logout")
	}
	if _, found, _ := store.Load(); found {
		t.Fatal("expected empty storage after second logout")
	}
	if backend.logoutCalls != 1 {
		t.Fatalf("second logout must not call the backend, got %d calls", backend.logoutCalls)
	}
}

func TestManager_LogoutClearsEvenIfRemoteFails(t *testing.T) {
	backend := &testBackend{
		validToken:   "tok-1",
		loginSuccess: true,
		user:         User{Name: "Admin"},
	}
	server := httptest.NewServer(backend.handler())
	client := api.NewClient(server.URL, nil)
	store := NewMemoryCredentialStore()
	manager := NewManager(client, store, nil)

	if _, err := manager.Login(context.Background(), "admin@crystalis.com", "admin123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// El backend se cae antes del logout.
	server.Close()
	manager.Logout(context.Background())

	if manager.Current().State != StateAnonymous {
		t.Fatal("expected anonymous even though remote logout failed")
	}
	if _, found, _ := store.Load(); found {
		t.Fatal("expected empty storage even though remote logout failed")
	}
}
