package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"crystalis-cms/internal/api"
)

// State es el estado de autenticación del cliente.
type State int

const (
	// StateUnknown es el estado inicial, antes de Restore.
	StateUnknown State = iota
	// StateAnonymous indica que no hay sesión activa.
	StateAnonymous
	// StateAuthenticated indica identidad y token verificados.
	StateAuthenticated
)

// User es la identidad del administrador autenticado.
type User struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Session es una foto inmutable del estado actual para los consumidores.
type Session struct {
	State         State
	User          *User
	Token         string
	Authenticated bool
	Loading       bool
}

// ErrLoginFailed se usa cuando el backend rechaza el login sin mensaje propio.
var ErrLoginFailed = errors.New("login failed")

// Manager es el único dueño de la sesión y de su copia persistida.
//
// Invariante: el store tiene credenciales si y solo si la sesión está
// autenticada (o en verificación durante Restore). Todo camino que limpia
// la memoria limpia también el store, y viceversa.
type Manager struct {
	mu     sync.Mutex
	client *api.Client
	store  CredentialStore
	logger *zap.Logger

	state State
	user  *User
	token string
}

// NewManager crea un Manager en StateUnknown; llamar Restore al arrancar.
func NewManager(client *api.Client, store CredentialStore, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		client: client,
		store:  store,
		logger: logger,
		state:  StateUnknown,
	}
}

// Current devuelve una foto del estado de sesión.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	var user *User
	if m.user != nil {
		u := *m.user
		user = &u
	}
	return Session{
		State:         m.state,
		User:          user,
		Token:         m.token,
		Authenticated: m.state == StateAuthenticated,
		Loading:       m.state == StateUnknown,
	}
}

// Restore carga credenciales persistidas y las verifica contra el backend.
// Sin credenciales queda en StateAnonymous; con credenciales rechazadas o
// con cualquier error, limpia el store y queda en StateAnonymous. Nunca
// devuelve error a la aplicación.
func (m *Manager) Restore(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	creds, found, err := m.store.Load()
	if err != nil {
		m.logger.Warn("credential load failed", zap.Error(err))
		m.clearLocked()
		return
	}
	if !found {
		m.state = StateAnonymous
		return
	}
	m.verifyLocked(ctx, creds)
}

type verifyData struct {
	User *User `json:"user"`
}

func (m *Manager) verifyLocked(ctx context.Context, creds Credentials) {
	raw, err := m.client.FetchWithAuth(ctx, "admin/auth/verify", creds.Token)
	if err != nil {
		m.logger.Warn("token verification failed", zap.Error(err))
		m.clearLocked()
		return
	}

	env, err := api.DecodeEnvelope(raw)
	if err != nil || !env.Success {
		m.clearLocked()
		return
	}
	var data verifyData
	if err := api.DecodeInto(env.Data, &data); err != nil || data.User == nil {
		m.clearLocked()
		return
	}

	m.user = data.User
	m.token = creds.Token
	m.state = StateAuthenticated
	if err := m.store.Save(Credentials{User: *data.User, Token: creds.Token}); err != nil {
		m.logger.Warn("credential save failed", zap.Error(err))
	}
}

type loginData struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Login envía credenciales a admin/auth/login. Si el backend acepta,
// persiste identidad y token y pasa a StateAuthenticated. Si rechaza o la
// red falla, el error sube al caller con el mensaje del backend y el estado
// queda como estaba.
func (m *Manager) Login(ctx context.Context, email, password string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, err := m.client.Post(ctx, "admin/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return User{}, err
	}

	env, err := api.DecodeEnvelope(raw)
	if err != nil {
		return User{}, err
	}
	if !env.Success {
		if env.Message != "" {
			return User{}, errors.New(env.Message)
		}
		return User{}, ErrLoginFailed
	}

	var data loginData
	if err := api.DecodeInto(env.Data, &data); err != nil {
		return User{}, err
	}
	if data.User == nil || data.Token == "" {
		return User{}, ErrLoginFailed
	}

	if err := m.store.Save(Credentials{User: *data.User, Token: data.Token}); err != nil {
		// Sin copia persistida no dejamos sesión en memoria, se romperia
		// el invariante memoria⇔store.
		return User{}, err
	}
	m.user = data.User
	m.token = data.Token
	m.state = StateAuthenticated
	return *data.User, nil
}

// Logout avisa al backend con el token vigente (mejor esfuerzo, errores solo
// se loguean) y limpia memoria y store incondicionalmente. Es idempotente.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != "" {
		if _, err := m.client.PostWithAuth(ctx, "auth/logout", map[string]string{}, m.token); err != nil {
			m.logger.Warn("remote logout failed", zap.Error(err))
		}
	}
	m.clearLocked()
}

func (m *Manager) clearLocked() {
	m.user = nil
	m.token = ""
	m.state = StateAnonymous
	if err := m.store.Clear(); err != nil {
		m.logger.Warn("credential clear failed", zap.Error(err))
	}
}
