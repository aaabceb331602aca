package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Credentials es la copia persistida de la identidad y el token.
type Credentials struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// CredentialStore persiste credenciales entre ejecuciones del cliente.
// Se escriben juntas y se borran juntas; el Manager es el único escritor.
type CredentialStore interface {
	Load() (Credentials, bool, error)
	Save(creds Credentials) error
	Clear() error
}

type fileCredentialStore struct {
	path string
}

// NewFileCredentialStore guarda credenciales en un archivo JSON con modo 0600.
func NewFileCredentialStore(path string) CredentialStore {
	return &fileCredentialStore{path: path}
}

func (s *fileCredentialStore) Load() (Credentials, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Credentials{}, false, nil
		}
		return Credentials{}, false, err
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, false, err
	}
	if creds.Token == "" {
		return Credentials{}, false, nil
	}
	return creds, true, nil
}

func (s *fileCredentialStore) Save(creds Credentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	// Escritura a archivo temporal y rename para no dejar un archivo a medias.
	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *fileCredentialStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

type memoryCredentialStore struct {
	creds Credentials
	saved bool
}

// NewMemoryCredentialStore es un store en memoria para tests y usos efímeros.
func NewMemoryCredentialStore() CredentialStore {
	return &memoryCredentialStore{}
}

func (s *memoryCredentialStore) Load() (Credentials, bool, error) {
	if !s.saved {
		return Credentials{}, false, nil
	}
	return s.creds, true, nil
}

func (s *memoryCredentialStore) Save(creds Credentials) error {
	s.creds = creds
	s.saved = true
	return nil
}

func (s *memoryCredentialStore) Clear() error {
	s.creds = Credentials{}
	s.saved = false
	return nil
}
