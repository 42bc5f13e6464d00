package cart

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/gourmet-grove/ordering-service/internal/models"
)

// Client state lives under fixed well-known keys, mirroring the web
// client's local storage
const (
	cartKey  = "cart"
	tokenKey = "token"
)

// FileStore persists client-side state (the cart and the session
// token) in a directory owned by the client
type FileStore struct {
	dir string
}

// NewFileStore creates a file store rooted at dir, creating the
// directory if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// LoadCart reads the saved cart. A missing or unreadable file is an
// empty cart, never an error.
func (s *FileStore) LoadCart() []models.CartItem {
	data, err := os.ReadFile(s.path(cartKey))
	if err != nil {
		return nil
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}

// SaveCart writes the cart under its fixed key
func (s *FileStore) SaveCart(items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(cartKey), data, 0o644)
}

// LoadToken reads the saved session token, or "" when none is stored
func (s *FileStore) LoadToken() string {
	data, err := os.ReadFile(s.path(tokenKey))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SaveToken writes the session token under its fixed key
func (s *FileStore) SaveToken(token string) error {
	return os.WriteFile(s.path(tokenKey), []byte(token), 0o600)
}

// ClearToken discards the stored token. This is the only form of
// session invalidation: the server never expires a session record.
func (s *FileStore) ClearToken() error {
	err := os.Remove(s.path(tokenKey))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
