// Package creds persists the chat platform login between runs.
//
// Credentials live in a single JSON file under the XDG data directory
// ($XDG_DATA_HOME/streamlate/auth.json, default ~/.local/share/streamlate/).
// The file is written with 0600 permissions; the directory with 0700
package creds

import (
	"encoding/json"
	"os"
	"path/filepath"

	perr "streamlate/internal/platform/errors"
)

const (
	dataDirName = "streamlate"
	fileName    = "auth.json"
)

// Credentials is the persisted chat platform login
type Credentials struct {
	ClientID     string `json:"client_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	BotUserID    string `json:"bot_user_id"`
	Channel      string `json:"channel"`
}

// Empty reports whether no usable login is stored
func (c Credentials) Empty() bool { return c.AccessToken == "" }

// Store reads and writes the credentials file at a fixed path
type Store struct {
	path string
}

// NewStore opens a store at path. An empty path resolves to the default
// XDG location
func NewStore(path string) (*Store, error) {
	if path == "" {
		dir, err := dataDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, fileName)
	}
	return &Store{path: path}, nil
}

// Path returns the backing file path, for display
func (s *Store) Path() string { return s.path }

// Load reads credentials from disk. A missing or unreadable file yields
// empty credentials, not an error: first runs have nothing stored yet
func (s *Store) Load() Credentials {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Credentials{}
	}
	var c Credentials
	if err := json.Unmarshal(data, &c); err != nil {
		return Credentials{}
	}
	return c
}

// Save writes credentials with owner-only permissions
func (s *Store) Save(c Credentials) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "creds: marshaling credentials")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "creds: creating data directory")
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "creds: writing auth file")
	}
	return nil
}

// Clear removes the stored credentials
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "creds: removing auth file")
	}
	return nil
}

// Mask shortens a token for log output
func Mask(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

func dataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, dataDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "creds: resolving home directory")
	}
	return filepath.Join(home, ".local", "share", dataDirName), nil
}
