// Package session holds the authenticated identity (bearer token plus
// user ID) as an explicit object with explicit load/save/clear, instead
// of ambient global state.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const fileName = "session.yaml"

// Session is what a successful login leaves behind. The user ID is
// needed to scope the project list query, the token for everything.
type Session struct {
	Token     string    `yaml:"auth_token"`
	UserID    int       `yaml:"user_id"`
	Username  string    `yaml:"username"`
	CreatedAt time.Time `yaml:"created_at"`
}

// DefaultPath returns the session file location inside the user's
// config directory.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(base, "taiga_gantt", fileName), nil
}

// Load reads a stored session. A missing file is not an error, it just
// means nobody is logged in; that case returns (nil, nil).
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	s := &Session{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse session file %s: %w", path, err)
	}

	if s.Token == "" {
		return nil, fmt.Errorf("session file %s contains no token", path)
	}

	return s, nil
}

// Save writes the session, creating parent directories as needed. The
// file contains a bearer token, hence the tight permissions.
func (s *Session) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// Clear removes the stored session. Clearing an already absent session
// is fine.
func Clear(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}
