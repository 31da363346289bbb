package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"patient-portal/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// Slot file names mirror the two browser-storage keys of the original client.
const (
	userSlot  = "user"
	tokenSlot = "token"
)

// Local is durable client storage: two independent string slots under a
// directory. Under correct operation both slots are present or both absent;
// a half-present pair reads as "no session".
type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Local{dir: dir}, nil
}

// SaveSession persists the identity snapshot and token together.
func (l *Local) SaveSession(user entity.User, tok string) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(l.dir, userSlot), data, 0o600); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(l.dir, tokenSlot), []byte(tok), 0o600)
}

// SaveUser rewrites only the identity slot, after a local profile merge.
func (l *Local) SaveUser(user entity.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(l.dir, userSlot), data, 0o600)
}

// LoadSession reads both slots. ok is false when either is missing or the
// identity snapshot does not parse.
func (l *Local) LoadSession() (entity.User, string, bool) {
	userData, err := os.ReadFile(filepath.Join(l.dir, userSlot))
	if err != nil {
		return entity.User{}, "", false
	}
	tokenData, err := os.ReadFile(filepath.Join(l.dir, tokenSlot))
	if err != nil {
		return entity.User{}, "", false
	}
	var user entity.User
	if err := json.Unmarshal(userData, &user); err != nil {
		logrus.Warnf("Discarding unreadable session snapshot: %+v", err)
		return entity.User{}, "", false
	}
	return user, string(tokenData), true
}

// Clear removes both slots. Idempotent.
func (l *Local) Clear() error {
	for _, slot := range []string{userSlot, tokenSlot} {
		if err := os.Remove(filepath.Join(l.dir, slot)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
