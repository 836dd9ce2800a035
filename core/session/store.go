package session

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

// Storage keys
const (
	KeyLoggedIn = "isLoggedIn"
	KeyUserData = "userData"
	KeyUserType = "userType"

	loggedInValue = "true"
)

var (
	// errors
	ErrInvalidIdentity = errors.New("identity must have an id and a known role")
)

// KV is a local key-value store. Get reports ok=false for missing keys.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// Store persists the logged-in Identity as an opaque record in a KV.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Save overwrites any previously saved identity.
func (s *Store) Save(ctx context.Context, id Identity) error {
	if !id.Valid() {
		return ErrInvalidIdentity
	}
	data, err := json.Marshal(id)
	if err != nil {
		return errors.Wrap(err, "encoding identity")
	}
	if err := s.kv.Set(ctx, KeyUserData, string(data)); err != nil {
		return errors.Wrap(err, "saving identity")
	}
	if err := s.kv.Set(ctx, KeyUserType, id.Role.String()); err != nil {
		return errors.Wrap(err, "saving role")
	}
	if err := s.kv.Set(ctx, KeyLoggedIn, loggedInValue); err != nil {
		return errors.Wrap(err, "saving login flag")
	}
	return nil
}

// Load returns the saved identity. A missing, malformed or incomplete record is reported
// as ok=false without error; only storage failures are errors.
func (s *Store) Load(ctx context.Context) (Identity, bool, error) {
	flag, ok, err := s.kv.Get(ctx, KeyLoggedIn)
	if err != nil {
		return Identity{}, false, errors.Wrap(err, "reading login flag")
	}
	if !ok || flag != loggedInValue {
		return Identity{}, false, nil
	}

	data, ok, err := s.kv.Get(ctx, KeyUserData)
	if err != nil {
		return Identity{}, false, errors.Wrap(err, "reading identity")
	}
	if !ok {
		return Identity{}, false, nil
	}

	var id Identity
	if err := json.Unmarshal([]byte(data), &id); err != nil {
		return Identity{}, false, nil
	}
	if id.Role == "" {
		roleTag, _, err := s.kv.Get(ctx, KeyUserType)
		if err != nil {
			return Identity{}, false, errors.Wrap(err, "reading role")
		}
		id.Role, _ = ParseRole(roleTag)
	}
	if !id.Valid() {
		return Identity{}, false, nil
	}
	return id, true, nil
}

// Clear removes every key written by Save.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeyLoggedIn, KeyUserData, KeyUserType); err != nil {
		return errors.Wrap(err, "clearing session")
	}
	return nil
}
