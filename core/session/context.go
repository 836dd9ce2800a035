package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrUnauthenticated = errors.New("not logged in")
	ErrForbidden       = errors.New("permission denied")
)

// Context holds the one current identity of the process. It is initialised from the Store at
// startup, replaced on login and torn down on logout. Pass it explicitly to whatever needs
// the identity.
type Context struct {
	store *Store

	mu      sync.RWMutex
	current Identity
	ok      bool
}

func NewContext(store *Store) *Context {
	return &Context{store: store}
}

// Init reads the persisted identity, if any.
func (c *Context) Init(ctx context.Context) error {
	id, ok, err := c.store.Load(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.current, c.ok = id, ok
	c.mu.Unlock()
	return nil
}

// Current returns the identity; ok is false when unauthenticated.
func (c *Context) Current() (Identity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current, c.ok
}

// Begin persists id and makes it current.
func (c *Context) Begin(ctx context.Context, id Identity) error {
	if err := c.store.Save(ctx, id); err != nil {
		return err
	}
	c.mu.Lock()
	c.current, c.ok = id, true
	c.mu.Unlock()
	return nil
}

// End clears the persisted identity.
func (c *Context) End(ctx context.Context) error {
	c.mu.Lock()
	c.current, c.ok = Identity{}, false
	c.mu.Unlock()
	return c.store.Clear(ctx)
}

// Require returns the current identity if it holds one of roles (any role if none given).
func (c *Context) Require(roles ...Role) (Identity, error) {
	id, ok := c.Current()
	if !ok {
		return Identity{}, ErrUnauthenticated
	}
	if len(roles) == 0 {
		return id, nil
	}
	for _, r := range roles {
		if id.Role == r {
			return id, nil
		}
	}
	return Identity{}, ErrForbidden
}
