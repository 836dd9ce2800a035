// Package kvstore provides the key-value backends behind the session store.
package kvstore

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/kala/core"
)

type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

var (
	_ Store = (*Memory)(nil)
	_ Store = (*File)(nil)
	_ Store = (*Redis)(nil)
)

// Open returns the backend selected by conf.Session.Backend and a func releasing it.
func Open(ctx context.Context, conf *core.Config) (Store, func() error, error) {
	noop := func() error { return nil }
	switch conf.Session.Backend {
	case core.SessionBackendMemory:
		return NewMemory(), noop, nil
	case core.SessionBackendFile:
		return NewFile(conf.Session.Path), noop, nil
	case core.SessionBackendRedis:
		r, err := OpenRedis(ctx, conf.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return r, r.Close, nil
	default:
		return nil, nil, errors.Errorf("unknown session backend %q", conf.Session.Backend)
	}
}
