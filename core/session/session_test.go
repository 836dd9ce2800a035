package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/kala/storage/kvstore"
)

func TestStore_roundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kvstore.NewMemory())

	want := Identity{ID: null.IntFrom(5), Name: "Asha", Email: "asha@kala.in", Role: RoleStudent}
	require.NoError(t, store.Save(ctx, want))

	got, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)

	// overwrite
	admin := Identity{ID: null.IntFrom(1), Name: "Aman", Email: "aman@kala.in", Role: RoleAdmin}
	require.NoError(t, store.Save(ctx, admin))
	got, ok, err = store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, admin, got)

	require.NoError(t, store.Clear(ctx))
	_, ok, err = store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Save_invalid(t *testing.T) {
	store := NewStore(kvstore.NewMemory())
	tests := []struct {
		name string
		id   Identity
	}{
		{name: "no id", id: Identity{Email: "a@x.com", Role: RoleStudent}},
		{name: "no role", id: Identity{ID: null.IntFrom(1)}},
		{name: "unknown role", id: Identity{ID: null.IntFrom(1), Role: "teacher"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, ErrInvalidIdentity, store.Save(context.Background(), tt.id))
		})
	}
}

func TestStore_Load_tolerant(t *testing.T) {
	tests := []struct {
		name   string
		items  map[string]string
		wantOK bool
		want   Identity
	}{
		{name: "empty"},
		{name: "flag only", items: map[string]string{KeyLoggedIn: "true"}},
		{name: "flag false", items: map[string]string{KeyLoggedIn: "false", KeyUserData: `{"id":1,"role":"admin"}`}},
		{name: "malformed", items: map[string]string{KeyLoggedIn: "true", KeyUserData: `{"id":`}},
		{name: "not an object", items: map[string]string{KeyLoggedIn: "true", KeyUserData: `[1,2]`}},
		{name: "null id", items: map[string]string{KeyLoggedIn: "true", KeyUserData: `{"id":null,"role":"student"}`}},
		{name: "unknown role", items: map[string]string{KeyLoggedIn: "true", KeyUserData: `{"id":3,"role":"wizard"}`}},
		{
			name:   "role from userType",
			items:  map[string]string{KeyLoggedIn: "true", KeyUserData: `{"id":3,"name":"Ravi"}`, KeyUserType: "admin"},
			wantOK: true,
			want:   Identity{ID: null.IntFrom(3), Name: "Ravi", Role: RoleAdmin},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := kvstore.NewMemory()
			for k, v := range tt.items {
				require.NoError(t, kv.Set(ctx, k, v))
			}
			got, ok, err := NewStore(kv).Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContext_lifecycle(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	store := NewStore(kv)

	sc := NewContext(store)
	require.NoError(t, sc.Init(ctx))
	_, ok := sc.Current()
	assert.False(t, ok)
	_, err := sc.Require()
	assert.Equal(t, ErrUnauthenticated, err)

	student := Identity{ID: null.IntFrom(9), Email: "s@kala.in", Role: RoleStudent}
	require.NoError(t, sc.Begin(ctx, student))

	// a fresh context sees the persisted identity
	other := NewContext(store)
	require.NoError(t, other.Init(ctx))
	got, ok := other.Current()
	require.True(t, ok)
	assert.Equal(t, student, got)

	_, err = other.Require(RoleAdmin)
	assert.Equal(t, ErrForbidden, err)
	got, err = other.Require(RoleStudent, RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, student, got)

	require.NoError(t, other.End(ctx))
	_, ok = other.Current()
	assert.False(t, ok)
	_, ok, err = store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole(" Admin ")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, r)

	_, ok = ParseRole("teacher")
	assert.False(t, ok)
}
