package kalaapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/session"
)

const pathLogin = "/student/login_api/"

type LoginRequest struct {
	Email    string       `json:"email" validate:"required,email"`
	Password string       `json:"password" validate:"required"`
	Role     session.Role `json:"type" validate:"required,oneof=student admin"`
}

// loginUser is the user object of a login response.
type loginUser struct {
	ID    core.ID `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Type  string  `json:"type"`
	Role  string  `json:"role"`
}

// Login authenticates and returns the identity to keep in the session.
// The role granted by the server wins over the requested one.
func (c *Client) Login(ctx context.Context, lr LoginRequest) (session.Identity, error) {
	const fallback = "Login failed"

	lr.Email = core.CleanString(lr.Email, true /* lower */)
	if err := core.Check(lr); err != nil {
		return session.Identity{}, err
	}

	body, err := c.do(ctx, http.MethodPost, pathLogin, nil, lr, fallback)
	if err != nil {
		return session.Identity{}, err
	}

	var usr loginUser
	if err := decodeObject(body, &usr); err != nil {
		return session.Identity{}, decodeFailed(err, "Invalid login response from server")
	}
	if usr.Email == "" {
		return session.Identity{}, decodeFailed(nil, "Invalid login response from server")
	}

	role := lr.Role
	for _, granted := range append([]string{usr.Type, usr.Role}, topLevelRole(body)...) {
		if r, ok := session.ParseRole(granted); ok {
			role = r
			break
		}
	}

	id := session.Identity{Name: usr.Name, Email: usr.Email, Role: role}
	if usr.ID != 0 {
		id.ID = null.IntFrom(int(usr.ID))
	}
	return id, nil
}

// topLevelRole returns the type/role keys of the outer envelope, if any.
func topLevelRole(body []byte) []string {
	var outer struct {
		Type string `json:"type"`
		Role string `json:"role"`
	}
	if json.Unmarshal(body, &outer) != nil {
		return nil
	}
	return []string{outer.Type, outer.Role}
}
