package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/session"
	"github.com/trezcool/kala/core/student"
)

type loginRequest struct {
	Email    string       `json:"email" validate:"required,email"`
	Password string       `json:"password" validate:"required"`
	Type     session.Role `json:"type"`
}

// newStudentRequest accepts phone numbers sent as JSON numbers.
type newStudentRequest struct {
	student.NewStudent
	Phone core.Text `json:"phone_no"`
}

func (r newStudentRequest) toNewStudent() student.NewStudent {
	ns := r.NewStudent
	ns.Phone = string(r.Phone)
	return ns
}

func idParam(ctx echo.Context) (core.ID, error) {
	id, err := core.ParseID(ctx.Param("id"))
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}

func bind(ctx echo.Context, v interface{}, name string) error {
	if err := ctx.Bind(v); err != nil {
		return errors.Wrapf(err, "binding to %s", name)
	}
	return nil
}
