package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/fee"
	"github.com/trezcool/kala/core/session"
	inmemdb "github.com/trezcool/kala/storage/inmem"
)

type studentApi struct {
	db *inmemdb.DB
}

func registerStudentAPI(g *echo.Group, db *inmemdb.DB) {
	api := studentApi{db: db}

	g.POST("/login_api", api.login)
	g.GET("/all", api.query)
	g.POST("/add", api.create)
	g.GET("/details/:id", api.retrieve)
	g.DELETE("/student/delete/:id", api.destroy)
	g.POST("/feehistoryapi/feeshistoryapi/pay-fees", api.payFees)
}

// Handlers

func (api *studentApi) login(ctx echo.Context) error {
	var data loginRequest
	if err := bind(ctx, &data, "loginRequest"); err != nil {
		return err
	}
	if err := core.Check(data); err != nil {
		return err
	}
	role, ok := session.ParseRole(data.Type.String())
	if !ok {
		role = session.RoleStudent
	}

	acc, err := api.db.Authenticate(data.Email, data.Password, role)
	if err != nil {
		if errors.Cause(err) == inmemdb.ErrNotFound {
			return errInvalidCredentials
		}
		return errors.Wrap(err, "authenticating")
	}

	usr := echo.Map{"id": acc.ID, "name": acc.Name, "email": acc.Email}
	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"data":    echo.Map{"data": usr},
		"type":    acc.Role,
	})
}

func (api *studentApi) query(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"data": api.db.QueryAllStudents()})
}

func (api *studentApi) create(ctx echo.Context) error {
	var data newStudentRequest
	if err := bind(ctx, &data, "newStudentRequest"); err != nil {
		return err
	}
	ns := data.toNewStudent()
	ns.Clean()
	if err := core.Check(ns); err != nil {
		return err
	}

	s, err := api.db.CreateStudent(ns)
	if err != nil {
		return errors.Wrap(err, "creating student")
	}
	return ctx.JSON(http.StatusCreated, echo.Map{"message": "Student created successfully", "data": s})
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	s, err := api.db.GetStudentByID(id)
	if err != nil {
		return notFound("Student")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"data": s})
}

func (api *studentApi) destroy(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	if err := api.db.DeleteStudent(id); err != nil {
		return notFound("Student")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "Student deleted successfully"})
}

func (api *studentApi) payFees(ctx echo.Context) error {
	var data fee.Payment
	if err := bind(ctx, &data, "fee.Payment"); err != nil {
		return err
	}
	if err := core.Check(data); err != nil {
		return err
	}

	pending, err := api.db.PayFees(data)
	if err != nil {
		if errors.Cause(err) == inmemdb.ErrNotFound {
			return notFound("Student")
		}
		return errors.Wrap(err, "paying fees")
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"message":      "Payment successful",
		"pending_fees": pending,
	})
}
