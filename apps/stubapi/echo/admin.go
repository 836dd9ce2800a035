package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/attendance"
	"github.com/trezcool/kala/core/homework"
	"github.com/trezcool/kala/core/notice"
	"github.com/trezcool/kala/core/schedule"
	inmemdb "github.com/trezcool/kala/storage/inmem"
)

type adminApi struct {
	db       *inmemdb.DB
	pageSize int
}

func registerAdminAPI(g *echo.Group, db *inmemdb.DB, pageSize int) {
	api := adminApi{db: db, pageSize: pageSize}

	ag := g.Group("/attendance")
	ag.GET("/all", api.queryAttendance)
	ag.POST("/add", api.createAttendance)
	ag.GET("/details/:id", api.retrieveAttendance)
	ag.PUT("/update/:id", api.updateAttendance)
	ag.DELETE("/delete/:id", api.destroyAttendance)

	ng := g.Group("/notice/notice")
	ng.GET("/all", api.queryNotices)
	ng.POST("/add", api.createNotice)
	ng.PUT("/update/:id", api.updateNotice)
	ng.DELETE("/delete/:id", api.destroyNotice)

	hg := g.Group("/homework")
	hg.GET("/all", api.queryHomework)
	hg.POST("/add", api.createHomework)
	hg.DELETE("/delete/:id", api.destroyHomework)

	cg := g.Group("/calender")
	cg.GET("/all", api.queryClasses)
	cg.POST("/add", api.createClass)
	cg.PUT("/update/:id", api.updateClass)
}

// Attendance

func (api *adminApi) queryAttendance(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"all_attendance": api.db.QueryAllAttendance()})
}

func (api *adminApi) bindRecord(ctx echo.Context) (attendance.NewRecord, error) {
	var data attendance.NewRecord
	if err := bind(ctx, &data, "attendance.NewRecord"); err != nil {
		return data, err
	}
	return data, core.Check(data)
}

func (api *adminApi) createAttendance(ctx echo.Context) error {
	data, err := api.bindRecord(ctx)
	if err != nil {
		return err
	}
	rec, err := api.db.CreateAttendance(data)
	if err != nil {
		if errors.Cause(err) == inmemdb.ErrNotFound {
			return core.NewValidationError(nil, core.FieldError{Field: "student", Error: "Invalid pk - object does not exist."})
		}
		return errors.Wrap(err, "creating attendance")
	}
	return ctx.JSON(http.StatusCreated, echo.Map{"message": "Attendance added", "data": rec})
}

func (api *adminApi) retrieveAttendance(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	rec, err := api.db.GetAttendanceByID(id)
	if err != nil {
		return notFound("Attendance")
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *adminApi) updateAttendance(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	data, err := api.bindRecord(ctx)
	if err != nil {
		return err
	}
	rec, err := api.db.UpdateAttendance(id, data)
	if err != nil {
		return notFound("Attendance")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "Attendance updated", "data": rec})
}

func (api *adminApi) destroyAttendance(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	if err := api.db.DeleteAttendance(id); err != nil {
		return notFound("Attendance")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Notices

func (api *adminApi) queryNotices(ctx echo.Context) error {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	notices, total := api.db.QueryNotices(page, api.pageSize)
	return ctx.JSON(http.StatusOK, echo.Map{
		"data": echo.Map{"data": notices, "count": total, "page": page},
	})
}

func (api *adminApi) bindNotice(ctx echo.Context) (notice.NewNotice, error) {
	var data notice.NewNotice
	if err := bind(ctx, &data, "notice.NewNotice"); err != nil {
		return data, err
	}
	return data, data.Prepare()
}

func (api *adminApi) createNotice(ctx echo.Context) error {
	data, err := api.bindNotice(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, echo.Map{"data": api.db.CreateNotice(data)})
}

func (api *adminApi) updateNotice(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	data, err := api.bindNotice(ctx)
	if err != nil {
		return err
	}
	n, err := api.db.UpdateNotice(id, data)
	if err != nil {
		return notFound("Notice")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"data": n})
}

func (api *adminApi) destroyNotice(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	if err := api.db.DeleteNotice(id); err != nil {
		return notFound("Notice")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "Notice deleted"})
}

// Homework

func (api *adminApi) queryHomework(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"data": api.db.QueryAllHomework()})
}

func (api *adminApi) createHomework(ctx echo.Context) error {
	var data homework.NewHomework
	if err := bind(ctx, &data, "homework.NewHomework"); err != nil {
		return err
	}
	if err := data.Prepare(); err != nil {
		return err
	}
	h, err := api.db.CreateHomework(data)
	if err != nil {
		return core.NewValidationError(nil, core.FieldError{Field: "created_at", Error: err.Error()})
	}
	return ctx.JSON(http.StatusCreated, h)
}

func (api *adminApi) destroyHomework(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	if err := api.db.DeleteHomework(id); err != nil {
		return notFound("Homework")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "Homework deleted"})
}

// Scheduled classes

func (api *adminApi) queryClasses(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"data": api.db.QueryAllClasses()})
}

func (api *adminApi) bindClass(ctx echo.Context) (schedule.NewClass, error) {
	var data schedule.NewClass
	if err := bind(ctx, &data, "schedule.NewClass"); err != nil {
		return data, err
	}
	return data, core.Check(data)
}

func (api *adminApi) createClass(ctx echo.Context) error {
	data, err := api.bindClass(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, echo.Map{"data": api.db.CreateClass(data)})
}

func (api *adminApi) updateClass(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	data, err := api.bindClass(ctx)
	if err != nil {
		return err
	}
	c, err := api.db.UpdateClass(id, data)
	if err != nil {
		return notFound("Class")
	}
	return ctx.JSON(http.StatusOK, c)
}
