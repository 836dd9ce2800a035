package kalaapi

import (
	"context"
	"net/http"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/schedule"
)

const (
	pathClasses     = "/main_admin/calender/all/"
	pathClassAdd    = "/main_admin/calender/add/"
	pathClassUpdate = "/main_admin/calender/update/{id}/"
)

func (c *Client) ListScheduledClasses(ctx context.Context) ([]schedule.Class, error) {
	const fallback = "Failed to fetch scheduled classes"
	body, err := c.do(ctx, http.MethodGet, pathClasses, nil, nil, fallback)
	if err != nil {
		return nil, err
	}
	var classes []schedule.Class
	if err := decodeList(body, &classes, "classes"); err != nil {
		return nil, decodeFailed(err, fallback)
	}
	return classes, nil
}

// ScheduleClass always creates an active class.
func (c *Client) ScheduleClass(ctx context.Context, nc schedule.NewClass) (schedule.Class, error) {
	nc.Present = true
	return c.writeClass(ctx, http.MethodPost, pathClassAdd, 0, nc, "Failed to schedule class")
}

func (c *Client) UpdateScheduledClass(ctx context.Context, id core.ID, nc schedule.NewClass) (schedule.Class, error) {
	return c.writeClass(ctx, http.MethodPut, idPath(pathClassUpdate, id), id, nc, "Failed to update class")
}

func (c *Client) writeClass(ctx context.Context, method, path string, id core.ID, nc schedule.NewClass, fallback string) (schedule.Class, error) {
	if err := core.Check(nc); err != nil {
		return schedule.Class{}, err
	}
	body, err := c.do(ctx, method, path, nil, nc, fallback)
	if err != nil {
		return schedule.Class{}, err
	}
	var cls schedule.Class
	if decodeObject(body, &cls) != nil || cls.ID == 0 {
		cls = schedule.Class{ID: id, Date: nc.Date, Detail: nc.Detail, Present: nc.Present}
	}
	return cls, nil
}
