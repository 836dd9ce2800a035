package kalaapi

import (
	"context"
	"net/http"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/attendance"
)

const (
	pathAttendance       = "/main_admin/attendance/all/"
	pathAttendanceAdd    = "/main_admin/attendance/add/"
	pathAttendanceDetail = "/main_admin/attendance/details/{id}/"
	pathAttendanceUpdate = "/main_admin/attendance/update/{id}/"
	pathAttendanceDelete = "/main_admin/attendance/delete/{id}/"
)

func (c *Client) ListAttendance(ctx context.Context) ([]attendance.Record, error) {
	const fallback = "Failed to fetch attendance"
	body, err := c.do(ctx, http.MethodGet, pathAttendance, nil, nil, fallback)
	if err != nil {
		return nil, err
	}
	var records []attendance.Record
	if err := decodeList(body, &records, "all_attendance"); err != nil {
		return nil, decodeFailed(err, fallback)
	}
	return records, nil
}

func (c *Client) GetAttendance(ctx context.Context, id core.ID) (attendance.Record, error) {
	const fallback = "Failed to fetch attendance details"
	body, err := c.do(ctx, http.MethodGet, idPath(pathAttendanceDetail, id), nil, nil, fallback)
	if err != nil {
		return attendance.Record{}, err
	}
	var rec attendance.Record
	if err := decodeObject(body, &rec); err != nil {
		return attendance.Record{}, decodeFailed(err, fallback)
	}
	return rec, nil
}

func (c *Client) CreateAttendance(ctx context.Context, nr attendance.NewRecord) (attendance.Record, error) {
	return c.writeAttendance(ctx, http.MethodPost, pathAttendanceAdd, 0, nr, "Failed to add attendance")
}

func (c *Client) UpdateAttendance(ctx context.Context, id core.ID, nr attendance.NewRecord) (attendance.Record, error) {
	return c.writeAttendance(ctx, http.MethodPut, idPath(pathAttendanceUpdate, id), id, nr, "Failed to update attendance")
}

func (c *Client) writeAttendance(ctx context.Context, method, path string, id core.ID, nr attendance.NewRecord, fallback string) (attendance.Record, error) {
	if err := core.Check(nr); err != nil {
		return attendance.Record{}, err
	}
	body, err := c.do(ctx, method, path, nil, nr, fallback)
	if err != nil {
		return attendance.Record{}, err
	}
	rec := attendance.Record{ID: id, StudentID: nr.StudentID, Date: nr.Date, Present: nr.Present}
	var got attendance.Record
	if decodeObject(body, &got) == nil && got.ID != 0 {
		rec = got
	}
	return rec, nil
}

func (c *Client) DeleteAttendance(ctx context.Context, id core.ID) error {
	_, err := c.do(ctx, http.MethodDelete, idPath(pathAttendanceDelete, id), nil, nil, "Delete failed")
	return err
}
