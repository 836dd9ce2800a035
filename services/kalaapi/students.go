package kalaapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/student"
)

const (
	pathStudents      = "/student/all/"
	pathStudentAdd    = "/student/add/"
	pathStudentDetail = "/student/details/{id}/"
	pathStudentDelete = "/student/student/delete/{id}/"
)

// newStudentPayload is NewStudent as the backend expects it (numeric phone).
type newStudentPayload struct {
	student.NewStudent
	Phone int64 `json:"phone_no"`
}

func (c *Client) ListStudents(ctx context.Context) ([]student.Student, error) {
	const fallback = "Failed to fetch students"
	body, err := c.do(ctx, http.MethodGet, pathStudents, nil, nil, fallback)
	if err != nil {
		return nil, err
	}
	var roster []student.Student
	if err := decodeList(body, &roster, "students"); err != nil {
		return nil, decodeFailed(err, fallback)
	}
	return roster, nil
}

func (c *Client) GetStudent(ctx context.Context, id core.ID) (student.Student, error) {
	const fallback = "Failed to fetch student details"
	body, err := c.do(ctx, http.MethodGet, idPath(pathStudentDetail, id), nil, nil, fallback)
	if err != nil {
		return student.Student{}, err
	}
	var s student.Student
	if err := decodeObject(body, &s); err != nil {
		return student.Student{}, decodeFailed(err, fallback)
	}
	return s, nil
}

// CreateStudent cleans and checks ns before sending it.
func (c *Client) CreateStudent(ctx context.Context, ns student.NewStudent) (student.Student, error) {
	const fallback = "Failed to create student"
	ns.Clean()
	if err := core.Check(ns); err != nil {
		return student.Student{}, err
	}
	phone, err := strconv.ParseInt(ns.Phone, 10, 64)
	if err != nil {
		return student.Student{}, core.NewValidationError(nil, core.FieldError{Field: "phone_no", Error: "phone_no must be a whole number"})
	}

	body, err := c.do(ctx, http.MethodPost, pathStudentAdd, nil, newStudentPayload{NewStudent: ns, Phone: int64(phone)}, fallback)
	if err != nil {
		return student.Student{}, err
	}
	var s student.Student
	if decodeObject(body, &s) != nil || s.ID == 0 {
		// some revisions answer with a message only
		s = student.Student{
			Name:        ns.Name,
			Email:       ns.Email,
			Phone:       core.Text(ns.Phone),
			JoiningDate: ns.JoiningDate,
			TotalFees:   core.Amount(ns.TotalFees),
			PendingFees: core.Amount(ns.TotalFees),
		}
	}
	return s, nil
}

func (c *Client) DeleteStudent(ctx context.Context, id core.ID) error {
	_, err := c.do(ctx, http.MethodDelete, idPath(pathStudentDelete, id), nil, nil, "Failed to delete student")
	return err
}
