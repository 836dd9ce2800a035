package kalaapi

import (
	"context"
	"net/http"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/homework"
)

const (
	pathHomework       = "/main_admin/homework/all/"
	pathHomeworkAdd    = "/main_admin/homework/add/"
	pathHomeworkDelete = "/main_admin/homework/delete/{id}/"
)

func (c *Client) ListHomework(ctx context.Context) ([]homework.Homework, error) {
	const fallback = "Failed to fetch homework"
	body, err := c.do(ctx, http.MethodGet, pathHomework, nil, nil, fallback)
	if err != nil {
		return nil, err
	}
	var items []homework.Homework
	if err := decodeList(body, &items, "homework"); err != nil {
		return nil, decodeFailed(err, fallback)
	}
	return items, nil
}

func (c *Client) CreateHomework(ctx context.Context, nh homework.NewHomework) (homework.Homework, error) {
	if err := nh.Prepare(); err != nil {
		return homework.Homework{}, err
	}
	body, err := c.do(ctx, http.MethodPost, pathHomeworkAdd, nil, nh, "Failed to add homework")
	if err != nil {
		return homework.Homework{}, err
	}
	var h homework.Homework
	if decodeObject(body, &h) != nil || h.ID == 0 {
		h = homework.Homework{Title: nh.Title, Description: nh.Description}
		h.CreatedAt, _ = core.ParseDate(nh.CreatedAt)
	}
	return h, nil
}

func (c *Client) DeleteHomework(ctx context.Context, id core.ID) error {
	_, err := c.do(ctx, http.MethodDelete, idPath(pathHomeworkDelete, id), nil, nil, "Failed to delete homework")
	return err
}
