package kalaapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/notice"
)

const (
	pathNotices      = "/main_admin/notice/notice/all/"
	pathNoticeAdd    = "/main_admin/notice/notice/add/"
	pathNoticeUpdate = "/main_admin/notice/notice/update/{id}/"
	pathNoticeDelete = "/main_admin/notice/notice/delete/{id}/"
)

// ListNotices fetches one page of notices (pages start at 1).
func (c *Client) ListNotices(ctx context.Context, page int) ([]notice.Notice, error) {
	const fallback = "Could not fetch notices"
	if page < 1 {
		page = 1
	}
	q := url.Values{"page": {strconv.Itoa(page)}}
	body, err := c.do(ctx, http.MethodGet, pathNotices, q, nil, fallback)
	if err != nil {
		return nil, err
	}
	var notices []notice.Notice
	if err := decodeList(body, &notices, "notices"); err != nil {
		return nil, decodeFailed(err, fallback)
	}
	return notices, nil
}

func (c *Client) CreateNotice(ctx context.Context, nn notice.NewNotice) (notice.Notice, error) {
	return c.writeNotice(ctx, http.MethodPost, pathNoticeAdd, 0, nn)
}

func (c *Client) UpdateNotice(ctx context.Context, id core.ID, nn notice.NewNotice) (notice.Notice, error) {
	return c.writeNotice(ctx, http.MethodPut, idPath(pathNoticeUpdate, id), id, nn)
}

func (c *Client) writeNotice(ctx context.Context, method, path string, id core.ID, nn notice.NewNotice) (notice.Notice, error) {
	const fallback = "Failed to submit notice"
	if err := nn.Prepare(); err != nil {
		return notice.Notice{}, err
	}
	body, err := c.do(ctx, method, path, nil, nn, fallback)
	if err != nil {
		return notice.Notice{}, err
	}
	var n notice.Notice
	if decodeObject(body, &n) != nil || n.ID == 0 {
		n = notice.Notice{ID: id, Title: nn.Title, Description: nn.Description, CreatedAt: nn.CreatedAt}
	}
	return n, nil
}

func (c *Client) DeleteNotice(ctx context.Context, id core.ID) error {
	_, err := c.do(ctx, http.MethodDelete, idPath(pathNoticeDelete, id), nil, nil, "Failed to delete notice")
	return err
}
