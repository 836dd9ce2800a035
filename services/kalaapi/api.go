package kalaapi

import (
	"github.com/trezcool/kala/core/attendance"
	"github.com/trezcool/kala/core/dashboard"
	"github.com/trezcool/kala/core/fee"
	"github.com/trezcool/kala/core/schedule"
)

var (
	_ attendance.API = (*Client)(nil)
	_ schedule.API   = (*Client)(nil)
	_ fee.API        = (*Client)(nil)
	_ dashboard.API  = (*Client)(nil)
)
