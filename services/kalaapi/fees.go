package kalaapi

import (
	"context"
	"net/http"

	"github.com/trezcool/kala/core/fee"
)

const pathPayFees = "/student/feehistoryapi/feeshistoryapi/pay-fees/"

func (c *Client) PayFees(ctx context.Context, p fee.Payment) (fee.Receipt, error) {
	const fallback = "Failed to record payment"
	body, err := c.do(ctx, http.MethodPost, pathPayFees, nil, p, fallback)
	if err != nil {
		return fee.Receipt{}, err
	}
	var rcpt fee.Receipt
	if err := decodeObject(body, &rcpt); err != nil {
		return fee.Receipt{}, decodeFailed(err, fallback)
	}
	if rcpt.Message == "" {
		rcpt.Message = messageFrom(body)
	}
	return rcpt, nil
}
