package erpapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/models"
	"github.com/flourmill/mill_ledger/internal/utils/mapping"
)

const dateLayout = "2006-01-02"

// GetAccountLedger returns one page of an account's transactions in backend order.
func (c *Client) GetAccountLedger(ctx context.Context, accountID string, query domain.LedgerQuery) ([]domain.Transaction, int, error) {
	var resp models.LedgerPage
	err := c.do(ctx, call{
		operation: "get_account_ledger",
		method:    http.MethodGet,
		path:      "/api/financial/accounts/" + url.PathEscape(accountID) + "/ledger",
		query:     ledgerQueryValues(query),
	}, &resp)
	if err != nil {
		return nil, 0, err
	}
	return mapping.ToDomainTransactionSlice(resp.Transactions), resp.Pagination.TotalPages, nil
}

// GetFullLedger fetches every page of the account's history and stitches them in page order.
func (c *Client) GetFullLedger(ctx context.Context, accountID string, query domain.LedgerQuery) ([]domain.Transaction, error) {
	return fetchAll(ctx, c.concurrency, func(ctx context.Context, page int) ([]domain.Transaction, int, error) {
		q := query
		q.Page = page
		q.Limit = c.pageSize
		return c.GetAccountLedger(ctx, accountID, q)
	})
}

func ledgerQueryValues(query domain.LedgerQuery) url.Values {
	values := url.Values{}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if !query.StartDate.IsZero() {
		values.Set("startDate", query.StartDate.Format(dateLayout))
	}
	if !query.EndDate.IsZero() {
		values.Set("endDate", query.EndDate.Format(dateLayout))
	}
	return values
}
