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

// ListAccounts returns one page of the account listing.
func (c *Client) ListAccounts(ctx context.Context, query domain.AccountQuery) ([]domain.Account, int, error) {
	var resp models.AccountList
	err := c.do(ctx, call{
		operation: "list_accounts",
		method:    http.MethodGet,
		path:      "/api/financial/accounts",
		query:     accountQueryValues(query),
	}, &resp)
	if err != nil {
		return nil, 0, err
	}
	return mapping.ToDomainAccountSlice(resp.Accounts), resp.TotalPages, nil
}

// ListAllAccounts walks every page of the listing using the client's page size.
func (c *Client) ListAllAccounts(ctx context.Context, query domain.AccountQuery) ([]domain.Account, error) {
	return fetchAll(ctx, c.concurrency, func(ctx context.Context, page int) ([]domain.Account, int, error) {
		q := query
		q.Page = page
		q.Limit = c.pageSize
		return c.ListAccounts(ctx, q)
	})
}

// GetAccount retrieves a single account.
func (c *Client) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	var resp models.AccountEnvelope
	err := c.do(ctx, call{
		operation: "get_account",
		method:    http.MethodGet,
		path:      "/api/financial/accounts/" + url.PathEscape(accountID),
	}, &resp)
	if err != nil {
		return nil, err
	}
	account := mapping.ToDomainAccount(resp.Account)
	return &account, nil
}

func accountQueryValues(query domain.AccountQuery) url.Values {
	values := url.Values{}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Search != "" {
		values.Set("search", query.Search)
	}
	if query.AccountType != "" {
		values.Set("accountType", string(query.AccountType))
	}
	if query.Category != "" {
		values.Set("category", string(query.Category))
	}
	return values
}
