package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/core/domain"
	portsrepo "github.com/flourmill/mill_ledger/internal/core/ports/repositories"
	"golang.org/x/sync/errgroup"
)

// fetchAccounts loads the given accounts concurrently. Empty ids are skipped, and an id the
// backend does not know is reported as ErrNoMatchingAccount.
func fetchAccounts(ctx context.Context, accounts portsrepo.AccountReader, ids ...string) ([]domain.Account, error) {
	found := make([]*domain.Account, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		if id == "" {
			continue
		}
		g.Go(func() error {
			acc, err := accounts.GetAccount(ctx, id)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return fmt.Errorf("%w: account %s does not exist", apperrors.ErrNoMatchingAccount, id)
				}
				return err
			}
			found[i] = acc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]domain.Account, 0, len(found))
	for _, acc := range found {
		if acc != nil {
			result = append(result, *acc)
		}
	}
	return result, nil
}
