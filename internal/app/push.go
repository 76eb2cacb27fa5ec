package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/quotesync/internal/domain"
	"github.com/jsamuelsen/quotesync/internal/ports"
)

// PushAll sends every quote to the remote independently with at most limit
// pushes in flight. Failures are recorded per quote and never cancel the
// others. Outcomes keep the order of quotes.
func PushAll(ctx context.Context, remote ports.QuoteRemote, quotes domain.QuoteSet, limit int) domain.BatchResult {
	outcomes := make([]domain.PushOutcome, len(quotes))

	if limit < 1 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)

	for i, q := range quotes {
		g.Go(func() error {
			outcomes[i] = domain.PushOutcome{Quote: q}

			if err := remote.PushRemote(ctx, q); err != nil {
				outcomes[i].Error = err.Error()
			}

			return nil
		})
	}

	_ = g.Wait()

	return domain.BatchResult{Outcomes: outcomes}
}
