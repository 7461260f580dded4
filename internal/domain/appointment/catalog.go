package appointment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/pos-booking/internal/httperr"
)

// DefaultFallbackDurationMin applies to services the catalog has no data for.
const DefaultFallbackDurationMin = 30

// ResolveServices looks every id up in the catalog, keeping the request order.
// Unknown services count with fallbackMin minutes and a zero price.
func ResolveServices(
	ctx context.Context,
	catalog ServiceCatalog,
	businessID uint,
	serviceIDs []uint,
	fallbackMin int,
) ([]ServiceLine, error) {
	if len(serviceIDs) == 0 {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidInput, "at least one service is required")
	}

	lines := make([]ServiceLine, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		if id == 0 {
			return nil, httperr.ErrBusinessf(httperr.CodeInvalidInput, "service id must be positive")
		}

		svc, err := catalog.GetService(ctx, businessID, id)
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			lines = append(lines, ServiceLine{ServiceID: id, DurationMin: fallbackMin, Price: decimal.Zero})
			continue
		}
		if err != nil {
			return nil, err
		}

		d := svc.DurationMin
		if d < 0 {
			d = 0
		}
		lines = append(lines, ServiceLine{ServiceID: id, DurationMin: d, Price: svc.Price})
	}
	return lines, nil
}

func TotalDuration(lines []ServiceLine) int {
	total := 0
	for _, l := range lines {
		total += l.DurationMin
	}
	return total
}
