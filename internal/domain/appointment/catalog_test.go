package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pos-booking/internal/httperr"
	"github.com/BruksfildServices01/pos-booking/internal/models"
)

type mapCatalog map[uint]models.Service

func (m mapCatalog) GetService(_ context.Context, _ uint, id uint) (*models.Service, error) {
	if id == 99 {
		return nil, errors.New("catalog down")
	}
	svc, ok := m[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &svc, nil
}

func TestResolveServices(t *testing.T) {
	catalog := mapCatalog{
		1: {ID: 1, DurationMin: 30, Price: decimal.NewFromInt(40)},
		2: {ID: 2, DurationMin: 15, Price: decimal.NewFromInt(25)},
	}

	lines, err := ResolveServices(context.Background(), catalog, 1, []uint{2, 7, 1}, DefaultFallbackDurationMin)
	require.NoError(t, err)

	require.Len(t, lines, 3)
	assert.Equal(t, uint(2), lines[0].ServiceID)
	assert.Equal(t, 30, lines[1].DurationMin, "unknown service uses fallback")
	assert.True(t, lines[1].Price.IsZero())
	assert.Equal(t, 75, TotalDuration(lines))
}

func TestResolveServices_Errors(t *testing.T) {
	_, err := ResolveServices(context.Background(), mapCatalog{}, 1, nil, 30)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInput))

	_, err = ResolveServices(context.Background(), mapCatalog{}, 1, []uint{0}, 30)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInput))

	_, err = ResolveServices(context.Background(), mapCatalog{}, 1, []uint{99}, 30)
	assert.EqualError(t, err, "catalog down")
}
