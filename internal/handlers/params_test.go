package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pos-booking/internal/httperr"
)

func TestIDList(t *testing.T) {
	ids, err := idList(" 3, 1,3 ")
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 1, 3}, ids)

	ids, err = idList("")
	require.NoError(t, err)
	assert.Empty(t, ids)

	for _, raw := range []string{"1,,2", "a", "0", "-4"} {
		_, err := idList(raw)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInput), raw)
	}
}
