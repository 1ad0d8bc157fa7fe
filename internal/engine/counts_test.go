package engine

import (
	"testing"
	"time"

	"bikeroom-analytics/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueCountsCategorical(t *testing.T) {
	counts, err := ValueCounts(fixtureDataset(), model.FieldCategory)
	require.NoError(t, err)
	require.Len(t, counts, 3)

	// Lexicographic value order.
	assert.Equal(t, "City", counts[0].Value)
	assert.Equal(t, 1, counts[0].Count)
	assert.Equal(t, "Mountain", counts[1].Value)
	assert.Equal(t, 2, counts[1].Count)
	assert.Equal(t, "Road", counts[2].Value)
	assert.Equal(t, 2, counts[2].Count)
}

func TestValueCountsNumericSort(t *testing.T) {
	// Numeric fields sort by value, not by string: 900 must come before
	// 2500 even though "9" > "2" lexicographically.
	day := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	ds := model.Dataset{
		testRecord("m", "c", "r", 2500, 1, day),
		testRecord("m", "c", "r", 900, 1, day),
		testRecord("m", "c", "r", 900, 1, day),
	}

	counts, err := ValueCounts(ds, model.FieldPriceUSD)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "900", counts[0].Value)
	assert.Equal(t, 2, counts[0].Count)
	assert.Equal(t, "2500", counts[1].Value)
	assert.Equal(t, 1, counts[1].Count)
}

func TestValueCountsEmptyDataset(t *testing.T) {
	counts, err := ValueCounts(model.Dataset{}, model.FieldRegion)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestValueCountsUnknownField(t *testing.T) {
	_, err := ValueCounts(fixtureDataset(), "frame_size")
	require.ErrorIs(t, err, ErrInvalidPredicate)
}
