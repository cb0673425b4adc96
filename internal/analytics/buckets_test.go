package analytics

import (
	"testing"
	"time"

	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestBucketByDate_Empty(t *testing.T) {
	assert.Empty(t, BucketByDate(nil))
	assert.Empty(t, BucketByDate([]time.Time{}))
}

func TestBucketByDate_SingleEntry(t *testing.T) {
	buckets := BucketByDate([]time.Time{ts(t, "2025-01-15T10:00:00Z")})
	assert.Equal(t, []domain.TimeBucket{{Date: "01/15/2025", Count: 1}}, buckets)
}

func TestBucketByDate_CountsPerDay(t *testing.T) {
	buckets := BucketByDate([]time.Time{
		ts(t, "2025-01-15T10:00:00Z"),
		ts(t, "2025-01-15T18:30:00Z"),
		ts(t, "2025-01-16T09:00:00Z"),
	})
	assert.Equal(t, []domain.TimeBucket{
		{Date: "01/15/2025", Count: 2},
		{Date: "01/16/2025", Count: 1},
	}, buckets)
}

func TestBucketByDate_SortsByDateNotLabel(t *testing.T) {
	// input in reverse chronological order, across a year boundary where a
	// label sort would misorder ("02/..." < "12/...")
	buckets := BucketByDate([]time.Time{
		ts(t, "2025-01-02T08:00:00Z"),
		ts(t, "2024-12-31T08:00:00Z"),
	})
	require.Len(t, buckets, 2)
	assert.Equal(t, "12/31/2024", buckets[0].Date)
	assert.Equal(t, "01/02/2025", buckets[1].Date)
}

func TestBucketByDate_YearBoundaryLabelOrder(t *testing.T) {
	buckets := BucketByDate([]time.Time{
		ts(t, "2025-02-01T00:00:00Z"),
		ts(t, "2024-12-01T00:00:00Z"),
	})
	require.Len(t, buckets, 2)
	assert.Equal(t, "12/01/2024", buckets[0].Date)
	assert.Equal(t, "02/01/2025", buckets[1].Date)
}
