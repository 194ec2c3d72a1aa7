package dateutil

import (
	"testing"
	"time"

	"go-sitebooks/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestParseRange(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r, err := ParseRange("2024-01-30", "2024-02-02")
		assert.NoError(t, err)
		days := r.Days()
		assert.Len(t, days, 4)
		assert.Equal(t, "2024-02-01", Format(days[2]))
		assert.True(t, r.Contains(days[3]))
		assert.False(t, r.Contains(days[3].AddDate(0, 0, 1)))
	})

	t.Run("reversed", func(t *testing.T) {
		_, err := ParseRange("2024-02-02", "2024-01-30")
		assert.ErrorIs(t, err, apperror.ErrInvalidDateRange)
	})

	t.Run("too long", func(t *testing.T) {
		_, err := ParseRange("2023-01-01", "2024-01-02")
		assert.ErrorIs(t, err, ErrRangeTooLong)
	})

	t.Run("leap year fits", func(t *testing.T) {
		_, err := ParseRange("2024-01-01", "2024-12-31")
		assert.NoError(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := ParseRange("", "2024-01-01")
		assert.Error(t, err)
		assert.Equal(t, "from is required", apperror.ToHTTP(err).Message)
	})
}

func TestParseOptional(t *testing.T) {
	v, err := ParseOptional("date", "")
	assert.NoError(t, err)
	assert.Nil(t, v)

	v, err = ParseOptional("date", "2024-05-06")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), *v)

	_, err = ParseOptional("date", "06/05/2024")
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	in := time.Date(2024, 5, 6, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), Truncate(in))
}
