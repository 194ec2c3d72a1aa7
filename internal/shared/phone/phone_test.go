package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	got, err := Normalize("+1 650-253-0000", "YE")
	require.NoError(t, err)
	assert.Equal(t, "+16502530000", got)

	got, err = Normalize("650 253 0000", "US")
	require.NoError(t, err)
	assert.Equal(t, "+16502530000", got)

	_, err = Normalize("12", "US")
	assert.ErrorIs(t, err, ErrInvalidPhone)

	_, err = Normalize("not a phone", "US")
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

func TestNormalizeOptional(t *testing.T) {
	got, err := NormalizeOptional(nil, "US")
	assert.NoError(t, err)
	assert.Nil(t, got)

	blank := "  "
	got, err = NormalizeOptional(&blank, "US")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestDefaultRegion(t *testing.T) {
	t.Setenv("DEFAULT_PHONE_REGION", "sa")
	assert.Equal(t, "SA", DefaultRegion())
}
