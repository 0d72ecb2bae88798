package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDecimal(t *testing.T) {
	assert.True(t, IsDecimal("500"))
	assert.True(t, IsDecimal("500.00"))
	assert.True(t, IsDecimal("-3.5"))
	assert.True(t, IsDecimal("0"))

	assert.False(t, IsDecimal(""))
	assert.False(t, IsDecimal("abc"))
	assert.False(t, IsDecimal("1,5"))
	assert.False(t, IsDecimal("€500"))
}

func TestIsDate(t *testing.T) {
	assert.True(t, IsDate("15-03-2026"))
	assert.True(t, IsDate("01-01-2000"))
	assert.True(t, IsDate("29-02-2024")) // leap day

	assert.False(t, IsDate(""))
	assert.False(t, IsDate("2026-03-15")) // ISO order not accepted
	assert.False(t, IsDate("15/03/2026"))
	assert.False(t, IsDate("32-01-2026"))
	assert.False(t, IsDate("29-02-2023"))
}

func TestAmount(t *testing.T) {
	got, err := Amount("500.00")
	require.NoError(t, err)
	assert.Equal(t, "500.00", got.StringFixed(2))

	_, err = Amount("five hundred")
	assert.Error(t, err)
}
