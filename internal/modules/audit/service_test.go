package audit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClampLimit(t *testing.T) {
	require.Equal(t, 100, clampLimit(0, 100))
	require.Equal(t, 100, clampLimit(-5, 100))
	require.Equal(t, 100, clampLimit(101, 100))
	require.Equal(t, 100, clampLimit(100, 100))
	require.Equal(t, 1, clampLimit(1, 100))
	require.Equal(t, 42, clampLimit(42, 100))
}
