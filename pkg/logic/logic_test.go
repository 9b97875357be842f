package logic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtMostOne(t *testing.T) {
	require.True(t, AtMostOne())
	require.True(t, AtMostOne(false, false))
	require.True(t, AtMostOne(false, true, false))
	require.False(t, AtMostOne(true, false, true))
}

func TestExactlyOne(t *testing.T) {
	require.False(t, ExactlyOne())
	require.False(t, ExactlyOne(false, false))
	require.True(t, ExactlyOne(false, true, false))
	require.False(t, ExactlyOne(true, true))
}
