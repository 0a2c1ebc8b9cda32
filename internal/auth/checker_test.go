package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdminChecker(t *testing.T) {
	t.Run("NilListIsRejected", func(t *testing.T) {
		checker, err := NewAdminChecker(nil)
		assert.Error(t, err)
		assert.Nil(t, checker)
	})

	t.Run("EmptyListIsAllowed", func(t *testing.T) {
		checker, err := NewAdminChecker([]int64{})
		require.NoError(t, err)
		assert.False(t, checker.IsAdmin(123))
		assert.Empty(t, checker.Admins())
	})

	t.Run("DuplicatesAreCollapsed", func(t *testing.T) {
		checker, err := NewAdminChecker([]int64{7, 7, 9, 7})
		require.NoError(t, err)
		assert.Equal(t, []int64{7, 9}, checker.Admins())
	})
}

func TestIsAdmin(t *testing.T) {
	checker, err := NewAdminChecker([]int64{100, 200})
	require.NoError(t, err)

	assert.True(t, checker.IsAdmin(100))
	assert.True(t, checker.IsAdmin(200))
	assert.False(t, checker.IsAdmin(300))
	assert.False(t, checker.IsAdmin(0))
}

func TestAdminsPreservesOrderAndIsolation(t *testing.T) {
	checker, err := NewAdminChecker([]int64{3, 1, 2})
	require.NoError(t, err)

	admins := checker.Admins()
	assert.Equal(t, []int64{3, 1, 2}, admins)

	// Mutating the returned slice must not affect the checker.
	admins[0] = 999
	assert.Equal(t, []int64{3, 1, 2}, checker.Admins())
	assert.False(t, checker.IsAdmin(999))
}
