package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stakepool/internal/staking/models"
	dErrors "stakepool/pkg/domain-errors"
)

func TestGrantAdmin(t *testing.T) {
	r := New("owner")

	t.Run("non-owner cannot grant", func(t *testing.T) {
		_, err := r.GrantAdmin("stranger", "a")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("owner grants up to the bound", func(t *testing.T) {
		count, err := r.GrantAdmin("owner", "a")
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		count, err = r.GrantAdmin("owner", "b")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("duplicate grant is rejected before the capacity check", func(t *testing.T) {
		_, err := r.GrantAdmin("owner", "a")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeAlreadyExists))
	})

	t.Run("third distinct admin exceeds capacity", func(t *testing.T) {
		_, err := r.GrantAdmin("owner", "c")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeCapacityExceeded))
		assert.Equal(t, 2, r.AdminCount())
	})
}

func TestRevokeAdmin(t *testing.T) {
	r := New("owner")
	_, err := r.GrantAdmin("owner", "a")
	require.NoError(t, err)

	t.Run("non-owner cannot revoke", func(t *testing.T) {
		_, err := r.RevokeAdmin("a", "a")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("unknown admin", func(t *testing.T) {
		_, err := r.RevokeAdmin("owner", "b")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	t.Run("revocation drops the privilege", func(t *testing.T) {
		count, err := r.RevokeAdmin("owner", "a")
		require.NoError(t, err)
		assert.Equal(t, 0, count)
		assert.False(t, r.IsPrivileged("a"))
	})
}

func TestTransferOwner(t *testing.T) {
	r := New("owner")

	require.NoError(t, r.TransferOwner("owner", "next"))
	assert.Equal(t, models.Address("next"), r.Owner())

	// The previous owner's capability is gone; a stale holder cannot
	// transfer again.
	err := r.TransferOwner("owner", "somewhere")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))

	require.NoError(t, r.TransferOwner("next", "owner"))
	assert.True(t, r.IsOwner("owner"))
}

func TestIsPrivileged(t *testing.T) {
	r := New("owner")
	_, err := r.GrantAdmin("owner", "a")
	require.NoError(t, err)

	assert.True(t, r.IsPrivileged("owner"))
	assert.True(t, r.IsPrivileged("a"))
	assert.False(t, r.IsPrivileged("b"))
	assert.False(t, r.IsOwner("a"), "admins do not hold the owner capability")
}

func TestAdminsStableOrder(t *testing.T) {
	r := New("owner")
	_, err := r.GrantAdmin("owner", "zeta")
	require.NoError(t, err)
	_, err = r.GrantAdmin("owner", "alpha")
	require.NoError(t, err)

	assert.Equal(t, []models.Address{"alpha", "zeta"}, r.Admins())
}
