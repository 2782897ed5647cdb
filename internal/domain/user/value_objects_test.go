//go:build unit

package user_test

import (
	"testing"

	"gearshare/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("valid addresses", func(t *testing.T) {
		for _, s := range []string{
			"ann@example.com",
			"ann.bell+rentals@example.co.uk",
			"  padded@example.com  ",
		} {
			email, err := user.NewEmail(s)
			require.NoError(t, err, s)
			assert.NotEmpty(t, email.Value())
		}
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		email, err := user.NewEmail("  ann@example.com ")
		require.NoError(t, err)
		assert.Equal(t, "ann@example.com", email.Value())
	})

	t.Run("invalid addresses", func(t *testing.T) {
		for _, s := range []string{"", "not-an-email", "@example.com", "ann@", "ann@localhost"} {
			_, err := user.NewEmail(s)
			assert.ErrorIs(t, err, user.ErrInvalidEmail, s)
		}
	})
}

func TestNewPassword(t *testing.T) {
	t.Run("eight characters is the floor", func(t *testing.T) {
		_, err := user.NewPassword("12345678")
		assert.NoError(t, err)

		_, err = user.NewPassword("1234567")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestNewName(t *testing.T) {
	t.Run("valid name", func(t *testing.T) {
		name, err := user.NewName(" Ann ", " Bell ")
		require.NoError(t, err)
		assert.Equal(t, "Ann", name.First())
		assert.Equal(t, "Bell", name.Last())
	})

	t.Run("blank parts are rejected", func(t *testing.T) {
		_, err := user.NewName("", "Bell")
		assert.ErrorIs(t, err, user.ErrEmptyName)

		_, err = user.NewName("Ann", "   ")
		assert.ErrorIs(t, err, user.ErrEmptyName)
	})
}

func TestNamePublicLabel(t *testing.T) {
	name, err := user.NewName("Ann", "Bell")
	require.NoError(t, err)
	assert.Equal(t, "Ann B.", name.PublicLabel())
}

func TestNewAccountType(t *testing.T) {
	t.Run("recognized types", func(t *testing.T) {
		for _, s := range []string{"renter", "owner", "both"} {
			at, err := user.NewAccountType(s)
			require.NoError(t, err)
			assert.Equal(t, s, at.String())
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := user.NewAccountType("admin")
		assert.ErrorIs(t, err, user.ErrInvalidAccountType)
	})

	t.Run("listing permission", func(t *testing.T) {
		assert.False(t, user.AccountRenter.CanListGear())
		assert.True(t, user.AccountOwner.CanListGear())
		assert.True(t, user.AccountBoth.CanListGear())
	})
}
