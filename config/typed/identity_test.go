package typed

import (
	"testing"

	"github.com/0xalexb/mirrorconf/config/value"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Load(t *testing.T) {
	t.Parallel()

	t.Run("name", func(t *testing.T) {
		t.Parallel()

		var u User

		require.NoError(t, u.Load(value.NewString("alice"), "User", "user"))

		name, ok := u.Name()
		require.True(t, ok)
		assert.Equal(t, "alice", name)

		_, ok = u.ID()
		assert.False(t, ok)

		text, _ := u.Describe()
		assert.Equal(t, `"alice"`, text)
	})

	t.Run("id", func(t *testing.T) {
		t.Parallel()

		var u User

		require.NoError(t, u.Load(value.NewUint(1000), "User", "user"))

		id, ok := u.ID()
		require.True(t, ok)
		assert.Equal(t, uint32(1000), id)

		_, ok = u.Name()
		assert.False(t, ok)

		text, _ := u.Describe()
		assert.Equal(t, "1000", text)
	})

	t.Run("bool is rejected", func(t *testing.T) {
		t.Parallel()

		var u User

		err := u.Load(value.NewBool(true), "User", "user")
		require.ErrorIs(t, err, ErrTypeMismatch)
		assert.Contains(t, err.Error(), "not a username or id")
	})

	t.Run("negative id is rejected", func(t *testing.T) {
		t.Parallel()

		var u User

		require.ErrorIs(t, u.Load(value.NewInt(-1), "User", "user"), ErrValueRange)
	})
}

func TestGroup_Load(t *testing.T) {
	t.Parallel()

	var g Group

	require.NoError(t, g.Load(value.NewString("mirror"), "Group", "group"))
	assert.Equal(t, IdentityName("mirror"), g.Identity)

	require.NoError(t, g.Load(value.NewUint(1000), "Group", "group"))
	assert.Equal(t, IdentityID(1000), g.Identity)

	err := g.Load(value.NewArray(), "Group", "group")
	require.ErrorIs(t, err, ErrTypeMismatch)
	assert.Contains(t, err.Error(), "not a groupname or id")
}

func TestIdentity_NumericIDsResolveWithoutLookup(t *testing.T) {
	t.Parallel()

	uid, err := User{Identity: IdentityID(1000)}.UID()
	require.NoError(t, err)
	assert.Equal(t, uint32(1000), uid)

	gid, err := Group{Identity: IdentityID(0)}.GID()
	require.NoError(t, err)
	assert.Equal(t, uint32(0), gid)
}

func TestIdentity_UnknownNameFailsLookup(t *testing.T) {
	t.Parallel()

	_, err := User{Identity: IdentityName("no-such-user-mirrorconf")}.UID()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "looking up user")
}
