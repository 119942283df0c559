package typed

import (
	"testing"

	"github.com/0xalexb/mirrorconf/config/value"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOption_ZeroIsAbsent(t *testing.T) {
	t.Parallel()

	var opt Option[Int32]

	_, ok := opt.Get()
	assert.False(t, ok)
	assert.False(t, opt.IsPresent())
	assert.Equal(t, Int32(7), opt.GetOr(7))

	text, ok := opt.Describe()
	require.True(t, ok)
	assert.Equal(t, "None", text)
}

func TestOption_Load(t *testing.T) {
	t.Parallel()

	var opt Option[Int32]

	require.NoError(t, opt.Load(value.NewInt(30), "Option[Int32]", "max_log_days"))

	v, ok := opt.Get()
	require.True(t, ok)
	assert.Equal(t, Int32(30), v)

	text, _ := opt.Describe()
	assert.Equal(t, "30", text)
}

func TestOption_LoadPropagatesInnerFailure(t *testing.T) {
	t.Parallel()

	opt := Some(Int32(5))

	err := opt.Load(value.NewNull(), "Option[Int32]", "max_log_days")
	require.ErrorIs(t, err, ErrTypeMismatch)
	assert.Equal(t, `config "max_log_days" of type Option[Int32]: not a number`, err.Error())

	v, ok := opt.Get()
	require.True(t, ok, "failed load leaves the previous value")
	assert.Equal(t, Int32(5), v)
}

func TestOption_NotLoadable(t *testing.T) {
	t.Parallel()

	var opt Option[int]

	err := opt.Load(value.NewInt(1), "Option[int]", "k")
	require.ErrorIs(t, err, ErrNotLoadable)
	assert.False(t, opt.IsPresent())
}

func TestOption_ImplementsOptional(t *testing.T) {
	t.Parallel()

	var loadable Value = new(Option[String])

	_, ok := loadable.(Optional)
	assert.True(t, ok)

	_, ok = any(new(String)).(Optional)
	assert.False(t, ok)
}

func TestList_Load(t *testing.T) {
	t.Parallel()

	var distros List[String]

	node := value.NewArray(value.NewString("debian"), value.NewString("archlinux"))
	require.NoError(t, distros.Load(node, "List[String]", "distros"))
	assert.Equal(t, List[String]{"debian", "archlinux"}, distros)

	text, ok := distros.Describe()
	require.True(t, ok)
	assert.Equal(t, `["debian", "archlinux"]`, text)
}

func TestList_Errors(t *testing.T) {
	t.Parallel()

	var ports List[Uint16]

	err := ports.Load(value.NewArray(value.NewInt(80), value.NewString("x")), "List[Uint16]", "ports")
	require.ErrorIs(t, err, ErrTypeMismatch)

	var loadErr *LoadError

	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "ports/1", loadErr.Key)
	assert.Empty(t, ports, "failed load leaves the list untouched")

	require.ErrorIs(t, ports.Load(value.NewInt(80), "List[Uint16]", "ports"), ErrTypeMismatch)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	require.NoError(t, new(Option[Int32]).Check(nil))
	require.NoError(t, new(List[Option[String]]).Check(nil))
	require.ErrorIs(t, new(Option[int]).Check(nil), ErrNotLoadable)
	require.ErrorIs(t, new(List[Option[[]string]]).Check(nil), ErrNotLoadable)
}
