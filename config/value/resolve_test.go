package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *Node {
	return NewObject(map[string]*Node{
		"a": NewObject(map[string]*Node{
			"b": NewObject(map[string]*Node{
				"d": NewString("deep"),
			}),
			"leaf": NewInt(7),
		}),
		"list": NewArray(NewInt(1)),
	})
}

func TestResolve_EmptyKeyReturnsRoot(t *testing.T) {
	t.Parallel()

	roots := []*Node{testDocument(), NewString("scalar"), NewNull(), NewArray()}

	for _, root := range roots {
		node, err := Resolve(root, "")
		require.NoError(t, err)
		assert.Same(t, root, node)
	}
}

func TestResolve_Found(t *testing.T) {
	t.Parallel()

	node, err := Resolve(testDocument(), "a/b/d")
	require.NoError(t, err)

	v, ok := node.Str()
	require.True(t, ok)
	assert.Equal(t, "deep", v)
}

func TestResolve_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		root       *Node
		key        string
		wantErr    error
		wantPrefix string
		wantText   string
	}{
		{
			name:       "missing leaf names full prefix",
			root:       testDocument(),
			key:        "a/b/c",
			wantErr:    ErrNotFound,
			wantPrefix: "a/b/c",
			wantText:   "a/b/c not found",
		},
		{
			name:       "missing intermediate stops at divergence",
			root:       testDocument(),
			key:        "a/x/y/z",
			wantErr:    ErrNotFound,
			wantPrefix: "a/x",
			wantText:   "a/x not found",
		},
		{
			name:       "walk through scalar",
			root:       testDocument(),
			key:        "a/leaf/more",
			wantErr:    ErrNotAnObject,
			wantPrefix: "a/leaf",
			wantText:   "a/leaf is not an object",
		},
		{
			name:       "walk through array",
			root:       testDocument(),
			key:        "list/0",
			wantErr:    ErrNotAnObject,
			wantPrefix: "list",
			wantText:   "list is not an object",
		},
		{
			name:       "scalar root",
			root:       NewInt(1),
			key:        "a",
			wantErr:    ErrNotAnObject,
			wantPrefix: "",
			wantText:   "document root is not an object",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			node, err := Resolve(testCase.root, testCase.key)
			require.Error(t, err)
			assert.Nil(t, node)
			require.ErrorIs(t, err, testCase.wantErr)

			var pathErr *PathError

			require.ErrorAs(t, err, &pathErr)
			assert.Equal(t, testCase.wantPrefix, pathErr.Prefix)
			assert.Equal(t, testCase.wantText, err.Error())
		})
	}
}

func TestJoinKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "log/log_path", JoinKey("log", "log_path"))
	assert.Equal(t, "user", JoinKey("", "user"))
	assert.Equal(t, "log", JoinKey("log", ""))
	assert.Empty(t, JoinKey("", ""))
}
