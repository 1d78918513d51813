package router

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyrodovalexey/avroutemap/internal/util"
)

func TestRelativeKeySelf(t *testing.T) {
	tests := []struct {
		name     string
		segment  string
		expected string
	}{
		{"named node", "users", "users_"},
		{"empty root segment", "", "_"},
		{"param segment", ":id", ":id_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewTree(tt.segment)

			key, err := RelativeKey(n, n)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, key)
			assert.True(t, strings.HasSuffix(key, "_"))
		})
	}
}

func TestRelativeKeyChain(t *testing.T) {
	root := NewTree("")
	a := root.Child("users")
	b := a.Child(":id")

	key, err := RelativeKey(root, b)

	require.NoError(t, err)
	assert.Equal(t, "users_:id_", key)
}

func TestRelativeKeyDirectChild(t *testing.T) {
	root := NewTree("")
	users := root.Child("users")

	key, err := RelativeKey(root, users)

	require.NoError(t, err)
	assert.Equal(t, "users_", key)
}

func TestRelativeKeyExcludesAncestorSegment(t *testing.T) {
	root := NewTree("api")
	users := root.Child("users")

	key, err := RelativeKey(root, users)

	require.NoError(t, err)
	assert.Equal(t, "users_", key)
}

func TestRelativeKeyFromIntermediateAncestor(t *testing.T) {
	root := NewTree("")
	api := root.Child("api")
	users := api.Child("users")
	id := users.Child(":id")

	key, err := RelativeKey(api, id)

	require.NoError(t, err)
	assert.Equal(t, "users_:id_", key)
}

func TestRelativeKeyNotAnAncestor(t *testing.T) {
	root := NewTree("")
	users := root.Child("users")
	admin := root.Child("admin")

	_, err := RelativeKey(users, admin)

	require.Error(t, err)
	assert.ErrorIs(t, err, util.ErrNotAncestor)
}

func TestRelativeKeyUnrelatedTrees(t *testing.T) {
	top := NewTree("")
	other := NewTree("other")
	detached := other.Child("leaf")

	_, err := RelativeKey(top, detached)

	assert.ErrorIs(t, err, util.ErrNotAncestor)
}

func TestRelativeKeyNilNodes(t *testing.T) {
	n := NewTree("a")

	_, err := RelativeKey(nil, n)
	assert.ErrorIs(t, err, util.ErrInvalidTree)

	_, err = RelativeKey(n, nil)
	assert.ErrorIs(t, err, util.ErrInvalidTree)
}

func TestRelativeKeyParentChainCycle(t *testing.T) {
	top := NewTree("")
	a := NewTree("a")
	b := NewTree("b")

	// Corrupt the parent chain into a loop that never reaches top.
	a.parent = b
	b.parent = a

	_, err := RelativeKey(top, a)

	assert.ErrorIs(t, err, util.ErrInvalidTree)
}
