package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyrodovalexey/avroutemap/internal/util"
)

func TestFlattenSingleNode(t *testing.T) {
	root := NewTree("")

	nodes, err := Flatten(root)

	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Same(t, root, nodes[0])
}

func TestFlattenCollectsEveryNodeOnce(t *testing.T) {
	root := NewTree("")
	api := root.Child("api")
	users := api.Child("users")
	id := users.Child(":id")
	admin := root.Child("admin")

	nodes, err := Flatten(root)

	require.NoError(t, err)
	require.Len(t, nodes, 5)

	seen := make(map[*Node]int)
	for _, n := range nodes {
		seen[n]++
	}
	for _, n := range []*Node{root, api, users, id, admin} {
		assert.Equal(t, 1, seen[n])
	}
}

func TestFlattenDepthFirstOrder(t *testing.T) {
	root := NewTree("")
	a := root.Child("a")
	aa := a.Child("aa")
	b := root.Child("b")

	nodes, err := Flatten(root)

	require.NoError(t, err)
	assert.Equal(t, []*Node{root, a, aa, b}, nodes)
}

func TestFlattenSubtree(t *testing.T) {
	root := NewTree("")
	api := root.Child("api")
	api.Child("users")

	nodes, err := Flatten(api)

	require.NoError(t, err)
	assert.Len(t, nodes, 2)
}

func TestFlattenNilRoot(t *testing.T) {
	_, err := Flatten(nil)

	assert.ErrorIs(t, err, util.ErrInvalidTree)
}

func TestFlattenDetectsCycle(t *testing.T) {
	root := NewTree("")
	child := root.Child("loop")

	// Corrupt the tree: the child lists the root among its children.
	child.children = append(child.children, root)

	_, err := Flatten(root)

	require.Error(t, err)
	assert.ErrorIs(t, err, util.ErrInvalidTree)
}
