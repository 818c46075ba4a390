package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-baker/baker/graph"
	"github.com/Carmen-Shannon/oxy-baker/host"
	"github.com/Carmen-Shannon/oxy-baker/host/memhost"
)

// principledTree builds a graph with one principled node whose Metallic input
// is 0.2 (unconnected) and whose Roughness input is 0.6, fed by a value node.
func principledTree(t *testing.T) (host.NodeTree, host.Node, host.Node) {
	t.Helper()
	m := memhost.NewMaterial("Mat")
	tree := m.NodeTree()
	principled := tree.AddNode(host.NodeKindPrincipledBSDF)
	principled.Input(graph.InputMetallic).SetValue(0.2)
	principled.Input(graph.InputRoughness).SetValue(0.6)
	value := tree.AddNode(host.NodeKindValue)
	tree.Connect(value.Output("Value"), principled.Input(graph.InputRoughness))
	return tree, principled, value
}

func TestAttachImageNode(t *testing.T) {
	h := memhost.New()
	img := h.Images().New("Crate-diffuse", 64, 64, false)
	m := memhost.NewMaterial("Mat")

	node := graph.AttachImageNode(m, img)

	require.NotNil(t, node)
	assert.Equal(t, host.NodeKindImageTexture, node.Kind())
	assert.True(t, node.Selected())
	assert.Same(t, img, node.Image())
	assert.Same(t, node, m.NodeTree().ActiveNode())
}

func TestDisconnectInput(t *testing.T) {
	tree, principled, value := principledTree(t)

	state, err := graph.DisconnectInput(tree, principled, graph.InputRoughness, 0)
	require.NoError(t, err)

	assert.Equal(t, 0.6, state.Value)
	require.Len(t, state.Upstream, 1)
	assert.Same(t, value, state.Upstream[0].Node())

	socket := principled.Input(graph.InputRoughness)
	assert.Empty(t, socket.Links())
	assert.Equal(t, 0.0, socket.Value())
}

func TestDisconnectInputUnknownSocket(t *testing.T) {
	tree, principled, _ := principledTree(t)

	_, err := graph.DisconnectInput(tree, principled, "Sheen Weight", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Sheen Weight")
}

func TestReconnectInputRestoresValueAndLinks(t *testing.T) {
	tree, principled, value := principledTree(t)

	state, err := graph.DisconnectInput(tree, principled, graph.InputRoughness, 0)
	require.NoError(t, err)
	require.NoError(t, graph.ReconnectInput(tree, principled, graph.InputRoughness, state))

	socket := principled.Input(graph.InputRoughness)
	assert.Equal(t, 0.6, socket.Value())
	links := socket.Links()
	require.Len(t, links, 1)
	assert.Same(t, value, links[0].From().Node())
}

func TestSwapMetallicRoughness(t *testing.T) {
	tree, principled, value := principledTree(t)

	metallic, roughness, err := graph.SwapMetallicRoughness(tree, principled)
	require.NoError(t, err)

	// The original states name the socket they came from.
	assert.Equal(t, 0.2, metallic.Value)
	assert.Empty(t, metallic.Upstream)
	assert.Equal(t, 0.6, roughness.Value)
	require.Len(t, roughness.Upstream, 1)

	// Value and wiring both moved: Metallic now carries roughness's scalar and
	// its upstream value node, Roughness carries metallic's bare scalar.
	metallicIn := principled.Input(graph.InputMetallic)
	assert.Equal(t, 0.6, metallicIn.Value())
	links := metallicIn.Links()
	require.Len(t, links, 1)
	assert.Same(t, value, links[0].From().Node())

	roughnessIn := principled.Input(graph.InputRoughness)
	assert.Equal(t, 0.2, roughnessIn.Value())
	assert.Empty(t, roughnessIn.Links())
}

func TestSwapMetallicRoughnessMissingInput(t *testing.T) {
	m := memhost.NewMaterial("Mat")
	tree := m.NodeTree()
	node := tree.AddNode(host.NodeKindValue)

	_, _, err := graph.SwapMetallicRoughness(tree, node)
	require.Error(t, err)
}

func TestRevertUndoesSwapAndImageNode(t *testing.T) {
	h := memhost.New()
	img := h.Images().New("Crate-metallic", 64, 64, false)
	m := memhost.NewMaterial("Mat")
	tree := m.NodeTree()
	principled := tree.AddNode(host.NodeKindPrincipledBSDF)
	principled.Input(graph.InputMetallic).SetValue(0.2)
	principled.Input(graph.InputRoughness).SetValue(0.6)
	value := tree.AddNode(host.NodeKindValue)
	tree.Connect(value.Output("Value"), principled.Input(graph.InputRoughness))

	ch := &graph.MaterialChanges{Material: m}
	ch.ImageNode = graph.AttachImageNode(m, img)
	var err error
	ch.MetallicState, ch.RoughnessState, err = graph.SwapMetallicRoughness(tree, principled)
	require.NoError(t, err)

	ch.Revert()

	assert.Len(t, tree.Nodes(), 2)
	assert.Nil(t, tree.ActiveNode())

	metallicIn := principled.Input(graph.InputMetallic)
	assert.Equal(t, 0.2, metallicIn.Value())
	assert.Empty(t, metallicIn.Links())

	roughnessIn := principled.Input(graph.InputRoughness)
	assert.Equal(t, 0.6, roughnessIn.Value())
	links := roughnessIn.Links()
	require.Len(t, links, 1)
	assert.Same(t, value, links[0].From().Node())

	// A second revert is a no-op: the record cleared its captured states.
	ch.Revert()
	assert.Len(t, tree.Nodes(), 2)
	assert.Len(t, roughnessIn.Links(), 1)
}

func TestRevertWithOnlyImageNode(t *testing.T) {
	h := memhost.New()
	img := h.Images().New("Crate-normal", 64, 64, false)
	m := memhost.NewMaterial("Mat")
	tree := m.NodeTree()
	tree.AddNode(host.NodeKindPrincipledBSDF)

	ch := &graph.MaterialChanges{Material: m, ImageNode: graph.AttachImageNode(m, img)}
	ch.Revert()

	assert.Len(t, tree.Nodes(), 1)
	assert.Nil(t, tree.ActiveNode())
}

func TestFindPrincipledNode(t *testing.T) {
	h := memhost.New()
	m := memhost.NewMaterial("Mat")
	tree := m.NodeTree()

	assert.Nil(t, graph.FindPrincipledNode(tree, h.Reporter()))
	assert.Empty(t, h.Warnings())

	first := tree.AddNode(host.NodeKindPrincipledBSDF)
	assert.Same(t, first, graph.FindPrincipledNode(tree, h.Reporter()))
	assert.Empty(t, h.Warnings())

	tree.AddNode(host.NodeKindPrincipledBSDF)
	assert.Same(t, first, graph.FindPrincipledNode(tree, h.Reporter()))
	require.Len(t, h.Warnings(), 1)
	assert.Contains(t, h.Warnings()[0], "more than one principled")
}
