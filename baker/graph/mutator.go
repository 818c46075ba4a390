// Package graph performs the per-material shader-graph mutations a bake pass
// needs — temporary image-target nodes, input disconnection, and the
// metallic/roughness swap — and records exactly what it changed so every
// mutation can be losslessly reverted afterwards.
package graph

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-baker/host"
)

// Input socket names on the principal shading node.
const (
	InputMetallic  = "Metallic"
	InputRoughness = "Roughness"
)

// SocketState captures a shader input socket at the moment it was disconnected:
// its scalar fallback value and the upstream output sockets that were feeding
// it, in link order. It is purely an undo record.
type SocketState struct {
	// Value is the socket's scalar fallback value at capture time.
	Value float64

	// Upstream are the output sockets that fed the input at capture time.
	Upstream []host.OutputSocket
}

// MaterialChanges records everything a bake pass changed on one material, so
// the pass boundary (or a cancellation) can undo it. One record is created when
// a pass first touches a material and discarded once reverted.
type MaterialChanges struct {
	// Material is the touched material.
	Material host.Material

	// ImageNode is the temporary image-texture node owned by this pass.
	ImageNode host.Node

	// MetallicState is the captured Metallic input, when it was disconnected.
	MetallicState *SocketState

	// RoughnessState is the captured Roughness input, when it was disconnected.
	RoughnessState *SocketState
}

// AttachImageNode inserts a temporary image-texture node into the material's
// shader graph, assigns it the destination image, and marks it selected and
// active so the engine's default bake-target selection picks it up.
//
// Parameters:
//   - m: the material to mutate
//   - img: the destination image
//
// Returns:
//   - host.Node: the inserted node
func AttachImageNode(m host.Material, img host.Image) host.Node {
	tree := m.NodeTree()
	node := tree.AddNode(host.NodeKindImageTexture)
	node.SetImage(img)
	node.SetSelected(true)
	tree.SetActiveNode(node)
	return node
}

// DisconnectInput records the named input's scalar value and upstream links,
// severs those links, and sets the input to a replacement value.
//
// Parameters:
//   - tree: the node graph owning the links
//   - node: the node whose input is disconnected
//   - input: the input socket name
//   - replacement: the scalar value the input is set to while disconnected
//
// Returns:
//   - *SocketState: the undo record for the input
//   - error: error if the node has no input with that name
func DisconnectInput(tree host.NodeTree, node host.Node, input string, replacement float64) (*SocketState, error) {
	socket := node.Input(input)
	if socket == nil {
		return nil, fmt.Errorf("node %s has no input %q", node.Name(), input)
	}
	state := &SocketState{Value: socket.Value()}
	links := socket.Links()
	for _, l := range links {
		state.Upstream = append(state.Upstream, l.From())
	}
	for _, l := range links {
		tree.RemoveLink(l)
	}
	socket.SetValue(replacement)
	return state, nil
}

// ReconnectInput restores a previously captured input: the scalar value first,
// then each recorded upstream connection in recorded order.
//
// Parameters:
//   - tree: the node graph owning the links
//   - node: the node whose input is restored
//   - input: the input socket name
//   - state: the undo record captured by DisconnectInput
//
// Returns:
//   - error: error if the node has no input with that name
func ReconnectInput(tree host.NodeTree, node host.Node, input string, state *SocketState) error {
	socket := node.Input(input)
	if socket == nil {
		return fmt.Errorf("node %s has no input %q", node.Name(), input)
	}
	socket.SetValue(state.Value)
	for _, from := range state.Upstream {
		tree.Connect(from, socket)
	}
	return nil
}

// SwapMetallicRoughness disconnects both the Metallic and Roughness inputs of
// the principal shading node, capturing both states, then reconnects Metallic
// using the roughness state and Roughness using the metallic state — a true
// swap of both scalar value and wiring. The returned states are the originals,
// keyed by the socket they came from.
//
// Parameters:
//   - tree: the node graph owning the links
//   - node: the principal shading node
//
// Returns:
//   - *SocketState: the original Metallic state
//   - *SocketState: the original Roughness state
//   - error: error if either input is missing
func SwapMetallicRoughness(tree host.NodeTree, node host.Node) (*SocketState, *SocketState, error) {
	metallic, err := DisconnectInput(tree, node, InputMetallic, 0)
	if err != nil {
		return nil, nil, err
	}
	roughness, err := DisconnectInput(tree, node, InputRoughness, 0)
	if err != nil {
		// Put the metallic input back before bailing.
		_ = ReconnectInput(tree, node, InputMetallic, metallic)
		return nil, nil, err
	}
	if err := ReconnectInput(tree, node, InputMetallic, roughness); err != nil {
		return nil, nil, err
	}
	if err := ReconnectInput(tree, node, InputRoughness, metallic); err != nil {
		return nil, nil, err
	}
	return metallic, roughness, nil
}

// FindPrincipledNode locates the principal shading node in a graph. When more
// than one exists the first is returned with a warning; when none exists nil is
// returned and the caller decides how to proceed.
//
// Parameters:
//   - tree: the node graph to search
//   - rep: the reporter for the ambiguity warning
//
// Returns:
//   - host.Node: the principal shading node, or nil
func FindPrincipledNode(tree host.NodeTree, rep host.Reporter) host.Node {
	var found []host.Node
	for _, n := range tree.Nodes() {
		if n.Kind() == host.NodeKindPrincipledBSDF {
			found = append(found, n)
		}
	}
	if len(found) == 0 {
		return nil
	}
	if len(found) > 1 {
		rep.Warningf("Baked metallic pass might be wrong. Found more than one principled shading node.")
	}
	return found[0]
}

// Revert undoes everything a MaterialChanges record tracks: the temporary image
// node is removed, then each captured socket state is restored to its own
// socket (current wiring is cleared first, so reverting a metallic swap lands
// both value and links back where they started). Records with no captured
// states perform no socket mutation, making Revert idempotent for passes that
// never touched the principal node.
//
// Parameters:
//   - ch: the per-material change record to undo
func (ch *MaterialChanges) Revert() {
	tree := ch.Material.NodeTree()
	if ch.ImageNode != nil {
		tree.RemoveNode(ch.ImageNode)
		ch.ImageNode = nil
	}
	principled := PrincipledNode(tree)
	if principled == nil {
		return
	}
	if ch.MetallicState != nil {
		_, _ = DisconnectInput(tree, principled, InputMetallic, 0)
		_ = ReconnectInput(tree, principled, InputMetallic, ch.MetallicState)
		ch.MetallicState = nil
	}
	if ch.RoughnessState != nil {
		_, _ = DisconnectInput(tree, principled, InputRoughness, 0)
		_ = ReconnectInput(tree, principled, InputRoughness, ch.RoughnessState)
		ch.RoughnessState = nil
	}
}

// PrincipledNode is FindPrincipledNode without the ambiguity warning, for
// callers that must not repeat warnings already surfaced when the pass started
// (revert, metallic suppression on color passes).
//
// Parameters:
//   - tree: the node graph to search
//
// Returns:
//   - host.Node: the first principal shading node, or nil
func PrincipledNode(tree host.NodeTree) host.Node {
	for _, n := range tree.Nodes() {
		if n.Kind() == host.NodeKindPrincipledBSDF {
			return n
		}
	}
	return nil
}
