package memhost

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-baker/host"
)

// Material is the in-memory material.
type Material struct {
	name string
	tree *NodeTree
}

var _ host.Material = &Material{}

// NewMaterial creates a material with an empty shader node graph.
//
// Parameters:
//   - name: the material name
//
// Returns:
//   - *Material: the newly created material
func NewMaterial(name string) *Material {
	return &Material{name: name, tree: &NodeTree{}}
}

// NewMaterialWithoutNodes creates a material that has no shader node graph,
// as the host produces for legacy fixed-pipeline materials.
//
// Parameters:
//   - name: the material name
//
// Returns:
//   - *Material: the newly created material
func NewMaterialWithoutNodes(name string) *Material {
	return &Material{name: name}
}

func (m *Material) Name() string {
	return m.name
}

func (m *Material) NodeTree() host.NodeTree {
	if m.tree == nil {
		return nil
	}
	return m.tree
}

// NodeTree is the in-memory shader node graph.
type NodeTree struct {
	nodes  []*Node
	links  []*link
	active *Node
	seq    int
}

var _ host.NodeTree = &NodeTree{}

func (t *NodeTree) Nodes() []host.Node {
	nodes := make([]host.Node, 0, len(t.nodes))
	for _, n := range t.nodes {
		nodes = append(nodes, n)
	}
	return nodes
}

func (t *NodeTree) AddNode(kind host.NodeKind) host.Node {
	t.seq++
	n := &Node{
		name: fmt.Sprintf("%s.%03d", kind, t.seq),
		kind: kind,
		tree: t,
	}
	switch kind {
	case host.NodeKindPrincipledBSDF:
		n.addInput("Base Color", 0.8)
		n.addInput("Metallic", 0)
		n.addInput("Roughness", 0.5)
		n.addInput("Alpha", 1)
		n.addInput("Emission Strength", 0)
		n.addOutput("BSDF")
	case host.NodeKindImageTexture:
		n.addInput("Vector", 0)
		n.addOutput("Color")
		n.addOutput("Alpha")
	case host.NodeKindValue:
		n.addOutput("Value")
	case host.NodeKindNoiseTexture:
		n.addInput("Scale", 5)
		n.addOutput("Fac")
		n.addOutput("Color")
	}
	t.nodes = append(t.nodes, n)
	return n
}

func (t *NodeTree) RemoveNode(node host.Node) {
	n, ok := node.(*Node)
	if !ok {
		return
	}
	kept := t.links[:0]
	for _, l := range t.links {
		if l.from.node != n && l.to.node != n {
			kept = append(kept, l)
		}
	}
	t.links = kept
	for i, candidate := range t.nodes {
		if candidate == n {
			t.nodes = append(t.nodes[:i], t.nodes[i+1:]...)
			break
		}
	}
	if t.active == n {
		t.active = nil
	}
}

func (t *NodeTree) SetActiveNode(node host.Node) {
	if n, ok := node.(*Node); ok {
		t.active = n
	}
}

func (t *NodeTree) ActiveNode() host.Node {
	if t.active == nil {
		return nil
	}
	return t.active
}

func (t *NodeTree) Connect(from host.OutputSocket, to host.InputSocket) host.Link {
	f, ok := from.(*OutputSocket)
	if !ok {
		panic("memhost: Connect called with a foreign output socket")
	}
	in, ok := to.(*InputSocket)
	if !ok {
		panic("memhost: Connect called with a foreign input socket")
	}
	l := &link{from: f, to: in}
	t.links = append(t.links, l)
	return l
}

func (t *NodeTree) RemoveLink(lk host.Link) {
	target, ok := lk.(*link)
	if !ok {
		return
	}
	for i, l := range t.links {
		if l == target {
			t.links = append(t.links[:i], t.links[i+1:]...)
			return
		}
	}
}

// Node is the in-memory shader node.
type Node struct {
	name     string
	kind     host.NodeKind
	tree     *NodeTree
	inputs   []*InputSocket
	outputs  []*OutputSocket
	selected bool
	image    *Image
}

var _ host.Node = &Node{}

func (n *Node) addInput(name string, value float64) {
	n.inputs = append(n.inputs, &InputSocket{name: name, value: value, node: n})
}

func (n *Node) addOutput(name string) {
	n.outputs = append(n.outputs, &OutputSocket{name: name, node: n})
}

func (n *Node) Name() string {
	return n.name
}

func (n *Node) Kind() host.NodeKind {
	return n.kind
}

func (n *Node) Input(name string) host.InputSocket {
	for _, s := range n.inputs {
		if s.name == name {
			return s
		}
	}
	return nil
}

func (n *Node) Output(name string) host.OutputSocket {
	for _, s := range n.outputs {
		if s.name == name {
			return s
		}
	}
	return nil
}

func (n *Node) SetSelected(selected bool) {
	n.selected = selected
}

func (n *Node) Selected() bool {
	return n.selected
}

func (n *Node) SetImage(img host.Image) {
	if i, ok := img.(*Image); ok {
		n.image = i
	}
}

func (n *Node) Image() host.Image {
	if n.image == nil {
		return nil
	}
	return n.image
}

// InputSocket is the in-memory node input.
type InputSocket struct {
	name  string
	value float64
	node  *Node
}

var _ host.InputSocket = &InputSocket{}

func (s *InputSocket) Name() string {
	return s.name
}

func (s *InputSocket) Value() float64 {
	return s.value
}

func (s *InputSocket) SetValue(v float64) {
	s.value = v
}

func (s *InputSocket) Links() []host.Link {
	var links []host.Link
	for _, l := range s.node.tree.links {
		if l.to == s {
			links = append(links, l)
		}
	}
	return links
}

// OutputSocket is the in-memory node output.
type OutputSocket struct {
	name string
	node *Node
}

var _ host.OutputSocket = &OutputSocket{}

func (s *OutputSocket) Name() string {
	return s.name
}

func (s *OutputSocket) Node() host.Node {
	return s.node
}

// link is the in-memory socket connection.
type link struct {
	from *OutputSocket
	to   *InputSocket
}

var _ host.Link = &link{}

func (l *link) From() host.OutputSocket {
	return l.from
}

func (l *link) To() host.InputSocket {
	return l.to
}
