package host

// NodeKind identifies the type of a shader node.
type NodeKind string

const (
	// NodeKindPrincipledBSDF is the principal physically-based shading node,
	// expected to expose Metallic and Roughness inputs.
	NodeKindPrincipledBSDF NodeKind = "BSDF_PRINCIPLED"

	// NodeKindImageTexture is an image-texture node. When active and selected it
	// is the default bake target for the host's baking engine.
	NodeKindImageTexture NodeKind = "TEX_IMAGE"

	// NodeKindValue is a scalar value node with a single "Value" output.
	NodeKindValue NodeKind = "VALUE"

	// NodeKindNoiseTexture is a procedural noise node with a "Fac" output.
	NodeKindNoiseTexture NodeKind = "TEX_NOISE"
)

// Material is a handle to one material owned by the host.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the material name
	Name() string

	// NodeTree retrieves the material's shader node graph.
	//
	// Returns:
	//   - NodeTree: the node graph, or nil for materials without one
	NodeTree() NodeTree
}

// NodeTree is a handle to a material's shader node graph.
type NodeTree interface {
	// Nodes retrieves all nodes in the graph, in creation order.
	//
	// Returns:
	//   - []Node: the graph's nodes
	Nodes() []Node

	// AddNode creates a new node of the given kind with its kind-specific
	// default sockets.
	//
	// Parameters:
	//   - kind: the node kind to create
	//
	// Returns:
	//   - Node: the newly created node
	AddNode(kind NodeKind) Node

	// RemoveNode deletes a node and severs all links attached to its sockets.
	//
	// Parameters:
	//   - node: the node to delete
	RemoveNode(node Node)

	// SetActiveNode marks a node as the graph's active node. The host's baking
	// engine writes into the image of the active image-texture node.
	//
	// Parameters:
	//   - node: the node to activate
	SetActiveNode(node Node)

	// ActiveNode retrieves the graph's active node.
	//
	// Returns:
	//   - Node: the active node, or nil
	ActiveNode() Node

	// Connect creates a link from an output socket to an input socket.
	//
	// Parameters:
	//   - from: the upstream output socket
	//   - to: the downstream input socket
	//
	// Returns:
	//   - Link: the newly created link
	Connect(from OutputSocket, to InputSocket) Link

	// RemoveLink severs an existing link.
	//
	// Parameters:
	//   - link: the link to remove
	RemoveLink(link Link)
}

// Node is a handle to one shader node.
type Node interface {
	// Name retrieves the node identifier within its graph.
	//
	// Returns:
	//   - string: the node name
	Name() string

	// Kind retrieves the node's type.
	//
	// Returns:
	//   - NodeKind: the node kind
	Kind() NodeKind

	// Input retrieves a named input socket.
	//
	// Parameters:
	//   - name: the input socket name (e.g. "Metallic", "Roughness")
	//
	// Returns:
	//   - InputSocket: the socket, or nil if the node has no such input
	Input(name string) InputSocket

	// Output retrieves a named output socket.
	//
	// Parameters:
	//   - name: the output socket name (e.g. "Color", "Fac")
	//
	// Returns:
	//   - OutputSocket: the socket, or nil if the node has no such output
	Output(name string) OutputSocket

	// SetSelected sets the node's selection flag.
	//
	// Parameters:
	//   - selected: the selection state
	SetSelected(selected bool)

	// Selected reports the node's selection flag.
	//
	// Returns:
	//   - bool: true if the node is selected
	Selected() bool

	// SetImage assigns an image to an image-texture node. No-op for other kinds.
	//
	// Parameters:
	//   - img: the image to assign
	SetImage(img Image)

	// Image retrieves the image assigned to an image-texture node.
	//
	// Returns:
	//   - Image: the assigned image, or nil
	Image() Image
}

// InputSocket is a handle to a node input. An input carries a scalar fallback
// value that takes effect while no link feeds it.
type InputSocket interface {
	// Name retrieves the socket name.
	//
	// Returns:
	//   - string: the socket name
	Name() string

	// Value retrieves the socket's scalar fallback value.
	//
	// Returns:
	//   - float64: the scalar value
	Value() float64

	// SetValue sets the socket's scalar fallback value.
	//
	// Parameters:
	//   - v: the scalar value to set
	SetValue(v float64)

	// Links retrieves the links currently feeding this input, in creation order.
	//
	// Returns:
	//   - []Link: the incoming links
	Links() []Link
}

// OutputSocket is a handle to a node output.
type OutputSocket interface {
	// Name retrieves the socket name.
	//
	// Returns:
	//   - string: the socket name
	Name() string

	// Node retrieves the node owning this output.
	//
	// Returns:
	//   - Node: the owning node
	Node() Node
}

// Link is a handle to one connection between an output and an input socket.
type Link interface {
	// From retrieves the upstream output socket.
	//
	// Returns:
	//   - OutputSocket: the link's source
	From() OutputSocket

	// To retrieves the downstream input socket.
	//
	// Returns:
	//   - InputSocket: the link's destination
	To() InputSocket
}
