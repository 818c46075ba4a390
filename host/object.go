package host

// ObjectType identifies the kind of data an object carries.
type ObjectType string

const (
	// ObjectTypeMesh is an object carrying polygonal mesh data.
	ObjectTypeMesh ObjectType = "MESH"

	// ObjectTypeOther is any non-mesh object (camera, light, empty, ...).
	ObjectTypeOther ObjectType = "OTHER"
)

// Object is a handle to one scene object owned by the host.
type Object interface {
	// Name retrieves the object identifier.
	//
	// Returns:
	//   - string: the object name
	Name() string

	// Type retrieves the kind of data the object carries.
	//
	// Returns:
	//   - ObjectType: the object type
	Type() ObjectType

	// Selected reports whether the object is currently selected in the scene.
	//
	// Returns:
	//   - bool: true if the object is selected
	Selected() bool

	// Materials retrieves the materials assigned to the object's slots, in slot
	// order. Empty slots are skipped.
	//
	// Returns:
	//   - []Material: the assigned materials
	Materials() []Material

	// UVLayerNames retrieves the names of the object's UV maps, in layer order.
	//
	// Returns:
	//   - []string: the UV map names (empty for non-mesh objects)
	UVLayerNames() []string

	// CustomProperty retrieves a custom metadata map previously stored on the
	// object under the given key.
	//
	// Parameters:
	//   - key: the metadata key
	//
	// Returns:
	//   - map[string]any: the stored map
	//   - bool: true if a map is stored under the key
	CustomProperty(key string) (map[string]any, bool)

	// SetCustomProperty stores a custom metadata map on the object. The map is
	// persisted with the project file and survives re-invocations.
	//
	// Parameters:
	//   - key: the metadata key
	//   - value: the map to store
	SetCustomProperty(key string, value map[string]any)
}
