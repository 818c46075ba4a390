package memhost

import "github.com/Carmen-Shannon/oxy-baker/host"

// ObjectBuilderOption is a functional option for configuring an Object via NewObject.
type ObjectBuilderOption func(*Object)

// WithType is an option builder that sets the kind of data the object carries.
//
// Parameters:
//   - typ: the object type
//
// Returns:
//   - ObjectBuilderOption: a function that applies the type option to an object
func WithType(typ host.ObjectType) ObjectBuilderOption {
	return func(o *Object) {
		o.typ = typ
	}
}

// WithSelected is an option builder that sets the object's selection state.
//
// Parameters:
//   - selected: the selection state
//
// Returns:
//   - ObjectBuilderOption: a function that applies the selection option to an object
func WithSelected(selected bool) ObjectBuilderOption {
	return func(o *Object) {
		o.selected = selected
	}
}

// WithMaterials is an option builder that assigns materials to the object's
// slots, in slot order.
//
// Parameters:
//   - materials: the materials to assign
//
// Returns:
//   - ObjectBuilderOption: a function that applies the materials option to an object
func WithMaterials(materials ...*Material) ObjectBuilderOption {
	return func(o *Object) {
		o.materials = materials
	}
}

// WithUVLayers is an option builder that sets the object's UV map names.
//
// Parameters:
//   - names: the UV map names, in layer order
//
// Returns:
//   - ObjectBuilderOption: a function that applies the UV layers option to an object
func WithUVLayers(names ...string) ObjectBuilderOption {
	return func(o *Object) {
		o.uvLayers = names
	}
}
