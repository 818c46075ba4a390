package memhost

import "github.com/Carmen-Shannon/oxy-baker/host"

// Object is the in-memory scene object.
type Object struct {
	name      string
	typ       host.ObjectType
	selected  bool
	materials []*Material
	uvLayers  []string
	props     map[string]map[string]any
}

var _ host.Object = &Object{}

// NewObject creates a scene object with the specified options applied. The
// object defaults to a selected mesh with no materials and a single "UVMap"
// layer.
//
// Parameters:
//   - name: the object name
//   - options: functional options for object configuration
//
// Returns:
//   - *Object: the newly created object
func NewObject(name string, options ...ObjectBuilderOption) *Object {
	o := &Object{
		name:     name,
		typ:      host.ObjectTypeMesh,
		selected: true,
		uvLayers: []string{"UVMap"},
		props:    make(map[string]map[string]any),
	}
	for _, opt := range options {
		opt(o)
	}
	return o
}

func (o *Object) Name() string {
	return o.name
}

func (o *Object) Type() host.ObjectType {
	return o.typ
}

func (o *Object) Selected() bool {
	return o.selected
}

// SetSelected sets the object's selection state.
//
// Parameters:
//   - selected: the selection state
func (o *Object) SetSelected(selected bool) {
	o.selected = selected
}

func (o *Object) Materials() []host.Material {
	mats := make([]host.Material, 0, len(o.materials))
	for _, m := range o.materials {
		mats = append(mats, m)
	}
	return mats
}

func (o *Object) UVLayerNames() []string {
	if o.typ != host.ObjectTypeMesh {
		return nil
	}
	return o.uvLayers
}

func (o *Object) CustomProperty(key string) (map[string]any, bool) {
	v, ok := o.props[key]
	return v, ok
}

func (o *Object) SetCustomProperty(key string, value map[string]any) {
	o.props[key] = value
}
