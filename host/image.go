package host

// AlphaMode describes how an image's alpha channel is interpreted.
type AlphaMode string

const (
	// AlphaModeNone means the image carries no usable alpha channel.
	AlphaModeNone AlphaMode = "NONE"

	// AlphaModeStraight means the image carries unassociated (straight) alpha.
	AlphaModeStraight AlphaMode = "STRAIGHT"
)

// ImageKind identifies the source category of an image asset.
type ImageKind string

const (
	// ImageKindRaster is a plain raster image (generated or loaded from a file).
	ImageKindRaster ImageKind = "IMAGE"

	// ImageKindRender is a render-result image that cannot serve as a bake target.
	ImageKindRender ImageKind = "RENDER_RESULT"
)

// Image is a handle to one image asset owned by the host's asset table.
type Image interface {
	// Name retrieves the image identifier.
	//
	// Returns:
	//   - string: the image name
	Name() string

	// SetName renames the image within the asset table.
	//
	// Parameters:
	//   - name: the new image name
	SetName(name string)

	// HasData reports whether pixel data is loaded for the image.
	//
	// Returns:
	//   - bool: true if pixel data is present
	HasData() bool

	// Kind retrieves the image's source category.
	//
	// Returns:
	//   - ImageKind: the image kind
	Kind() ImageKind

	// Size retrieves the image dimensions.
	//
	// Returns:
	//   - int: width in pixels
	//   - int: height in pixels
	Size() (int, int)

	// AlphaMode retrieves the image's alpha interpretation.
	//
	// Returns:
	//   - AlphaMode: the alpha mode
	AlphaMode() AlphaMode

	// SetAlphaMode sets the image's alpha interpretation.
	//
	// Parameters:
	//   - mode: the alpha mode to set
	SetAlphaMode(mode AlphaMode)

	// SetColorDataIsNonColor sets whether the pixel values are interpreted as
	// linear non-color data (true) or as perceptual color (false).
	//
	// Parameters:
	//   - nonColor: true for non-color data interpretation
	SetColorDataIsNonColor(nonColor bool)

	// ColorDataIsNonColor reports the color-management interpretation.
	//
	// Returns:
	//   - bool: true if interpreted as non-color data
	ColorDataIsNonColor() bool

	// Scale resizes the image's pixel data in place. The handle's identity is
	// preserved.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	//
	// Returns:
	//   - error: error if the image has no pixel data to resize
	Scale(width, height int) error

	// Pack embeds the image's pixel data into the project file. Packing an
	// already-packed image refreshes the embedded copy.
	//
	// Returns:
	//   - error: error if the image has no pixel data to pack
	Pack() error

	// Unpack removes the embedded copy from the project file.
	//
	// Returns:
	//   - error: error if the image is not packed
	Unpack() error

	// Packed reports whether an embedded copy exists in the project file.
	//
	// Returns:
	//   - bool: true if the image is packed
	Packed() bool

	// Save writes the image's pixel data to an absolute filesystem path.
	//
	// Parameters:
	//   - absPath: the absolute destination path
	//
	// Returns:
	//   - error: error if the image has no data or the write fails
	Save(absPath string) error

	// Filepath retrieves the image's external file reference ("" for none).
	//
	// Returns:
	//   - string: the external file path
	Filepath() string

	// SetFilepath points the image's external reference at a file path. Pass ""
	// to clear the reference.
	//
	// Parameters:
	//   - path: the external file path
	SetFilepath(path string)

	// Reload re-reads pixel data from the image's external file reference.
	//
	// Returns:
	//   - error: error if the image has no external reference or the read fails
	Reload() error
}
