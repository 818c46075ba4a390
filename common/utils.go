package common

import "regexp"

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Clamp constrains a value to the inclusive range [lo, hi].
//
// Parameters:
//   - v: the value to constrain
//   - lo: the lower bound of the range
//   - hi: the upper bound of the range
//
// Returns:
//   - T: v limited to [lo, hi]
func Clamp[T int | int32 | int64 | float32 | float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var (
	pathUnsafe = regexp.MustCompile(`[^\w_.\-/]`)
	nameUnsafe = regexp.MustCompile(`[^\w_.\-]`)
)

// SanitizePath replaces every character outside [A-Za-z0-9_.-/] with an underscore,
// producing a filesystem-safe directory path. Path separators are preserved.
//
// Parameters:
//   - path: the raw directory path
//
// Returns:
//   - string: the sanitized path
func SanitizePath(path string) string {
	return pathUnsafe.ReplaceAllString(path, "_")
}

// CleanName replaces every character outside [A-Za-z0-9_.-] with an underscore,
// producing a token safe for use as a file name. Unlike SanitizePath, path
// separators are not preserved.
//
// Parameters:
//   - name: the raw name
//
// Returns:
//   - string: the sanitized name
func CleanName(name string) string {
	return nameUnsafe.ReplaceAllString(name, "_")
}
