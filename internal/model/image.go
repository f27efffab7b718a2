package model

import "strings"

// ImageFile is a user-selected file awaiting classification.
type ImageFile struct {
	Path      string
	Name      string
	MediaType string
	Size      int64
	Width     int
	Height    int
}

// IsImage reports whether the declared media type is an image type.
func (f ImageFile) IsImage() bool {
	return strings.HasPrefix(f.MediaType, "image/")
}

// HasDimensions reports whether pixel dimensions were decoded.
func (f ImageFile) HasDimensions() bool {
	return f.Width > 0 && f.Height > 0
}
