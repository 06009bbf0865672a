package entity

// ImageResult is the normalized outcome of one image provider call.
// Exactly one representation is set: URL when the provider hosts the
// image itself, Data+MimeType when the image arrived inline.
type ImageResult struct {
	URL      string
	Data     []byte
	MimeType string

	// Pixel dimensions, filled in while validating inline payloads.
	// Zero for hosted URLs.
	Width  int
	Height int
}

func (r *ImageResult) Inline() bool {
	return len(r.Data) > 0
}
