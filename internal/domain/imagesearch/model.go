package imagesearch

import "time"

// Image is one landmark photo reference.
type Image struct {
	ID          string      `json:"id" msgpack:"id"`
	Description string      `json:"description" msgpack:"description"`
	URLs        URLs        `json:"urls" msgpack:"urls"`
	Attribution Attribution `json:"attribution" msgpack:"attribution"`
}

// URLs holds the display sizes of an image.
type URLs struct {
	Small   string `json:"small" msgpack:"small"`
	Regular string `json:"regular" msgpack:"regular"`
}

// Attribution credits the photographer.
type Attribution struct {
	Name       string `json:"name" msgpack:"name"`
	ProfileURL string `json:"profileUrl" msgpack:"profileUrl"`
}

// Response is serialized back to API consumers. Images is never nil.
type Response struct {
	Images []Image `json:"images"`
}

// Config holds runtime knobs for the lookup service.
type Config struct {
	PerPage  int
	CacheTTL time.Duration
}
