package models

// Viewport is the size of the visible drawing area in pixels
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DefaultViewport is used when a client does not report its size
var DefaultViewport = Viewport{Width: 1280, Height: 720}
