package types

// Rendering defaults, overridable via config file, environment, or flags.
const (
	// DefaultDPI is the rasterization resolution used when none is given.
	DefaultDPI = 200

	// DefaultJPEGQuality is the JPEG encoding quality used when none is given.
	DefaultJPEGQuality = 95
)

// RenderConfig holds settings for the render stage.
type RenderConfig struct {
	// DPI is the rasterization resolution in dots per inch (default 200).
	DPI int `json:"dpi" yaml:"dpi"`

	// JPEGQuality is the JPEG encoding quality, 1-100 (default 95).
	// PNG output is lossless and ignores this setting. The key is
	// "quality" everywhere: config file, environment, flag, profile.
	JPEGQuality int `json:"quality" yaml:"quality"`
}

// InspectConfig holds settings for the inspect stage.
type InspectConfig struct {
	// JSON switches the report from human-readable text to JSON.
	JSON bool `json:"json" yaml:"json"`
}
