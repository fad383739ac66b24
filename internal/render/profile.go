// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Profile is the on-disk representation of a render invocation. An
// invocation can be saved to a profile file and replayed later without
// retyping the flags.
type Profile struct {
	Input   string `yaml:"input"`
	PNG     string `yaml:"png,omitempty"`
	JPG     string `yaml:"jpg,omitempty"`
	DPI     int    `yaml:"dpi,omitempty"`
	Quality int    `yaml:"quality,omitempty"`
}

// WriteProfile saves the effective parameters of req to a YAML file.
func WriteProfile(path string, req Request) error {
	p := Profile{
		Input:   req.InputPath,
		PNG:     req.PNGPath,
		JPG:     req.JPGPath,
		DPI:     req.DPI,
		Quality: req.JPEGQuality,
	}

	data, err := yaml.Marshal(&p)
	if err != nil {
		return fmt.Errorf("marshaling render profile: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadProfile loads a previously saved render profile from disk.
func ReadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading render profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing render profile %s: %w", path, err)
	}
	return &p, nil
}

// Apply fills the unset fields of req from the profile. Fields already
// set on req (explicit flags) win over profile values.
func (p *Profile) Apply(req Request) Request {
	if req.InputPath == "" {
		req.InputPath = p.Input
	}
	if req.PNGPath == "" {
		req.PNGPath = p.PNG
	}
	if req.JPGPath == "" {
		req.JPGPath = p.JPG
	}
	if req.DPI == 0 {
		req.DPI = p.DPI
	}
	if req.JPEGQuality == 0 {
		req.JPEGQuality = p.Quality
	}
	return req
}
