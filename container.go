package mbe

import (
	"fmt"
	"os"
)

// Container is a thin file-backed convenience wrapping Parse and
// Generate, mirroring a typical image-file lifecycle
// (open/initialize/close) without any of the codec logic living
// inside it: Container only does I/O, and delegates every byte-level
// decision to Parse/Generate.
type Container struct {
	Path string
	File *File
}

// Open reads the whole file at path and parses it.
func Open(path string, opts ...ParseOption) (*Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mbe: open %s: %w", path, err)
	}
	file, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("mbe: parse %s: %w", path, err)
	}
	return &Container{Path: path, File: file}, nil
}

// Save regenerates the container's File and writes it to path.
func (c *Container) Save(path string) error {
	if err := c.File.Validate(); err != nil {
		return err
	}
	data := Generate(c.File)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("mbe: save %s: %w", path, err)
	}
	return nil
}

// String renders the underlying File's summary.
func (c *Container) String() string {
	if c.File == nil {
		return fmt.Sprintf("%s: <unloaded>", c.Path)
	}
	return c.File.String()
}
