// Package assets bundles the shaders and resolves fonts for the hosts.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/image/font/gofont/goregular"
)

//go:embed shaders/*
var shaderFS embed.FS

// LoadShader returns an embedded GLSL source, null-terminated for
// OpenGL.
func LoadShader(name string) (string, error) {
	b, err := fs.ReadFile(shaderFS, "shaders/"+name)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	// Ensure null termination for gl.Str
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}

// LoadFont reads a TTF from path. An empty path, or one that does not
// exist, yields the bundled Go Regular face; fallback reports that.
func LoadFont(path string) (ttf []byte, fallback bool, err error) {
	if path == "" {
		return goregular.TTF, true, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return goregular.TTF, true, nil
		}
		return nil, false, fmt.Errorf("load font %q: %w", path, err)
	}
	return b, false, nil
}
