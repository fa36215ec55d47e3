package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadShader(t *testing.T) {
	tests := map[string]string{
		"renderer2d.vert": "uniform mat4 uVP;",
		"renderer2d.frag": "uniform sampler2D uTex[16];",
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			src, err := LoadShader(name)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.HasSuffix(src, "\x00") {
				t.Error("source not null terminated")
			}
			if !strings.Contains(src, want) {
				t.Errorf("source lacks %q", want)
			}
		})
	}
	if _, err := LoadShader("missing.vert"); err == nil {
		t.Error("missing shader loaded")
	}
}

func TestLoadFont(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "custom.ttf")
	if err := os.WriteFile(custom, []byte("not really a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	tests := map[string]struct {
		path         string
		wantFallback bool
		want         []byte
	}{
		"empty path": {"", true, goregular.TTF},
		"missing":    {filepath.Join(dir, "nope.ttf"), true, goregular.TTF},
		"on disk":    {custom, false, []byte("not really a font")},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, fallback, err := LoadFont(tt.path)
			if err != nil {
				t.Fatal(err)
			}
			if fallback != tt.wantFallback || !bytes.Equal(got, tt.want) {
				t.Errorf("LoadFont(%q) fallback=%v len=%d", tt.path, fallback, len(got))
			}
		})
	}
	if _, _, err := LoadFont(dir); err == nil {
		t.Error("directory accepted as font")
	}
}
