package app

import (
	"log/slog"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextureCache loads icon textures on first use. Missing files are
// remembered so they are not retried every frame.
type TextureCache struct {
	dir     string
	logger  *slog.Logger
	loaded  map[string]rl.Texture2D
	missing map[string]bool
}

// NewTextureCache resolves relative icon references against dir.
func NewTextureCache(dir string, logger *slog.Logger) *TextureCache {
	return &TextureCache{
		dir:     dir,
		logger:  logger,
		loaded:  make(map[string]rl.Texture2D),
		missing: make(map[string]bool),
	}
}

// Get returns the texture for ref. ok is false when it cannot be loaded.
func (c *TextureCache) Get(ref string) (rl.Texture2D, bool) {
	if ref == "" || c.missing[ref] {
		return rl.Texture2D{}, false
	}
	if tex, ok := c.loaded[ref]; ok {
		return tex, true
	}

	path := ref
	if c.dir != "" && !filepath.IsAbs(ref) {
		path = filepath.Join(c.dir, ref)
	}
	if _, err := os.Stat(path); err != nil {
		c.logger.Debug("icon not found", "icon", ref, "path", path)
		c.missing[ref] = true
		return rl.Texture2D{}, false
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		c.logger.Warn("failed to load icon", "icon", ref, "path", path)
		c.missing[ref] = true
		return rl.Texture2D{}, false
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	c.loaded[ref] = tex
	return tex, true
}

// Unload releases every texture.
func (c *TextureCache) Unload() {
	for ref, tex := range c.loaded {
		rl.UnloadTexture(tex)
		delete(c.loaded, ref)
	}
	c.missing = make(map[string]bool)
}
