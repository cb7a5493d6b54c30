// Package resource loads the images and fonts the UI refers to by name.
// A Store satisfies retained.ResourceProvider.
package resource

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"sync"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font/sfnt"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/agiangrant/nucleus/retained"
)

// preloadLimit bounds concurrent loads in Preload.
const preloadLimit = 4

// Image is a named image whose header has been read. Pixels are decoded on
// demand.
type Image struct {
	name   string
	path   string
	format string
	width  int
	height int
	fsys   fs.FS
}

func (i *Image) Name() string     { return i.name }
func (i *Image) Path() string     { return i.path }
func (i *Image) Format() string   { return i.format }
func (i *Image) Size() (int, int) { return i.width, i.height }

// Decode reads and decodes the full image.
func (i *Image) Decode() (image.Image, error) {
	f, err := i.fsys.Open(i.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", i.path, err)
	}
	return img, nil
}

// Font is a parsed OpenType or TrueType font.
type Font struct {
	name   string
	path   string
	family string
	glyphs int
	font   *sfnt.Font
}

func (f *Font) Name() string   { return f.name }
func (f *Font) Path() string   { return f.path }
func (f *Font) Family() string { return f.family }
func (f *Font) Glyphs() int    { return f.glyphs }

// SFNT returns the parsed font for shaping and rasterization.
func (f *Font) SFNT() *sfnt.Font { return f.font }

// Store holds loaded resources by name. It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	images map[string]*Image
	fonts  map[string]*Font
	logger *log.Logger
}

// NewStore creates an empty store. A nil logger uses log.Default().
func NewStore(logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{
		images: make(map[string]*Image),
		fonts:  make(map[string]*Font),
		logger: logger,
	}
}

// LoadImage reads the image header at path in fsys and registers it as name,
// replacing any previous image with that name.
func (s *Store) LoadImage(fsys fs.FS, name, path string) (*Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("image %q: %w", name, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("image %q: decode %s: %w", name, path, err)
	}

	img := &Image{
		name:   name,
		path:   path,
		format: format,
		width:  cfg.Width,
		height: cfg.Height,
		fsys:   fsys,
	}
	s.mu.Lock()
	s.images[name] = img
	s.mu.Unlock()
	s.logger.Printf("[resource] image %s: %s %dx%d", name, format, cfg.Width, cfg.Height)
	return img, nil
}

// LoadFont parses the font at path in fsys and registers it as name.
func (s *Store) LoadFont(fsys fs.FS, name, path string) (*Font, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", name, err)
	}
	parsed, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font %q: parse %s: %w", name, path, err)
	}

	family, err := parsed.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		family = name
	}
	font := &Font{
		name:   name,
		path:   path,
		family: family,
		glyphs: parsed.NumGlyphs(),
		font:   parsed,
	}
	s.mu.Lock()
	s.fonts[name] = font
	s.mu.Unlock()
	s.logger.Printf("[resource] font %s: %s (%d glyphs)", name, family, font.glyphs)
	return font, nil
}

// Image returns the image registered as name.
func (s *Store) Image(name string) (retained.ImageHandle, bool) {
	s.mu.RLock()
	img, ok := s.images[name]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return img, true
}

// Font returns the font registered as name.
func (s *Store) Font(name string) (retained.FontHandle, bool) {
	s.mu.RLock()
	font, ok := s.fonts[name]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return font, true
}

// Preload loads every image and font concurrently. It returns the first
// error; resources that loaded before it stay registered.
func (s *Store) Preload(ctx context.Context, fsys fs.FS, images, fonts map[string]string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(preloadLimit)

	for name, path := range images {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := s.LoadImage(fsys, name, path)
			return err
		})
	}
	for name, path := range fonts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := s.LoadFont(fsys, name, path)
			return err
		})
	}
	return g.Wait()
}
