package monocle

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/klauspost/compress/zip"
	"go.uber.org/zap"
)

// resourceRoot is one place raw resources are read from.
type resourceRoot interface {
	read(name string) ([]byte, error) // fs.ErrNotExist when absent
	close() error
	String() string
}

type dirRoot struct {
	dir string
}

func (d dirRoot) read(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(d.dir, filepath.FromSlash(name)))
}

func (d dirRoot) close() error   { return nil }
func (d dirRoot) String() string { return d.dir }

type zipRoot struct {
	file  string
	rc    *zip.ReadCloser
	index map[string]*zip.File
}

func openZipRoot(file string) (*zipRoot, error) {
	rc, err := zip.OpenReader(file)
	if err != nil {
		return nil, err
	}
	z := &zipRoot{file: file, rc: rc, index: make(map[string]*zip.File, len(rc.File))}
	for _, f := range rc.File {
		if f.FileInfo().IsDir() {
			continue
		}
		z.index[path.Clean(f.Name)] = f
	}
	return z, nil
}

func (z *zipRoot) read(name string) ([]byte, error) {
	f, ok := z.index[path.Clean(name)]
	if !ok {
		return nil, fs.ErrNotExist
	}
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func (z *zipRoot) close() error   { return z.rc.Close() }
func (z *zipRoot) String() string { return z.file }

// Resources is the engine's resource table: search roots for raw files plus
// every resource allocated from loaded resource maps.
//
// Resources is not safe for concurrent use; the engine touches it only from
// the goroutine that currently owns the frame.
type Resources struct {
	roots []resourceRoot

	raw     map[string][]byte
	sheets  map[string]*Spritesheet
	sprites map[string]*Sprite
	fonts   map[string]*Font
	sfx     map[string]*SFX
	music   map[string]string
	data    map[string]*dataNode
	kinds   map[string]*Kind
}

// NewResources returns an empty resource table with no search roots.
func NewResources() *Resources {
	r := &Resources{}
	r.reset()
	return r
}

func (r *Resources) reset() {
	r.raw = make(map[string][]byte)
	r.sheets = make(map[string]*Spritesheet)
	r.sprites = make(map[string]*Sprite)
	r.fonts = make(map[string]*Font)
	r.sfx = make(map[string]*SFX)
	r.music = make(map[string]string)
	r.data = make(map[string]*dataNode)
	r.kinds = make(map[string]*Kind)
}

// AddDirectory adds a directory search root. Roots added later shadow
// earlier ones.
func (r *Resources) AddDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("monocle: add resource directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("monocle: add resource directory: %s is not a directory", dir)
	}
	r.roots = append(r.roots, dirRoot{dir: dir})
	return nil
}

// AddZipFile adds a zip archive search root. Roots added later shadow
// earlier ones.
func (r *Resources) AddZipFile(file string) error {
	z, err := openZipRoot(file)
	if err != nil {
		return fmt.Errorf("monocle: add resource zipfile: %w", err)
	}
	r.roots = append(r.roots, z)
	return nil
}

// Raw reads a raw file by slash-separated name from the newest root that
// has it.
func (r *Resources) Raw(name string) ([]byte, error) {
	for i := len(r.roots) - 1; i >= 0; i-- {
		b, err := r.roots[i].read(name)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("monocle: read %s from %s: %w", name, r.roots[i], err)
		}
	}
	return nil, fmt.Errorf("monocle: raw %q: %w", name, ErrResourceNotFound)
}

// Close releases every search root and unloads all resources.
func (r *Resources) Close() error {
	var errs []error
	for _, root := range r.roots {
		if err := root.close(); err != nil {
			errs = append(errs, err)
		}
	}
	r.roots = nil
	r.UnloadAll()
	return errors.Join(errs...)
}

// UnloadAll drops every resource allocated from resource maps. Search roots
// stay in place.
func (r *Resources) UnloadAll() {
	r.reset()
	Logger().Debug("unloaded all resources")
}

// Locators. Each returns false when the name is not loaded.

func (r *Resources) RawResource(name string) ([]byte, bool) {
	b, ok := r.raw[name]
	return b, ok
}

func (r *Resources) Spritesheet(name string) (*Spritesheet, bool) {
	s, ok := r.sheets[name]
	return s, ok
}

func (r *Resources) Sprite(name string) (*Sprite, bool) {
	s, ok := r.sprites[name]
	return s, ok
}

func (r *Resources) Font(name string) (*Font, bool) {
	f, ok := r.fonts[name]
	return f, ok
}

func (r *Resources) SFX(name string) (*SFX, bool) {
	s, ok := r.sfx[name]
	return s, ok
}

// Music returns the raw file name that backs a music resource.
func (r *Resources) Music(name string) (string, bool) {
	m, ok := r.music[name]
	return m, ok
}

func (r *Resources) Kind(name string) (*Kind, bool) {
	k, ok := r.kinds[name]
	return k, ok
}

// DataResource returns the engine-owned tree for a data resource. The tree
// is valid until the resource is unloaded.
func (r *Resources) DataResource(name string) (TaggedValue, bool) {
	d, ok := r.data[name]
	if !ok {
		return nil, false
	}
	return d, true
}

// Data looks up and decodes a data resource. A missing resource decodes to
// nil without error, the same as a null value.
func (r *Resources) Data(name string) (any, error) {
	v, ok := r.DataResource(name)
	if !ok {
		Logger().Debug("data resource not loaded", zap.String("name", name))
	}
	return Decode(v)
}

// DataNames returns the names of the loaded data resources, sorted.
func (r *Resources) DataNames() []string {
	return slices.Sorted(maps.Keys(r.data))
}
