package monocle

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"
)

// resClass is one section of a resource map. alloc builds the resource
// for an entry and stores it under name; drop removes it.
type resClass struct {
	name  string
	alloc func(r *Resources, name string, n *dataNode) error
	has   func(r *Resources, name string) bool
	drop  func(r *Resources, name string)
}

// resClasses is in allocation order: later classes may refer to earlier ones.
var resClasses = []resClass{
	{
		name: "raw",
		alloc: func(r *Resources, name string, n *dataNode) error {
			file, err := entryString(n)
			if err != nil {
				return err
			}
			b, err := r.Raw(file)
			if err != nil {
				return err
			}
			r.raw[name] = b
			return nil
		},
		has:  func(r *Resources, name string) bool { _, ok := r.raw[name]; return ok },
		drop: func(r *Resources, name string) { delete(r.raw, name) },
	},
	{
		name: "spritesheet",
		alloc: func(r *Resources, name string, n *dataNode) error {
			file, err := entryString(n)
			if err != nil {
				return err
			}
			b, err := r.Raw(file)
			if err != nil {
				return err
			}
			s, err := decodeSpritesheet(name, b)
			if err != nil {
				return err
			}
			r.sheets[name] = s
			return nil
		},
		has:  func(r *Resources, name string) bool { _, ok := r.sheets[name]; return ok },
		drop: func(r *Resources, name string) { delete(r.sheets, name) },
	},
	{
		name: "sprite",
		alloc: func(r *Resources, name string, n *dataNode) error {
			s, err := parseSprite(name, n, r.Spritesheet)
			if err != nil {
				return err
			}
			r.sprites[name] = s
			return nil
		},
		has:  func(r *Resources, name string) bool { _, ok := r.sprites[name]; return ok },
		drop: func(r *Resources, name string) { delete(r.sprites, name) },
	},
	{
		name: "font",
		alloc: func(r *Resources, name string, n *dataNode) error {
			f, err := parseFont(name, n, r.Spritesheet)
			if err != nil {
				return err
			}
			r.fonts[name] = f
			return nil
		},
		has:  func(r *Resources, name string) bool { _, ok := r.fonts[name]; return ok },
		drop: func(r *Resources, name string) { delete(r.fonts, name) },
	},
	{
		name: "sfx",
		alloc: func(r *Resources, name string, n *dataNode) error {
			file, err := entryString(n)
			if err != nil {
				return err
			}
			b, err := r.Raw(file)
			if err != nil {
				return err
			}
			s, err := decodeSFX(name, file, b)
			if err != nil {
				return err
			}
			r.sfx[name] = s
			return nil
		},
		has:  func(r *Resources, name string) bool { _, ok := r.sfx[name]; return ok },
		drop: func(r *Resources, name string) { delete(r.sfx, name) },
	},
	{
		name: "music",
		alloc: func(r *Resources, name string, n *dataNode) error {
			file, err := entryString(n)
			if err != nil {
				return err
			}
			r.music[name] = file
			return nil
		},
		has:  func(r *Resources, name string) bool { _, ok := r.music[name]; return ok },
		drop: func(r *Resources, name string) { delete(r.music, name) },
	},
	{
		name: "data",
		alloc: func(r *Resources, name string, n *dataNode) error {
			r.data[name] = n
			return nil
		},
		has:  func(r *Resources, name string) bool { _, ok := r.data[name]; return ok },
		drop: func(r *Resources, name string) { delete(r.data, name) },
	},
	{
		name: "kind",
		alloc: func(r *Resources, name string, n *dataNode) error {
			k, err := parseKind(name, n, r.Sprite)
			if err != nil {
				return err
			}
			r.kinds[name] = k
			return nil
		},
		has:  func(r *Resources, name string) bool { _, ok := r.kinds[name]; return ok },
		drop: func(r *Resources, name string) { delete(r.kinds, name) },
	},
}

func entryString(n *dataNode) (string, error) {
	if n == nil || n.tag != DataString {
		return "", fmt.Errorf("monocle: entry is not a file name")
	}
	return string(n.s), nil
}

// readResmap reads and parses a resource map file.
func (r *Resources) readResmap(name string) (*dataNode, error) {
	b, err := r.Raw(name)
	if err != nil {
		return nil, fmt.Errorf("monocle: resource map: %w", err)
	}
	root, err := parseData(b)
	if err != nil {
		return nil, fmt.Errorf("monocle: resource map %s: %w", name, err)
	}
	return root, nil
}

// section returns the entries of one class, sorted by name, or nil when the
// map has no such object.
func section(root *dataNode, class string) ([]string, *dataNode) {
	top := root.lookup(class)
	if top == nil || top.tag != DataObject {
		return nil, nil
	}
	return slices.Sorted(maps.Keys(top.fields)), top
}

// LoadResmap reads the resource map file name and allocates every entry it
// lists. An entry that cannot be allocated is logged and skipped; the
// returned error only reports an unreadable or unparsable map.
func (r *Resources) LoadResmap(name string) error {
	root, err := r.readResmap(name)
	if err != nil {
		return err
	}
	log := Logger().With(zap.String("resmap", name))
	loaded := 0
	for _, rc := range resClasses {
		keys, top := section(root, rc.name)
		for _, key := range keys {
			replacing := rc.has(r, key)
			if err := rc.alloc(r, key, top.fields[key]); err != nil {
				log.Warn("could not handle resource",
					zap.String("class", rc.name), zap.String("name", key), zap.Error(err))
				continue
			}
			if replacing {
				log.Warn("overwriting resource", zap.String("class", rc.name), zap.String("name", key))
			}
			loaded++
		}
	}
	log.Debug("loaded resource map", zap.Int("resources", loaded))
	return nil
}

// UnloadResmap drops every resource the map file name lists, regardless of
// which map loaded it.
func (r *Resources) UnloadResmap(name string) error {
	root, err := r.readResmap(name)
	if err != nil {
		return err
	}
	for _, rc := range resClasses {
		keys, _ := section(root, rc.name)
		for _, key := range keys {
			rc.drop(r, key)
		}
	}
	Logger().Debug("unloaded resource map", zap.String("resmap", name))
	return nil
}

// Traits with engine meaning. They set flags on the kind instead of being
// listed in Traits.
const (
	TraitInvisible = "invisible"
	TraitRender    = "render"
)

// parseKind builds an object template. A sprite name that does not resolve
// is logged and leaves the kind without a sprite.
func parseKind(name string, n *dataNode, sprites func(string) (*Sprite, bool)) (*Kind, error) {
	if n == nil || n.tag != DataObject {
		return nil, fmt.Errorf("monocle: kind %q: entry is not an object", name)
	}
	k := &Kind{
		Name:    name,
		DX:      n.number("dx", 0),
		DY:      n.number("dy", 0),
		F:       n.number("frame", 0),
		DF:      n.number("frame-speed", 1),
		Depth:   n.number("depth", 0),
		Visible: true,
	}
	if s, ok := n.str("sprite"); ok {
		sprite, found := sprites(s)
		if !found {
			Logger().Warn("kind specifies unknown sprite", zap.String("kind", name), zap.String("sprite", s))
		}
		k.Sprite = sprite
	}
	for _, t := range stringList(name, n.lookup("traits"), "traits") {
		switch t {
		case TraitInvisible:
			k.Visible = false
		case TraitRender:
			k.CustomRender = true
		default:
			k.Traits = append(k.Traits, t)
		}
	}
	k.Collisions = stringList(name, n.lookup("collisions"), "collisions")
	return k, nil
}

// stringList returns the string members of an array, warning about the rest.
func stringList(kind string, n *dataNode, field string) []string {
	if n == nil || n.tag != DataArray {
		return nil
	}
	out := make([]string, 0, len(n.items))
	for _, item := range n.items {
		if item.tag != DataString {
			Logger().Warn("list entries need to be strings", zap.String("kind", kind), zap.String("field", field))
			continue
		}
		out = append(out, string(item.s))
	}
	return out
}
