package monocle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"
	sjsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ResourceMap documents the resource map file format. The engine parses
// maps itself; this type only feeds Schema.
type ResourceMap struct {
	Raw         map[string]string      `json:"raw,omitempty" jsonschema:"description=Raw files kept in memory by name"`
	Spritesheet map[string]string      `json:"spritesheet,omitempty" jsonschema:"description=Image files"`
	Sprite      map[string]SpriteEntry `json:"sprite,omitempty"`
	Font        map[string]FontEntry   `json:"font,omitempty"`
	SFX         map[string]string      `json:"sfx,omitempty" jsonschema:"description=wav or ogg files decoded at load time"`
	Music       map[string]string      `json:"music,omitempty" jsonschema:"description=wav, ogg or mp3 files streamed when played"`
	Data        map[string]any         `json:"data,omitempty" jsonschema:"description=Free-form data resources"`
	Kind        map[string]KindEntry   `json:"kind,omitempty"`
}

// SpriteEntry is a "sprite" resource.
type SpriteEntry struct {
	Width        int          `json:"width" jsonschema:"minimum=1"`
	Height       int          `json:"height" jsonschema:"minimum=1"`
	HotspotX     int          `json:"hotspot-x,omitempty"`
	HotspotY     int          `json:"hotspot-y,omitempty"`
	HitboxX      int          `json:"hitbox-x,omitempty"`
	HitboxY      int          `json:"hitbox-y,omitempty"`
	HitboxWidth  int          `json:"hitbox-width,omitempty"`
	HitboxHeight int          `json:"hitbox-height,omitempty"`
	Frames       []FrameEntry `json:"frames" jsonschema:"minItems=1"`
}

// FrameEntry is one sprite frame.
type FrameEntry struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Spritesheet string `json:"spritesheet"`
}

// FontEntry is a "font" resource.
type FontEntry struct {
	Width       int    `json:"width" jsonschema:"minimum=1"`
	Height      int    `json:"height" jsonschema:"minimum=1"`
	FirstIndex  int    `json:"first-index"`
	LastIndex   int    `json:"last-index"`
	Spritesheet string `json:"spritesheet"`
	TileWidth   int    `json:"tile-width,omitempty"`
	TileHeight  int    `json:"tile-height,omitempty"`
	HotspotX    int    `json:"hotspot-x,omitempty"`
	HotspotY    int    `json:"hotspot-y,omitempty"`
}

// KindEntry is a "kind" resource.
type KindEntry struct {
	DX         float64  `json:"dx,omitempty"`
	DY         float64  `json:"dy,omitempty"`
	Frame      float64  `json:"frame,omitempty"`
	FrameSpeed float64  `json:"frame-speed,omitempty" jsonschema:"default=1"`
	Depth      float64  `json:"depth,omitempty"`
	Sprite     string   `json:"sprite,omitempty"`
	Traits     []string `json:"traits,omitempty" jsonschema:"description=invisible and render set engine flags"`
	Collisions []string `json:"collisions,omitempty"`
}

// Schema returns the JSON schema of a resource map, indented.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(&ResourceMap{})
	schema.Title = "monocle resource map"

	b, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("monocle: marshal schema: %w", err)
	}
	return b, nil
}

const schemaURL = "monocle://resmap.schema.json"

var (
	compiledSchema    *sjsonschema.Schema
	compiledSchemaErr error
	compileSchemaOnce sync.Once
)

func resmapSchema() (*sjsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		b, err := Schema()
		if err != nil {
			compiledSchemaErr = err
			return
		}
		c := sjsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, bytes.NewReader(b)); err != nil {
			compiledSchemaErr = fmt.Errorf("monocle: add schema resource: %w", err)
			return
		}
		compiledSchema, compiledSchemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, compiledSchemaErr
}

// ValidateResmap checks a resource map document against Schema. The engine
// loads maps that fail validation anyway, skipping the bad entries; this is
// for tools.
func ValidateResmap(data []byte) error {
	sch, err := resmapSchema()
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("monocle: validate resource map: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("monocle: validate resource map: %w", err)
	}
	return nil
}
