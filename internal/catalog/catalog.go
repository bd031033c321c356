// Package catalog holds the read-only viewpoint and building catalogs and
// the session-scoped list of ad-hoc viewpoints.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/depot-nav/pkg/math"
)

//go:embed default.yaml
var defaultCatalog []byte

// ErrNotFound is returned for unknown ids.
var ErrNotFound = errors.New("catalog: not found")

// Viewpoint is a named camera pose. Duration is in seconds.
type Viewpoint struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Position    math.Vec3 `yaml:"position"`
	Rotation    math.Vec3 `yaml:"rotation"`
	Duration    float64   `yaml:"duration"`
	Description string    `yaml:"description,omitempty"`
}

// TravelTime returns Duration as a time.Duration.
func (v Viewpoint) TravelTime() time.Duration {
	return time.Duration(v.Duration * float64(time.Second))
}

// Icon describes a building's billboard image.
type Icon struct {
	Src    string `yaml:"src"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Building is a point of interest. Mesh names the engine object to frame;
// CameraPoint and ViewRotation are the fixed fallback when no mesh exists.
type Building struct {
	ID           string     `yaml:"id"`
	Name         string     `yaml:"name"`
	Position     math.Vec3  `yaml:"position"`
	CameraPoint  *math.Vec3 `yaml:"camera_point,omitempty"`
	ViewRotation *math.Vec3 `yaml:"view_rotation,omitempty"`
	Mesh         string     `yaml:"mesh,omitempty"`
	Icon         Icon       `yaml:"icon"`
	Background   string     `yaml:"background,omitempty"`
}

// Detail is the text shown in a building's info panel.
type Detail struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Functions   []string `yaml:"functions"`
	Area        string   `yaml:"area"`
	Capacity    string   `yaml:"capacity"`
	Staff       int      `yaml:"staff"`
	Image       string   `yaml:"image,omitempty"`
}

// Catalog is the read-only scene data.
type Catalog struct {
	viewpoints []Viewpoint
	buildings  []Building
	details    []Detail

	viewpointIdx map[string]int
	buildingIdx  map[string]int
	detailIdx    map[string]int
}

type document struct {
	Viewpoints []Viewpoint `yaml:"viewpoints"`
	Buildings  []Building  `yaml:"buildings"`
	Details    []Detail    `yaml:"details"`
}

// Default returns the embedded depot catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded default is invalid: %v", err))
	}
	return c
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return New(doc.Viewpoints, doc.Buildings, doc.Details)
}

// New builds a catalog from explicit lists. Ids must be unique per list and
// viewpoint durations non-negative.
func New(viewpoints []Viewpoint, buildings []Building, details []Detail) (*Catalog, error) {
	c := &Catalog{
		viewpoints:   append([]Viewpoint(nil), viewpoints...),
		buildings:    append([]Building(nil), buildings...),
		details:      append([]Detail(nil), details...),
		viewpointIdx: make(map[string]int, len(viewpoints)),
		buildingIdx:  make(map[string]int, len(buildings)),
		detailIdx:    make(map[string]int, len(details)),
	}
	for i, v := range c.viewpoints {
		if v.ID == "" {
			return nil, fmt.Errorf("viewpoint %d: missing id", i)
		}
		if v.Duration < 0 {
			return nil, fmt.Errorf("viewpoint %s: negative duration", v.ID)
		}
		if _, dup := c.viewpointIdx[v.ID]; dup {
			return nil, fmt.Errorf("viewpoint %s: duplicate id", v.ID)
		}
		c.viewpointIdx[v.ID] = i
	}
	for i, b := range c.buildings {
		if b.ID == "" {
			return nil, fmt.Errorf("building %d: missing id", i)
		}
		if _, dup := c.buildingIdx[b.ID]; dup {
			return nil, fmt.Errorf("building %s: duplicate id", b.ID)
		}
		c.buildingIdx[b.ID] = i
	}
	for i, d := range c.details {
		if _, dup := c.detailIdx[d.ID]; dup {
			return nil, fmt.Errorf("detail %s: duplicate id", d.ID)
		}
		c.detailIdx[d.ID] = i
	}
	return c, nil
}

// Viewpoint looks up a predefined viewpoint.
func (c *Catalog) Viewpoint(id string) (Viewpoint, error) {
	i, ok := c.viewpointIdx[id]
	if !ok {
		return Viewpoint{}, fmt.Errorf("%w: viewpoint %q", ErrNotFound, id)
	}
	return c.viewpoints[i], nil
}

// Viewpoints returns a copy of every predefined viewpoint in order.
func (c *Catalog) Viewpoints() []Viewpoint {
	return append([]Viewpoint(nil), c.viewpoints...)
}

// Select returns the viewpoints named by ids, in the order given.
// Unknown ids are skipped.
func (c *Catalog) Select(ids []string) []Viewpoint {
	out := make([]Viewpoint, 0, len(ids))
	for _, id := range ids {
		if i, ok := c.viewpointIdx[id]; ok {
			out = append(out, c.viewpoints[i])
		}
	}
	return out
}

// Building looks up a building.
func (c *Catalog) Building(id string) (Building, error) {
	i, ok := c.buildingIdx[id]
	if !ok {
		return Building{}, fmt.Errorf("%w: building %q", ErrNotFound, id)
	}
	return c.buildings[i], nil
}

// Buildings returns a copy of every building in order.
func (c *Catalog) Buildings() []Building {
	return append([]Building(nil), c.buildings...)
}

// Detail looks up a building's panel text.
func (c *Catalog) Detail(id string) (Detail, bool) {
	i, ok := c.detailIdx[id]
	if !ok {
		return Detail{}, false
	}
	return c.details[i], true
}
