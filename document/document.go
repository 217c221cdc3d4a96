package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/flowsched/catalog"
	"github.com/katalvlaran/flowsched/internal/validate"
)

// Sentinel errors for document decoding.
var (
	// ErrEmpty is returned for an empty payload.
	ErrEmpty = errors.New("document: payload is empty")

	// ErrDecode is returned when the payload is not well-formed YAML or JSON,
	// or a field has the wrong type.
	ErrDecode = errors.New("document: decode failed")

	// ErrUnsupportedFormat is returned by LoadFile for unknown file extensions.
	ErrUnsupportedFormat = errors.New("document: unsupported file format")
)

// Style names accepted in documents.
const (
	StyleBuild = "build"
	StyleValve = "valve"
)

// Document is a self-contained problem instance: a catalog description
// plus the horizon and number of agents to solve it for.
type Document struct {
	Name    string `yaml:"name"`
	Style   string `yaml:"style" validate:"required,oneof=build valve"`
	Horizon int    `yaml:"horizon" validate:"gte=0"`
	Agents  int    `yaml:"agents" validate:"gte=0,lte=2"`

	// build style
	Kinds     []string          `yaml:"kinds" validate:"required_if=Style build,dive,required"`
	Target    string            `yaml:"target" validate:"required_if=Style build"`
	Base      map[string]int64  `yaml:"base" validate:"dive,gte=0"`
	Producers []ProducerDocument `yaml:"producers" validate:"dive"`

	// valve style
	Start     string             `yaml:"start" validate:"required_if=Style valve"`
	Locations []LocationDocument `yaml:"locations" validate:"required_if=Style valve,dive"`
}

// ProducerDocument describes one build-style producer.
type ProducerDocument struct {
	Name   string           `yaml:"name" validate:"required"`
	Cost   map[string]int64 `yaml:"cost" validate:"dive,gte=0"`
	Effect map[string]int64 `yaml:"effect" validate:"dive,gte=0"`
}

// LocationDocument describes one valve-style location.
type LocationDocument struct {
	Name    string   `yaml:"name" validate:"required"`
	Value   int64    `yaml:"value" validate:"gte=0"`
	Tunnels []string `yaml:"tunnels" validate:"dive,required"`
}

// Validate checks the structural rules expressed in the validate tags.
// Two agents are only accepted for valve documents.
// Cross references (unknown kinds, unknown tunnels) are checked by Catalog.
func (d Document) Validate() error {
	if err := validate.New().Struct(d); err != nil {
		return fmt.Errorf("document: %w", err)
	}
	if d.Style == StyleBuild && d.Agents > 1 {
		return fmt.Errorf("document: %w: field 'agents' must be 1 for build documents (value: '%d')",
			validate.ErrInvalid, d.Agents)
	}

	return nil
}

// Normalized returns a copy with trimmed names and Agents defaulted to 1.
func (d Document) Normalized() Document {
	d.Name = strings.TrimSpace(d.Name)
	d.Style = strings.ToLower(strings.TrimSpace(d.Style))
	d.Target = strings.TrimSpace(d.Target)
	d.Start = strings.TrimSpace(d.Start)
	if d.Agents == 0 {
		d.Agents = 1
	}
	if d.Kinds != nil {
		kinds := make([]string, len(d.Kinds))
		for i, k := range d.Kinds {
			kinds[i] = strings.TrimSpace(k)
		}
		d.Kinds = kinds
	}

	return d
}

// Catalog builds the catalog the document describes.
func (d Document) Catalog() (*catalog.Catalog, error) {
	switch d.Style {
	case StyleBuild:
		spec := catalog.BuildSpec{
			Kinds:     d.Kinds,
			Target:    d.Target,
			Base:      d.Base,
			Producers: make([]catalog.ProducerSpec, len(d.Producers)),
		}
		for i, p := range d.Producers {
			spec.Producers[i] = catalog.ProducerSpec{Name: p.Name, Cost: p.Cost, Effect: p.Effect}
		}
		return catalog.NewBuildCatalog(spec)
	case StyleValve:
		locs := make([]catalog.Location, len(d.Locations))
		for i, l := range d.Locations {
			locs[i] = catalog.Location{Name: l.Name, Value: l.Value, Tunnels: l.Tunnels}
		}
		return catalog.NewGraphCatalog(locs, d.Start)
	default:
		return nil, fmt.Errorf("document: unknown style %q", d.Style)
	}
}
