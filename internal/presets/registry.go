package presets

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samdwyer/levelforge/internal/world"
)

// Registry holds loaded archetype presets and the shared palette.
type Registry struct {
	version    string
	palette    map[string]Glyph
	archetypes map[string]*ArchetypeDef
	all        []ArchetypeDef
}

// NewRegistry creates a registry from a loaded archetypes file.
func NewRegistry(file ArchetypesFile) (*Registry, error) {
	registry := &Registry{
		version:    file.Version,
		palette:    file.Palette,
		archetypes: make(map[string]*ArchetypeDef, len(file.Archetypes)),
		all:        file.Archetypes,
	}
	for i := range file.Archetypes {
		def := &file.Archetypes[i]
		if _, dup := registry.archetypes[def.ID]; dup {
			return nil, fmt.Errorf("duplicate archetype %q", def.ID)
		}
		registry.archetypes[def.ID] = def
	}
	return registry, nil
}

// LoadRegistry loads and creates a registry from the embedded archetypes.json.
func LoadRegistry() (*Registry, error) {
	file, err := LoadArchetypes()
	if err != nil {
		return nil, err
	}
	if len(file.Archetypes) == 0 {
		return nil, errors.New("no archetypes loaded from archetypes.json")
	}
	return NewRegistry(file)
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Version returns the preset data version.
func (r *Registry) Version() string {
	return r.version
}

// GetByID returns the archetype with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *ArchetypeDef {
	if r == nil {
		return nil
	}
	return r.archetypes[id]
}

// All returns all archetype definitions.
func (r *Registry) All() []ArchetypeDef {
	return r.all
}

// IDs returns the archetype IDs in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.archetypes))
	for id := range r.archetypes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of archetypes in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}

// Glyph returns how a tile type is drawn for an archetype. Archetype palette
// entries win over the shared palette, then decoration definitions are
// consulted. Unknown types draw as '?'.
func (r *Registry) Glyph(archetype string, t world.TileType) Glyph {
	def := r.archetypes[archetype]
	if def != nil {
		if g, ok := def.Palette[string(t)]; ok {
			return g
		}
	}
	if g, ok := r.palette[string(t)]; ok {
		return g
	}
	if def != nil {
		for _, d := range def.Decorations {
			if d.Type == t {
				return Glyph{Glyph: d.Glyph, Color: d.Color}
			}
		}
	}
	return Glyph{Glyph: "?", Color: "#FFFFFF"}
}

// =============================================================================
// DecorationTable
// =============================================================================

// DecorationTable picks decorations by weight.
type DecorationTable struct {
	decorations []DecorationDef
	totalWeight int
}

// NewDecorationTable creates a table from decoration definitions.
func NewDecorationTable(decorations []DecorationDef) *DecorationTable {
	totalWeight := 0
	for _, d := range decorations {
		totalWeight += d.Weight
	}
	return &DecorationTable{
		decorations: decorations,
		totalWeight: totalWeight,
	}
}

// Pick selects a decoration using weighted probability, or nil when the
// table is empty. Decorations with a higher weight are picked more often.
func (t *DecorationTable) Pick(rng world.Rand) *DecorationDef {
	if t.totalWeight <= 0 || len(t.decorations) == 0 {
		return nil
	}

	roll := rng.Intn(t.totalWeight)

	cumulative := 0
	for i := range t.decorations {
		cumulative += t.decorations[i].Weight
		if roll < cumulative {
			return &t.decorations[i]
		}
	}

	return &t.decorations[0]
}

// Len returns the number of decoration types in the table.
func (t *DecorationTable) Len() int {
	return len(t.decorations)
}
