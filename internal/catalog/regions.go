package catalog

// regions.go converts raw region/comuna records into canonical shapes.
//
// Region payloads are looser than product payloads: the name may live
// under "region" or "nombre", the id may be missing entirely, and a
// comuna entry can be a bare string or an object with a "nombre" field.
// MapRegions is total over all of these; malformed entries degrade to
// stringified fallbacks instead of being dropped.

import "github.com/milsabores/storefront/internal/slug"

// MapRegions converts raw region records into RegionWithComunas values,
// preserving region and comuna order from the input.
//
// The region id falls back to the resolved name when absent, and the
// region slug falls back to "region-<id>" when the name is empty. Every
// comuna id is regionSlug + "-" + comunaSlug; uniqueness is only as
// strong as slug uniqueness.
func MapRegions(raw []Raw) []RegionWithComunas {
	regions := make([]RegionWithComunas, 0, len(raw))

	for _, r := range raw {
		name, _ := r["region"].(string)
		if name == "" {
			if v, ok := r["nombre"]; ok && v != nil {
				name = asText(v)
			}
		}

		id := name
		if v, ok := r["id"]; ok && v != nil {
			id = asText(v)
		}

		regionSlug := slug.Make(name)
		if name == "" {
			regionSlug = slug.Make("region-" + id)
		}

		region := RegionWithComunas{
			Region:  Region{ID: id, Name: name, Slug: regionSlug},
			Comunas: []Comuna{},
		}

		entries, _ := r["comunas"].([]any)
		for _, entry := range entries {
			comunaName := comunaDisplayName(entry)
			comunaSlug := slug.Make(comunaName)
			region.Comunas = append(region.Comunas, Comuna{
				ID:         regionSlug + "-" + comunaSlug,
				Name:       comunaName,
				Slug:       comunaSlug,
				RegionID:   id,
				RegionSlug: regionSlug,
			})
		}

		regions = append(regions, region)
	}

	return regions
}

// comunaDisplayName resolves the display name of a comuna entry, which
// may be a bare string or an object carrying a "nombre" field.
func comunaDisplayName(entry any) string {
	if s, ok := entry.(string); ok {
		return s
	}
	if m, ok := entry.(map[string]any); ok {
		if v, ok := m["nombre"]; ok && v != nil {
			return asText(v)
		}
	}
	return asText(entry)
}
