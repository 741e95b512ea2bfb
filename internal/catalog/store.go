package catalog

import "sync/atomic"

// Snapshot is one fully built view of the upstream data: the normalized
// product list, the catalog derived from it, the mapped regions, the
// flattened comuna list and the comuna-by-region-slug index. A snapshot
// is built completely before it becomes visible and is never mutated
// afterwards, so the nested comuna lists and the index cannot diverge.
type Snapshot struct {
	Products []Product
	Catalog  Catalog
	Regions  []RegionWithComunas
	Comunas  []Comuna

	comunasByRegionSlug map[string][]Comuna
}

// NewSnapshot derives a snapshot from normalized products and mapped
// regions. Nil inputs are treated as empty collections.
func NewSnapshot(products []Product, regions []RegionWithComunas) *Snapshot {
	if products == nil {
		products = []Product{}
	}
	if regions == nil {
		regions = []RegionWithComunas{}
	}

	snap := &Snapshot{
		Products:            products,
		Catalog:             BuildCatalog(products),
		Regions:             regions,
		Comunas:             []Comuna{},
		comunasByRegionSlug: make(map[string][]Comuna, len(regions)),
	}

	for _, r := range regions {
		snap.Comunas = append(snap.Comunas, r.Comunas...)
		snap.comunasByRegionSlug[r.Slug] = r.Comunas
	}

	return snap
}

// Store holds the last successfully built snapshot and serves all reads.
//
// Publication is a single pointer swap: readers either see the previous
// complete snapshot or the new complete snapshot, never a half-written
// state, even if two initializations overlap. A Store starts with an
// empty snapshot (fixed display name, zero categories, no regions), so
// readers that race ahead of initialization observe empty defaults
// rather than blocking or erroring.
type Store struct {
	snap atomic.Pointer[Snapshot]
}

// NewStore returns a store populated with the empty snapshot.
func NewStore() *Store {
	s := &Store{}
	s.snap.Store(NewSnapshot(nil, nil))
	return s
}

// Publish replaces the current snapshot.
func (s *Store) Publish(snap *Snapshot) {
	s.snap.Store(snap)
}

// Current returns the active snapshot.
func (s *Store) Current() *Snapshot {
	return s.snap.Load()
}

// Products returns the normalized product list.
func (s *Store) Products() []Product {
	return s.Current().Products
}

// Catalog returns the denormalized category view.
func (s *Store) Catalog() Catalog {
	return s.Current().Catalog
}

// Regions returns the mapped regions with their nested comunas.
func (s *Store) Regions() []RegionWithComunas {
	return s.Current().Regions
}

// Comunas returns all comunas flattened across regions, in region order.
func (s *Store) Comunas() []Comuna {
	return s.Current().Comunas
}

// FindRegionBySlug scans the current region list for a matching slug.
func (s *Store) FindRegionBySlug(slug string) (Region, bool) {
	for _, r := range s.Current().Regions {
		if r.Slug == slug {
			return r.Region, true
		}
	}
	return Region{}, false
}

// ComunasForRegionSlug returns the comunas of the region with the given
// slug. Unknown slugs resolve to an empty slice, never an error.
func (s *Store) ComunasForRegionSlug(slug string) []Comuna {
	if comunas, ok := s.Current().comunasByRegionSlug[slug]; ok {
		return comunas
	}
	return []Comuna{}
}
