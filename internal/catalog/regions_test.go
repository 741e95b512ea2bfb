package catalog

import "testing"

func TestMapRegions_StringComunas(t *testing.T) {
	raw := []Raw{
		{
			"region":  "Metropolitana",
			"comunas": []any{"Maipú", "Providencia"},
		},
	}

	regions := MapRegions(raw)
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}

	r := regions[0]
	if r.Slug != "metropolitana" {
		t.Errorf("region slug = %q, want %q", r.Slug, "metropolitana")
	}
	if r.ID != "Metropolitana" {
		t.Errorf("region id = %q, want name fallback %q", r.ID, "Metropolitana")
	}
	if len(r.Comunas) != 2 {
		t.Fatalf("got %d comunas, want 2", len(r.Comunas))
	}

	wantIDs := []string{"metropolitana-maipu", "metropolitana-providencia"}
	for i, c := range r.Comunas {
		if c.ID != wantIDs[i] {
			t.Errorf("comuna %d id = %q, want %q", i, c.ID, wantIDs[i])
		}
		if c.RegionSlug != "metropolitana" {
			t.Errorf("comuna %d regionSlug = %q, want %q", i, c.RegionSlug, "metropolitana")
		}
		if c.RegionID != "Metropolitana" {
			t.Errorf("comuna %d regionId = %q, want %q", i, c.RegionID, "Metropolitana")
		}
	}
	if r.Comunas[0].Slug != "maipu" || r.Comunas[1].Slug != "providencia" {
		t.Errorf("comuna order not preserved: %q, %q", r.Comunas[0].Slug, r.Comunas[1].Slug)
	}
}

func TestMapRegions_ObjectComunas(t *testing.T) {
	raw := []Raw{
		{
			"region": "Bío-Bío",
			"id":     float64(8),
			"comunas": []any{
				map[string]any{"nombre": "Concepción"},
				map[string]any{"nombre": "Talcahuano"},
			},
		},
	}

	regions := MapRegions(raw)
	r := regions[0]

	if r.ID != "8" {
		t.Errorf("region id = %q, want %q", r.ID, "8")
	}
	if r.Slug != "bio-bio" {
		t.Errorf("region slug = %q, want %q", r.Slug, "bio-bio")
	}
	if r.Comunas[0].ID != "bio-bio-concepcion" {
		t.Errorf("comuna id = %q, want %q", r.Comunas[0].ID, "bio-bio-concepcion")
	}
	if r.Comunas[0].Name != "Concepción" {
		t.Errorf("comuna name = %q, want %q", r.Comunas[0].Name, "Concepción")
	}
}

func TestMapRegions_NombreFallback(t *testing.T) {
	raw := []Raw{
		{"nombre": "Valparaíso", "comunas": []any{"Viña del Mar"}},
	}

	r := MapRegions(raw)[0]
	if r.Name != "Valparaíso" {
		t.Errorf("region name = %q, want %q", r.Name, "Valparaíso")
	}
	if r.Slug != "valparaiso" {
		t.Errorf("region slug = %q, want %q", r.Slug, "valparaiso")
	}
	if r.Comunas[0].ID != "valparaiso-vina-del-mar" {
		t.Errorf("comuna id = %q, want %q", r.Comunas[0].ID, "valparaiso-vina-del-mar")
	}
}

func TestMapRegions_EmptyNameUsesIDSeed(t *testing.T) {
	raw := []Raw{
		{"id": float64(99), "comunas": []any{"Somewhere"}},
	}

	r := MapRegions(raw)[0]
	if r.Slug != "region-99" {
		t.Errorf("region slug = %q, want %q", r.Slug, "region-99")
	}
	if r.Comunas[0].ID != "region-99-somewhere" {
		t.Errorf("comuna id = %q, want %q", r.Comunas[0].ID, "region-99-somewhere")
	}
}

func TestMapRegions_MalformedEntries(t *testing.T) {
	raw := []Raw{
		{},
		{"region": "Sur", "comunas": nil},
	}

	regions := MapRegions(raw)
	if len(regions) != 2 {
		t.Fatalf("got %d regions, want 2", len(regions))
	}
	for i, r := range regions {
		if r.Comunas == nil {
			t.Errorf("region %d Comunas is nil, want empty slice", i)
		}
	}
}

func TestMapRegions_EmptyInput(t *testing.T) {
	regions := MapRegions(nil)
	if regions == nil {
		t.Fatal("MapRegions(nil) returned nil, want empty slice")
	}
	if len(regions) != 0 {
		t.Errorf("got %d regions, want 0", len(regions))
	}
}
