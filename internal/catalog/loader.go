package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Upstream resource paths.
const (
	productsPath = "/productos"
	regionsPath  = "/regiones-comunas"
)

// Fetcher is the transport boundary. It retrieves one resource and
// decodes the JSON payload into out. Authentication, redirects and
// timeouts belong to the implementation, not to this package.
type Fetcher interface {
	GetJSON(ctx context.Context, path string, out any) error
}

// Loader orchestrates the ingestion run: fetch, normalize, index,
// publish. It is the only writer to its Store.
type Loader struct {
	api   Fetcher
	store *Store
	log   *slog.Logger
}

// NewLoader wires a loader to its transport and store. A nil logger
// falls back to slog.Default.
func NewLoader(api Fetcher, store *Store, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{api: api, store: store, log: log}
}

// Initialize fetches the product and region resources, maps each through
// its normalizer and publishes a single complete snapshot.
//
// The two fetches run concurrently and fail independently: a failed
// fetch degrades its collection to empty without affecting the other,
// and no error ever propagates to the caller. A backend outage must not
// crash or block the consuming UI; emptiness is the only failure signal.
func (l *Loader) Initialize(ctx context.Context) {
	log := l.log.With("load_id", uuid.NewString())

	var (
		products []Product
		regions  []RegionWithComunas
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var raw []Raw
		if err := l.api.GetJSON(gctx, productsPath, &raw); err != nil {
			log.Warn("product fetch failed, degrading to empty catalog",
				"path", productsPath, "error", err)
			raw = nil
		}
		products = make([]Product, 0, len(raw))
		for _, r := range raw {
			products = append(products, NormalizeProduct(r))
		}
		return nil
	})

	g.Go(func() error {
		var raw []Raw
		if err := l.api.GetJSON(gctx, regionsPath, &raw); err != nil {
			log.Warn("region fetch failed, degrading to empty region list",
				"path", regionsPath, "error", err)
			raw = nil
		}
		regions = MapRegions(raw)
		return nil
	})

	// The goroutines capture their errors locally and always return nil.
	_ = g.Wait()

	snap := NewSnapshot(products, regions)
	l.store.Publish(snap)

	log.Info("store initialized",
		"products", len(snap.Products),
		"categories", len(snap.Catalog.Categorias),
		"regions", len(snap.Regions),
		"comunas", len(snap.Comunas),
	)
}
