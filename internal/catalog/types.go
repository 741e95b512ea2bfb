// Package catalog is the data-ingestion and normalization core of the
// storefront. It converts heterogeneous upstream payloads into a small
// set of canonical models (Product, Catalog, Region, Comuna), builds the
// derived lookup indexes, and exposes them through an immutable-snapshot
// Store. Everything else in the application only reads from this package.
package catalog

// Product is the canonical product shape. Upstream records arrive under
// several competing field names; NormalizeProduct resolves them into this
// one struct. Code is expected to be unique but is not verified.
type Product struct {
	Code         string  `json:"code"`
	ProductName  string  `json:"productName"`
	Price        float64 `json:"price"`
	Img          string  `json:"img"`
	Category     string  `json:"category"` // always a slug
	Desc         string  `json:"desc"`
	Stock        float64 `json:"stock"`
	StockCritico float64 `json:"stockCritico"`
}

// CategoryProduct is the embedded copy of a product inside a category.
// The JSON field names match the upstream commerce API so the existing
// storefront UI consumes the catalog unchanged.
type CategoryProduct struct {
	CodigoProducto      string  `json:"codigo_producto"`
	NombreProducto      string  `json:"nombre_producto"`
	PrecioProducto      float64 `json:"precio_producto"`
	DescripcionProducto string  `json:"descripción_producto"`
	ImagenProducto      string  `json:"imagen_producto"`
	Stock               float64 `json:"stock"`
	StockCritico        float64 `json:"stock_critico"`
}

// Category groups products that share a category slug. Ids are assigned
// sequentially from 1 in first-seen order of the input products, so two
// builds over differently ordered input may assign different ids.
type Category struct {
	ID        int               `json:"id_categoria"`
	Nombre    string            `json:"nombre_categoria"`
	Productos []CategoryProduct `json:"productos"`
}

// Catalog is the denormalized, UI-ready view of the product list. It is
// rebuilt from scratch on every build, never mutated incrementally.
type Catalog struct {
	NombrePasteleria string     `json:"nombre_pasteleria"`
	Categorias       []Category `json:"categorias"`
}

// Region is a top-level administrative region.
type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Comuna is a sub-region unit. Its ID is the parent region slug and the
// comuna slug joined by a hyphen, so uniqueness is only as strong as
// slug uniqueness.
type Comuna struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	RegionID   string `json:"regionId"`
	RegionSlug string `json:"regionSlug"`
}

// RegionWithComunas is a region plus its nested comuna list, in the
// order the upstream payload delivered them.
type RegionWithComunas struct {
	Region
	Comunas []Comuna `json:"comunas"`
}

// StoreName is the fixed display name of the storefront.
const StoreName = "Pasteleria Mil Sabores"
