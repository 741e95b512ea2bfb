package catalog

import "strings"

// BuildCatalog groups products into categories and assembles the full
// catalog view. It is a pure function of its input: category ids start
// at 1 and follow first-seen order, products keep their arrival order
// within each category, and re-running with the same input produces the
// same catalog.
//
// Each category embeds a copy of the product fields rather than a
// reference; the copy must stay structurally equal to the Product it was
// taken from, which holds because catalogs are only ever rebuilt whole.
func BuildCatalog(products []Product) Catalog {
	cat := Catalog{
		NombrePasteleria: StoreName,
		Categorias:       []Category{},
	}

	// category slug -> position in cat.Categorias
	seen := make(map[string]int)

	for _, p := range products {
		key := p.Category
		if key == "" {
			key = "sin-categoria"
		}

		pos, ok := seen[key]
		if !ok {
			pos = len(cat.Categorias)
			seen[key] = pos
			cat.Categorias = append(cat.Categorias, Category{
				ID: pos + 1,
				// Lossy label: the original casing and accents are not
				// recoverable from the slug.
				Nombre:    strings.ReplaceAll(key, "-", " "),
				Productos: []CategoryProduct{},
			})
		}

		cat.Categorias[pos].Productos = append(cat.Categorias[pos].Productos, CategoryProduct{
			CodigoProducto:      p.Code,
			NombreProducto:      p.ProductName,
			PrecioProducto:      p.Price,
			DescripcionProducto: p.Desc,
			ImagenProducto:      p.Img,
			Stock:               p.Stock,
			StockCritico:        p.StockCritico,
		})
	}

	return cat
}
