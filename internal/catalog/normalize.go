package catalog

// normalize.go converts one raw upstream product record into the
// canonical Product shape.
//
// The upstream API is inconsistent about field names: the same attribute
// may arrive as codigo_producto, code or id depending on which backend
// produced the row. Resolution is first-present-non-null-wins over a
// fixed alias chain per attribute, and every attribute has a default, so
// NormalizeProduct is total over any object-like input.

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/milsabores/storefront/internal/slug"
)

// Raw is one upstream record as decoded from JSON.
type Raw map[string]any

// Alias chains per canonical attribute. Order matters: the first key
// present with a non-null value wins.
var (
	codeAliases         = []string{"codigo_producto", "code", "id"}
	nameAliases         = []string{"nombre_producto", "productName", "nombre"}
	priceAliases        = []string{"precio_producto", "price", "precio"}
	imgAliases          = []string{"imagen_producto", "img", "imagen"}
	descAliases         = []string{"descripción_producto", "descripcion_producto", "desc"}
	stockAliases        = []string{"stock"}
	stockCriticoAliases = []string{"stock_critico", "stockCritico"}
)

// NormalizeProduct converts an arbitrary upstream record into a Product.
// It never fails: missing or null fields fall through the alias chain to
// the stated default, and non-numeric text in a numeric field yields NaN
// rather than an error.
func NormalizeProduct(raw Raw) Product {
	return Product{
		Code:         textField(raw, codeAliases, ""),
		ProductName:  textField(raw, nameAliases, "Sin nombre"),
		Price:        numberField(raw, priceAliases, 0),
		Img:          textField(raw, imgAliases, ""),
		Category:     slug.Make(categoryName(raw)),
		Desc:         textField(raw, descAliases, ""),
		Stock:        numberField(raw, stockAliases, 0),
		StockCritico: numberField(raw, stockCriticoAliases, 0),
	}
}

// categoryName resolves the display category. Unlike the other chains,
// empty values also fall through here, and a nested category object is
// consulted before the flat aliases.
func categoryName(raw Raw) string {
	if nested, ok := raw["categoria"].(map[string]any); ok {
		if v, ok := nested["nombre"]; ok && v != nil {
			if name := asText(v); name != "" {
				return name
			}
		}
	}
	if s, ok := raw["nombre_categoria"].(string); ok && s != "" {
		return s
	}
	if s, ok := raw["categoria"].(string); ok && s != "" {
		return s
	}
	if s, ok := raw["category"].(string); ok && s != "" {
		return s
	}
	return "sin-categoria"
}

// lookup returns the first alias present with a non-null value.
func lookup(raw Raw, aliases []string) (any, bool) {
	for _, key := range aliases {
		if v, ok := raw[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func textField(raw Raw, aliases []string, def string) string {
	v, ok := lookup(raw, aliases)
	if !ok {
		return def
	}
	return asText(v)
}

func numberField(raw Raw, aliases []string, def float64) float64 {
	v, ok := lookup(raw, aliases)
	if !ok {
		return def
	}
	return asNumber(v)
}

// asText stringifies the value shapes JSON decoding can produce. Numbers
// render without a trailing ".0" so numeric ids read as plain ids.
func asText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(t)
	}
}

// asNumber coerces a value to float64. Empty strings count as zero and
// unparseable text becomes NaN; downstream consumers must guard for it.
func asNumber(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	case bool:
		if t {
			return 1
		}
		return 0
	default:
		return math.NaN()
	}
}
