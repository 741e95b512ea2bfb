package catalog

import (
	"math"
	"testing"
)

// ----------------------------------------------------------------------------
// NormalizeProduct Tests
// ----------------------------------------------------------------------------

func TestNormalizeProduct_UpstreamRecord(t *testing.T) {
	raw := Raw{
		"codigo_producto": "P1",
		"nombre_producto": "Torta",
		"precio_producto": "5000",
		"categoria":       map[string]any{"nombre": "Tortas Cuadradas"},
	}

	got := NormalizeProduct(raw)

	want := Product{
		Code:         "P1",
		ProductName:  "Torta",
		Price:        5000,
		Img:          "",
		Category:     "tortas-cuadradas",
		Desc:         "",
		Stock:        0,
		StockCritico: 0,
	}
	if got != want {
		t.Errorf("NormalizeProduct() = %+v, want %+v", got, want)
	}
}

func TestNormalizeProduct_AliasChains(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want Product
	}{
		{
			name: "primary aliases win",
			raw: Raw{
				"codigo_producto": "A1",
				"code":            "ignored",
				"nombre_producto": "Brazo de Reina",
				"productName":     "ignored",
			},
			want: Product{
				Code:        "A1",
				ProductName: "Brazo de Reina",
				Category:    "sin-categoria",
			},
		},
		{
			name: "english aliases",
			raw: Raw{
				"code":        "B2",
				"productName": "Cheesecake",
				"price":       float64(12990),
				"img":         "/img/cheesecake.jpg",
				"category":    "Postres Frios",
				"desc":        "con frutos rojos",
			},
			want: Product{
				Code:        "B2",
				ProductName: "Cheesecake",
				Price:       12990,
				Img:         "/img/cheesecake.jpg",
				Category:    "postres-frios",
				Desc:        "con frutos rojos",
			},
		},
		{
			name: "short spanish aliases",
			raw: Raw{
				"id":     float64(42),
				"nombre": "Pan de Pascua",
				"precio": float64(8500),
				"imagen": "pan.png",
			},
			want: Product{
				Code:        "42",
				ProductName: "Pan de Pascua",
				Price:       8500,
				Img:         "pan.png",
				Category:    "sin-categoria",
			},
		},
		{
			name: "null values fall through to later aliases",
			raw: Raw{
				"codigo_producto": nil,
				"code":            "C3",
				"nombre_producto": nil,
				"nombre":          "Kuchen",
			},
			want: Product{
				Code:        "C3",
				ProductName: "Kuchen",
				Category:    "sin-categoria",
			},
		},
		{
			name: "empty record gets all defaults",
			raw:  Raw{},
			want: Product{
				ProductName: "Sin nombre",
				Category:    "sin-categoria",
			},
		},
		{
			name: "accented desc alias",
			raw: Raw{
				"descripción_producto": "tres leches",
			},
			want: Product{
				ProductName: "Sin nombre",
				Category:    "sin-categoria",
				Desc:        "tres leches",
			},
		},
		{
			name: "stock aliases",
			raw: Raw{
				"stock":         float64(12),
				"stock_critico": float64(3),
			},
			want: Product{
				ProductName:  "Sin nombre",
				Category:     "sin-categoria",
				Stock:        12,
				StockCritico: 3,
			},
		},
		{
			name: "camelCase critical stock",
			raw: Raw{
				"stockCritico": "5",
			},
			want: Product{
				ProductName:  "Sin nombre",
				Category:     "sin-categoria",
				StockCritico: 5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeProduct(tt.raw)
			if got != tt.want {
				t.Errorf("NormalizeProduct() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeProduct_CategoryResolution(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want string
	}{
		{
			name: "nested category object",
			raw:  Raw{"categoria": map[string]any{"nombre": "Tortas Circulares"}},
			want: "tortas-circulares",
		},
		{
			name: "flat nombre_categoria",
			raw:  Raw{"nombre_categoria": "Sin Azúcar"},
			want: "sin-azucar",
		},
		{
			name: "categoria as plain string",
			raw:  Raw{"categoria": "Vegana"},
			want: "vegana",
		},
		{
			name: "english category",
			raw:  Raw{"category": "Tradicional"},
			want: "tradicional",
		},
		{
			name: "empty nested name falls through",
			raw: Raw{
				"categoria":        map[string]any{"nombre": ""},
				"nombre_categoria": "Especial",
			},
			want: "especial",
		},
		{
			name: "nested object without nombre falls through to default",
			raw:  Raw{"categoria": map[string]any{"id": float64(7)}},
			want: "sin-categoria",
		},
		{
			name: "missing everything",
			raw:  Raw{},
			want: "sin-categoria",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeProduct(tt.raw).Category
			if got != tt.want {
				t.Errorf("category = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeProduct_InvalidPriceIsNaN(t *testing.T) {
	got := NormalizeProduct(Raw{"precio_producto": "gratis"})
	if !math.IsNaN(got.Price) {
		t.Errorf("price = %v, want NaN for non-numeric text", got.Price)
	}
}

// ----------------------------------------------------------------------------
// Coercion Tests
// ----------------------------------------------------------------------------

func TestAsNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    float64
		wantNaN bool
	}{
		{name: "float", input: float64(5000), want: 5000},
		{name: "numeric string", input: "5000", want: 5000},
		{name: "decimal string", input: "12.5", want: 12.5},
		{name: "padded string", input: " 100 ", want: 100},
		{name: "empty string is zero", input: "", want: 0},
		{name: "garbage string", input: "abc", wantNaN: true},
		{name: "bool true", input: true, want: 1},
		{name: "bool false", input: false, want: 0},
		{name: "object", input: map[string]any{}, wantNaN: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := asNumber(tt.input)
			if tt.wantNaN {
				if !math.IsNaN(got) {
					t.Errorf("asNumber(%v) = %v, want NaN", tt.input, got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("asNumber(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAsText(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "string passthrough", input: "P1", want: "P1"},
		{name: "integer-valued float", input: float64(42), want: "42"},
		{name: "decimal float", input: float64(9.5), want: "9.5"},
		{name: "bool", input: true, want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := asText(tt.input)
			if got != tt.want {
				t.Errorf("asText(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
