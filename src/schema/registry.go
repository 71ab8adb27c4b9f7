package schema

import "sort"

// FieldDef describes a single field of a record shape.
type FieldDef struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Minimum  *float64 `json:"minimum,omitempty"`

	// Ref names another registered shape for object and array fields.
	Ref string `json:"ref,omitempty"`
}

// ShapeDef is the structural definition of one record shape.
type ShapeDef struct {
	Title  string     `json:"title"`
	Fields []FieldDef `json:"fields"`
}

// Registry holds the structural definition of every record shape the
// service accepts, keyed by shape name. It is built once at startup and
// read-only afterwards, so handlers may share it freely.
type Registry struct {
	shapes map[string]ShapeDef
}

func minimum(v float64) *float64 {
	return &v
}

// NewRegistry builds the full shape registry.
func NewRegistry() *Registry {
	shapes := map[string]ShapeDef{
		"ProductIn": {
			Title: "ProductIn",
			Fields: []FieldDef{
				{Name: "title", Type: "string", Required: true},
				{Name: "description", Type: "string"},
				{Name: "price", Type: "number", Required: true, Minimum: minimum(0)},
				{Name: "category", Type: "string", Required: true},
				{Name: "in_stock", Type: "boolean"},
				{Name: "image", Type: "string"},
			},
		},
		"Product": {
			Title: "Product",
			Fields: []FieldDef{
				{Name: "_id", Type: "string"},
				{Name: "title", Type: "string", Required: true},
				{Name: "description", Type: "string"},
				{Name: "price", Type: "number", Required: true, Minimum: minimum(0)},
				{Name: "category", Type: "string", Required: true},
				{Name: "in_stock", Type: "boolean"},
				{Name: "image", Type: "string"},
			},
		},
		"OrderItem": {
			Title: "OrderItem",
			Fields: []FieldDef{
				{Name: "product_id", Type: "string", Required: true},
				{Name: "title", Type: "string", Required: true},
				{Name: "quantity", Type: "integer", Required: true, Minimum: minimum(1)},
				{Name: "price", Type: "number", Required: true, Minimum: minimum(0)},
			},
		},
		"CustomerInfo": {
			Title: "CustomerInfo",
			Fields: []FieldDef{
				{Name: "name", Type: "string", Required: true},
				{Name: "email", Type: "string", Required: true},
			},
		},
		"OrderIn": {
			Title: "OrderIn",
			Fields: []FieldDef{
				{Name: "items", Type: "array", Required: true, Ref: "OrderItem"},
				{Name: "total", Type: "number", Required: true, Minimum: minimum(0)},
				{Name: "customer", Type: "object", Required: true, Ref: "CustomerInfo"},
				{Name: "note", Type: "string"},
			},
		},
	}

	return &Registry{shapes: shapes}
}

// Definitions returns every registered shape keyed by name. The map is
// a copy; callers may not mutate the registry through it.
func (r *Registry) Definitions() map[string]ShapeDef {
	out := make(map[string]ShapeDef, len(r.shapes))
	for name, def := range r.shapes {
		out[name] = def
	}
	return out
}

// Shape returns one shape definition by name.
func (r *Registry) Shape(name string) (ShapeDef, bool) {
	def, ok := r.shapes[name]
	return def, ok
}

// Names returns all registered shape names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.shapes))
	for name := range r.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
