package schema

// Collection names used by the product and order flows.
const (
	ProductCollection = "product"
	OrderCollection   = "order"
)

// Product is a catalog entry. This is the shape that gets persisted;
// the store assigns the identifier at insertion time.
type Product struct {
	// Title is the display name of the product.
	Title string `json:"title" bson:"title"`

	// Description is optional marketing copy.
	Description string `json:"description,omitempty" bson:"description,omitempty"`

	// Price in the shop currency. Never negative.
	Price float64 `json:"price" bson:"price"`

	// Category groups products, e.g. "bouquet" or "plant".
	Category string `json:"category" bson:"category"`

	// InStock defaults to true when the caller omits it.
	InStock bool `json:"in_stock" bson:"in_stock"`

	// Image is an optional URI or path to a product picture.
	Image string `json:"image,omitempty" bson:"image,omitempty"`
}

// OrderItem is a line in an order. Title and Price are denormalized
// snapshots taken at order time; ProductID is an opaque reference that
// is never checked against the product collection.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Title     string  `json:"title" bson:"title"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Price     float64 `json:"price" bson:"price"`
}

// CustomerInfo identifies who placed an order. The email is stored as
// given; no format check is applied.
type CustomerInfo struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

// Order is a submitted order. Items may be empty. Total is whatever the
// caller sent; it is never recomputed from the items.
type Order struct {
	Items    []OrderItem  `json:"items" bson:"items"`
	Total    float64      `json:"total" bson:"total"`
	Customer CustomerInfo `json:"customer" bson:"customer"`
	Note     string       `json:"note,omitempty" bson:"note,omitempty"`
}
