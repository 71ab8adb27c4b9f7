package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// FieldViolation is one constraint failure on one field.
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports every field that failed validation for one
// input, not just the first. A record that produced one of these never
// reaches the store.
type ValidationError struct {
	Shape  string
	Fields []FieldViolation

	err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Shape, e.err)
}

func (e *ValidationError) Unwrap() error { return e.err }

func newValidationError(shape string, violations []FieldViolation) *ValidationError {
	var err error
	for _, v := range violations {
		err = multierr.Append(err, fmt.Errorf("%s %s", v.Field, v.Reason))
	}
	return &ValidationError{Shape: shape, Fields: violations, err: err}
}

func malformedBody(shape string, err error) *ValidationError {
	return newValidationError(shape, []FieldViolation{
		{Field: "body", Reason: "is not valid JSON: " + err.Error()},
	})
}

// productIn mirrors Product with pointer fields so that absent and
// zero-valued inputs can be told apart.
type productIn struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	InStock     *bool    `json:"in_stock"`
	Image       *string  `json:"image"`
}

// DecodeProduct parses raw JSON into a Product, checking every field
// constraint. On failure it returns a *ValidationError listing all
// violations at once.
func DecodeProduct(raw []byte) (*Product, error) {
	var in productIn
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, malformedBody("ProductIn", err)
	}

	var violations []FieldViolation
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		violations = append(violations, FieldViolation{Field: "title", Reason: "is required and must be non-empty"})
	}
	if in.Price == nil {
		violations = append(violations, FieldViolation{Field: "price", Reason: "is required"})
	} else if *in.Price < 0 {
		violations = append(violations, FieldViolation{Field: "price", Reason: "must be >= 0"})
	}
	if in.Category == nil {
		violations = append(violations, FieldViolation{Field: "category", Reason: "is required"})
	}
	if len(violations) > 0 {
		return nil, newValidationError("ProductIn", violations)
	}

	product := &Product{
		Title:    *in.Title,
		Price:    *in.Price,
		Category: *in.Category,
		InStock:  true,
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.InStock != nil {
		product.InStock = *in.InStock
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	return product, nil
}

type orderItemIn struct {
	ProductID *string  `json:"product_id"`
	Title     *string  `json:"title"`
	Quantity  *int     `json:"quantity"`
	Price     *float64 `json:"price"`
}

type customerIn struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type orderIn struct {
	Items    *[]orderItemIn `json:"items"`
	Total    *float64       `json:"total"`
	Customer *customerIn    `json:"customer"`
	Note     *string        `json:"note"`
}

// DecodeOrder parses raw JSON into an Order. Every item is validated
// individually; violations carry the item index in the field path. The
// total is accepted as given and never checked against the item sum.
func DecodeOrder(raw []byte) (*Order, error) {
	var in orderIn
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, malformedBody("OrderIn", err)
	}

	var violations []FieldViolation
	if in.Items == nil {
		violations = append(violations, FieldViolation{Field: "items", Reason: "is required"})
	}
	if in.Total == nil {
		violations = append(violations, FieldViolation{Field: "total", Reason: "is required"})
	} else if *in.Total < 0 {
		violations = append(violations, FieldViolation{Field: "total", Reason: "must be >= 0"})
	}
	if in.Customer == nil {
		violations = append(violations, FieldViolation{Field: "customer", Reason: "is required"})
	} else {
		if in.Customer.Name == nil {
			violations = append(violations, FieldViolation{Field: "customer.name", Reason: "is required"})
		}
		if in.Customer.Email == nil {
			violations = append(violations, FieldViolation{Field: "customer.email", Reason: "is required"})
		}
	}

	// An empty items list is legal; only present items are checked.
	var items []OrderItem
	if in.Items != nil {
		items = make([]OrderItem, 0, len(*in.Items))
		for i, item := range *in.Items {
			prefix := fmt.Sprintf("items[%d].", i)
			if item.ProductID == nil {
				violations = append(violations, FieldViolation{Field: prefix + "product_id", Reason: "is required"})
			}
			if item.Title == nil {
				violations = append(violations, FieldViolation{Field: prefix + "title", Reason: "is required"})
			}
			if item.Quantity == nil {
				violations = append(violations, FieldViolation{Field: prefix + "quantity", Reason: "is required"})
			} else if *item.Quantity < 1 {
				violations = append(violations, FieldViolation{Field: prefix + "quantity", Reason: "must be >= 1"})
			}
			if item.Price == nil {
				violations = append(violations, FieldViolation{Field: prefix + "price", Reason: "is required"})
			} else if *item.Price < 0 {
				violations = append(violations, FieldViolation{Field: prefix + "price", Reason: "must be >= 0"})
			}
			if item.ProductID != nil && item.Title != nil && item.Quantity != nil && item.Price != nil {
				items = append(items, OrderItem{
					ProductID: *item.ProductID,
					Title:     *item.Title,
					Quantity:  *item.Quantity,
					Price:     *item.Price,
				})
			}
		}
	}

	if len(violations) > 0 {
		return nil, newValidationError("OrderIn", violations)
	}

	order := &Order{
		Items:    items,
		Total:    *in.Total,
		Customer: CustomerInfo{Name: *in.Customer.Name, Email: *in.Customer.Email},
	}
	if in.Note != nil {
		order.Note = *in.Note
	}
	return order, nil
}
