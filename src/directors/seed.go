package directors

import "emeraldshop/src/schema"

// SampleProducts returns the fixed catalog a fresh deployment is seeded
// with, in insertion order. Every entry satisfies the ProductIn
// constraints.
func SampleProducts() []schema.Product {
	return []schema.Product{
		{
			Title:       "Emerald Roses",
			Description: "A lush bouquet of deep green-tinted roses, perfect for elegant occasions.",
			Price:       39.0,
			Category:    "bouquet",
			InStock:     true,
			Image:       "/flowers/emerald-roses.jpg",
		},
		{
			Title:       "Mint Tulip Mix",
			Description: "Soft tulips with a mint hue, bundled in recyclable wrap.",
			Price:       29.0,
			Category:    "bouquet",
			InStock:     true,
			Image:       "/flowers/mint-tulips.jpg",
		},
		{
			Title:       "Jade Succulent Set",
			Description: "Three easy-care succulents in matte emerald pots.",
			Price:       24.0,
			Category:    "plant",
			InStock:     true,
			Image:       "/flowers/jade-succulents.jpg",
		},
		{
			Title:       "Forest Fern Basket",
			Description: "A full-bodied fern in a handwoven basket.",
			Price:       34.0,
			Category:    "plant",
			InStock:     true,
			Image:       "/flowers/forest-fern.jpg",
		},
	}
}
