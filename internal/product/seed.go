package product

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Products []seedRecord `yaml:"products"`
}

type seedRecord struct {
	ID          int     `yaml:"id"`
	Name        string  `yaml:"name"`
	Price       float64 `yaml:"price"`
	Description string  `yaml:"description"`
	Quantity    int     `yaml:"quantity"`
}

// DefaultSeed is the catalog the store opens with when no seed file is configured.
func DefaultSeed() []*Product {
	return []*Product{
		{ID: 1, Name: "Laptop", Price: decimal.NewFromInt(1000), Description: "High performance laptop", Quantity: 10},
		{ID: 2, Name: "Smartphone", Price: decimal.NewFromInt(500), Description: "Latest model smartphone", Quantity: 20},
		{ID: 3, Name: "Tablet", Price: decimal.NewFromInt(300), Description: "High resolution tablet", Quantity: 15},
		{ID: 4, Name: "Headphones", Price: decimal.NewFromInt(100), Description: "Noise cancelling headphones", Quantity: 25},
		{ID: 5, Name: "Smartwatch", Price: decimal.NewFromInt(200), Description: "Feature rich smartwatch", Quantity: 30},
		{ID: 6, Name: "Camera", Price: decimal.NewFromInt(800), Description: "High resolution camera", Quantity: 8},
		{ID: 7, Name: "Printer", Price: decimal.NewFromInt(150), Description: "Wireless printer", Quantity: 12},
		{ID: 8, Name: "Monitor", Price: decimal.NewFromInt(250), Description: "4K monitor", Quantity: 18},
		{ID: 9, Name: "Keyboard", Price: decimal.NewFromInt(50), Description: "Mechanical keyboard", Quantity: 40},
		{ID: 10, Name: "Mouse", Price: decimal.NewFromInt(30), Description: "Wireless mouse", Quantity: 50},
	}
}

// LoadSeed decodes a YAML catalog:
//
//	products:
//	  - id: 1
//	    name: Laptop
//	    price: 1000
//	    description: High performance laptop
//	    quantity: 10
func LoadSeed(r io.Reader) ([]*Product, error) {
	var f seedFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return []*Product{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	seen := make(map[int]struct{}, len(f.Products))
	out := make([]*Product, 0, len(f.Products))
	for i, rec := range f.Products {
		switch {
		case rec.ID <= 0:
			return nil, fmt.Errorf("%w: entry %d: id must be positive", ErrInvalidSeed, i)
		case rec.Name == "":
			return nil, fmt.Errorf("%w: entry %d: name is required", ErrInvalidSeed, i)
		case rec.Price < 0:
			return nil, fmt.Errorf("%w: entry %d: price must not be negative", ErrInvalidSeed, i)
		case rec.Quantity < 0:
			return nil, fmt.Errorf("%w: entry %d: quantity must not be negative", ErrInvalidSeed, i)
		}
		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidSeed, rec.ID)
		}
		seen[rec.ID] = struct{}{}

		out = append(out, &Product{
			ID:          rec.ID,
			Name:        rec.Name,
			Price:       decimal.NewFromFloat(rec.Price),
			Description: rec.Description,
			Quantity:    rec.Quantity,
		})
	}
	return out, nil
}

// LoadSeedFile reads path with LoadSeed; an empty path yields DefaultSeed.
func LoadSeedFile(path string) ([]*Product, error) {
	if path == "" {
		return DefaultSeed(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog seed: %w", err)
	}
	defer f.Close()
	return LoadSeed(f)
}
