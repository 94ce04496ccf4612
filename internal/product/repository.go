package product

import (
	"context"
	"sort"
	"strings"
	"time"

	"koffiehuis-be/internal/store"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]Product, error)
	GetByID(ctx context.Context, id int) (Product, error)
	Create(ctx context.Context, input NewProductInput) (Product, error)
	Update(ctx context.Context, id int, input UpdateProductInput) (Product, error)
	Delete(ctx context.Context, id int) (Product, error)
}

type repository struct {
	col      *store.Collection[Product]
	collator *collate.Collator
}

// NewRepository opens the products collection, creating it empty on
// first use.
func NewRepository(dataDir string) (Repository, error) {
	col := store.NewCollection[Product](dataDir, "products")
	if err := col.EnsureExists(nil); err != nil {
		return nil, err
	}
	return &repository{
		col:      col,
		collator: collate.New(language.Dutch, collate.IgnoreCase),
	}, nil
}

func (r *repository) List(ctx context.Context, opts ListOptions) ([]Product, error) {
	products, err := r.col.ReadAll()
	if err != nil {
		return nil, err
	}

	if opts.Category != "" && opts.Category != "all" {
		filtered := products[:0]
		for _, p := range products {
			if p.Category == opts.Category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if opts.Search != "" {
		needle := strings.ToLower(opts.Search)
		filtered := products[:0]
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.Description), needle) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	switch opts.Sort {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].Price.LessThan(products[i].Price)
		})
	case SortName:
		sort.SliceStable(products, func(i, j int) bool {
			return r.collator.CompareString(products[i].Name, products[j].Name) < 0
		})
	}

	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (Product, error) {
	products, err := r.col.ReadAll()
	if err != nil {
		return Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}

func (r *repository) Create(ctx context.Context, input NewProductInput) (Product, error) {
	var created Product
	err := r.col.Update(func(products []Product) ([]Product, error) {
		ids := make([]int, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID)
		}

		now := time.Now().UTC()
		created = Product{
			ID:          store.NextID(ids),
			Name:        input.Name,
			Category:    input.Category,
			Price:       input.Price,
			Description: input.Description,
			Badge:       input.Badge,
			Image:       input.Image,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return append(products, created), nil
	})
	if err != nil {
		return Product{}, err
	}
	return created, nil
}

func (r *repository) Update(ctx context.Context, id int, input UpdateProductInput) (Product, error) {
	var updated Product
	err := r.col.Update(func(products []Product) ([]Product, error) {
		for i := range products {
			if products[i].ID != id {
				continue
			}
			merge(&products[i], input)
			products[i].UpdatedAt = time.Now().UTC()
			updated = products[i]
			return products, nil
		}
		return nil, ErrProductNotFound
	})
	if err != nil {
		return Product{}, err
	}
	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id int) (Product, error) {
	var removed Product
	err := r.col.Update(func(products []Product) ([]Product, error) {
		for i := range products {
			if products[i].ID != id {
				continue
			}
			removed = products[i]
			return append(products[:i], products[i+1:]...), nil
		}
		return nil, ErrProductNotFound
	})
	if err != nil {
		return Product{}, err
	}
	return removed, nil
}

// merge copies the provided fields onto p. The id is never touched.
func merge(p *Product, input UpdateProductInput) {
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Badge != nil {
		if *input.Badge == "" {
			p.Badge = nil
		} else {
			p.Badge = input.Badge
		}
	}
	if input.Image != nil {
		p.Image = input.Image
	}
}
