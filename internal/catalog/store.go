// Package catalog owns the current set of sellable products. It is a plain
// in-memory store; callers serialize access and trigger persistence.
package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"smartpos/internal/domain"
)

const (
	ErrMsgNameRequired  = "Product name is required"
	ErrMsgPricePositive = "Product price must be positive"
	ErrMsgNotFound      = "Product does not exist"
	ErrMsgNotConfirmed  = "Delete requires confirmation"
)

type Store struct {
	products []*domain.Product
	byID     map[string]*domain.Product
}

func NewStore() *Store {
	return &Store{byID: make(map[string]*domain.Product)}
}

// Replace swaps the full product list, e.g. after loading a persisted slot.
func (s *Store) Replace(products []*domain.Product) {
	s.products = s.products[:0]
	s.byID = make(map[string]*domain.Product, len(products))
	for _, p := range products {
		cp := *p
		s.products = append(s.products, &cp)
		s.byID[cp.ID] = &cp
	}
}

// List returns copies of all products in catalog order.
func (s *Store) List() []domain.Product {
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *p)
	}
	return out
}

// Filter returns products matching the category (CategoryAll matches
// everything) and a case-insensitive name substring.
func (s *Store) Filter(category, query string) []domain.Product {
	query = strings.ToLower(query)
	var out []domain.Product
	for _, p := range s.products {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		out = append(out, *p)
	}
	return out
}

func (s *Store) Get(id string) (domain.Product, bool) {
	p, ok := s.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return *p, true
}

func (s *Store) Len() int {
	return len(s.products)
}

// ProductInput carries the editable fields of a product. Zero-value cost,
// stock and image are legal and take defaults on create.
type ProductInput struct {
	Name     string
	Price    float64
	Cost     float64
	Category string
	Stock    int
	Image    string
}

func (in *ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.NewInvalidArgument(ErrMsgNameRequired)
	}
	if in.Price <= 0 {
		return domain.NewInvalidArgument(ErrMsgPricePositive)
	}
	return nil
}

// Create validates the input and appends a new product with a generated id.
// Category defaults to DefaultCategory, the image to a generated placeholder.
func (s *Store) Create(in ProductInput) (domain.Product, error) {
	if err := in.validate(); err != nil {
		return domain.Product{}, err
	}
	p := &domain.Product{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(in.Name),
		Price:    in.Price,
		Cost:     in.Cost,
		Category: in.Category,
		Stock:    in.Stock,
		Image:    in.Image,
	}
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	if p.Image == "" {
		p.Image = fmt.Sprintf("https://picsum.photos/seed/%s/200", p.ID)
	}
	s.products = append(s.products, p)
	s.byID[p.ID] = p
	return *p, nil
}

// Update replaces the editable fields of an existing product.
func (s *Store) Update(id string, in ProductInput) (domain.Product, error) {
	if err := in.validate(); err != nil {
		return domain.Product{}, err
	}
	p, ok := s.byID[id]
	if !ok {
		return domain.Product{}, domain.NewFailedPrecondition(ErrMsgNotFound)
	}
	p.Name = strings.TrimSpace(in.Name)
	p.Price = in.Price
	p.Cost = in.Cost
	if in.Category != "" {
		p.Category = in.Category
	}
	p.Stock = in.Stock
	if in.Image != "" {
		p.Image = in.Image
	}
	return *p, nil
}

// Delete removes the product. The confirmed flag is the explicit confirmation
// step for a destructive action; without it the catalog is untouched.
// Historical orders keep their denormalized copies and are unaffected.
func (s *Store) Delete(id string, confirmed bool) error {
	if !confirmed {
		return domain.NewFailedPrecondition(ErrMsgNotConfirmed)
	}
	if _, ok := s.byID[id]; !ok {
		return domain.NewFailedPrecondition(ErrMsgNotFound)
	}
	delete(s.byID, id)
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			break
		}
	}
	return nil
}

// ApplyDeductions decrements stock for each line's product, floored at zero.
// Overselling is clamped, not rejected; that is accepted policy for this
// terminal. Returns the ids of products whose stock was clamped.
func (s *Store) ApplyDeductions(items []domain.OrderItem) (clamped []string) {
	for _, item := range items {
		p, ok := s.byID[item.ProductID]
		if !ok {
			continue
		}
		next := p.Stock - item.Quantity
		if next < 0 {
			next = 0
			clamped = append(clamped, p.ID)
		}
		p.Stock = next
	}
	return clamped
}
