// Package catalog holds the static product list and the query engine behind
// the shop page. The catalog is read-only: it is decoded once from the
// embedded seed file and shared by value afterwards.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tradwear/storefront/internal/domain"
	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var seedYAML []byte

type Catalog struct {
	products []domain.Product
	byID     map[int]int
	bySlug   map[string]int
}

type seedFile struct {
	Currency string        `yaml:"currency"`
	Products []seedProduct `yaml:"products"`
}

type seedProduct struct {
	ID            int      `yaml:"id"`
	Name          string   `yaml:"name"`
	Price         string   `yaml:"price"`
	OriginalPrice string   `yaml:"original_price"`
	Image         string   `yaml:"image"`
	Description   string   `yaml:"description"`
	Category      string   `yaml:"category"`
	Region        string   `yaml:"region"`
	CulturalTheme string   `yaml:"cultural_theme"`
	Sizes         []string `yaml:"sizes"`
	Colors        []string `yaml:"colors"`
	IsNew         bool     `yaml:"is_new"`
	IsFavorite    bool     `yaml:"is_favorite"`
}

// Load builds the catalog from the embedded seed data.
func Load() (*Catalog, error) {
	return Parse(seedYAML)
}

// Parse decodes a catalog seed document. Product IDs and slugs must be unique.
func Parse(data []byte) (*Catalog, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	unit, err := currency.ParseISO(file.Currency)
	if err != nil {
		return nil, fmt.Errorf("currency[%s] is not valid: %w", file.Currency, err)
	}

	c := &Catalog{
		byID:   make(map[int]int, len(file.Products)),
		bySlug: make(map[string]int, len(file.Products)),
	}

	for _, sp := range file.Products {
		product, err := mapSeedProductToDomain(sp, unit)
		if err != nil {
			return nil, fmt.Errorf("mapSeedProductToDomain: %w", err)
		}

		if _, ok := c.byID[product.ID]; ok {
			return nil, fmt.Errorf("duplicate product id %d", product.ID)
		}
		slug := product.Slug()
		if _, ok := c.bySlug[slug]; ok {
			return nil, fmt.Errorf("duplicate product slug %q", slug)
		}

		c.byID[product.ID] = len(c.products)
		c.bySlug[slug] = len(c.products)
		c.products = append(c.products, product)
	}

	return c, nil
}

func mapSeedProductToDomain(sp seedProduct, unit currency.Unit) (domain.Product, error) {
	if sp.Name == "" {
		return domain.Product{}, fmt.Errorf("product %d has no name", sp.ID)
	}

	amount, err := decimal.NewFromString(sp.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("price[%s] is not valid: %w", sp.Price, err)
	}

	product := domain.Product{
		ID:            sp.ID,
		Name:          sp.Name,
		Price:         domain.NewMoney(amount, unit),
		Image:         sp.Image,
		Description:   sp.Description,
		Category:      domain.Category(sp.Category),
		Region:        domain.Region(sp.Region),
		CulturalTheme: sp.CulturalTheme,
		Sizes:         sp.Sizes,
		Colors:        sp.Colors,
		IsNew:         sp.IsNew,
		IsFavorite:    sp.IsFavorite,
	}

	if sp.OriginalPrice != "" {
		original, err := decimal.NewFromString(sp.OriginalPrice)
		if err != nil {
			return domain.Product{}, fmt.Errorf("original_price[%s] is not valid: %w", sp.OriginalPrice, err)
		}
		m := domain.NewMoney(original, unit)
		product.OriginalPrice = &m
	}

	return product, nil
}

// Products returns a copy of the full product list in seed order.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) FindByID(id int) (domain.Product, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[idx], true
}

// FindBySlug resolves the /product/:slug route.
func (c *Catalog) FindBySlug(slug string) (domain.Product, bool) {
	idx, ok := c.bySlug[slug]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[idx], true
}

// Query applies criteria to the catalog, see Apply.
func (c *Catalog) Query(criteria Criteria) []domain.Product {
	return criteria.Apply(c.products)
}
