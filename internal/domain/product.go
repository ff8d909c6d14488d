package domain

import "strings"

type Category string

const (
	CategoryTShirt  Category = "t-shirt"
	CategoryShirt   Category = "shirt"
	CategoryHoodie  Category = "hoodie"
	CategoryCuisine Category = "cuisine"
)

type Region string

const (
	RegionNorth   Region = "north"
	RegionCentral Region = "central"
	RegionSouth   Region = "south"
)

// Product is a catalog record. Products are built once at startup from the
// embedded seed data and never mutated afterwards.
type Product struct {
	ID            int
	Name          string
	Price         Money
	OriginalPrice *Money // set only while the product is on sale
	Image         string
	Images        []string
	Description   string
	Category      Category
	Region        Region
	CulturalTheme string
	Sizes         []string
	Colors        []string
	IsNew         bool
	IsFavorite    bool
}

func (p Product) OnSale() bool {
	return p.OriginalPrice != nil
}

// Slug is the URL path segment for the product detail page: the name
// lower-cased with whitespace runs collapsed to a single dash.
func (p Product) Slug() string {
	return strings.Join(strings.Fields(strings.ToLower(p.Name)), "-")
}
