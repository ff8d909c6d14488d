package catalog

// Option pairs a filter value with its display label for UI collaborators.
type Option struct {
	Value string
	Label string
}

func CategoryOptions() []Option {
	return []Option{
		{Value: FilterAll, Label: "All Categories"},
		{Value: "t-shirt", Label: "T-Shirts"},
		{Value: "shirt", Label: "Casual Shirts"},
		{Value: "hoodie", Label: "Hoodies"},
	}
}

func RegionOptions() []Option {
	return []Option{
		{Value: FilterAll, Label: "All Regions"},
		{Value: "north", Label: "Northern Vietnam"},
		{Value: "central", Label: "Central Vietnam"},
		{Value: "south", Label: "Southern Vietnam"},
	}
}

func SortOptions() []Option {
	return []Option{
		{Value: string(SortNewest), Label: "Newest First"},
		{Value: string(SortPriceLow), Label: "Price: Low to High"},
		{Value: string(SortPriceHigh), Label: "Price: High to Low"},
		{Value: string(SortMostLoved), Label: "Most Loved"},
	}
}
