package repository

// ProductListFilter narrows a product listing. Dimensions are resolved in
// priority order: featured, then search, then category, then vendor, then the
// unfiltered active set.
type ProductListFilter struct {
	CategoryID uint
	VendorID   uint
	Search     string
	Featured   bool
	OnlyActive bool
}

// VendorListFilter narrows a vendor listing.
type VendorListFilter struct {
	Featured bool
}
