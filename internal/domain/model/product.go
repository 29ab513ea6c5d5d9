package model

// ProductRecord is a single catalog entry. The catalog is loaded once at
// startup and records are never mutated afterwards.
type ProductRecord struct {
	Code         string `json:"code"`
	Barcode      string `json:"barcode"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Brand        string `json:"brand"`
	ProductType  string `json:"productType"`
}

// ProductSnapshot is the subset of catalog data frozen into an order at
// creation time. Later catalog changes do not affect placed orders.
type ProductSnapshot struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	Brand          string `json:"brand"`
	ArrivalChannel string `json:"arrivalChannel"`
}
