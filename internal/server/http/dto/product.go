package dto

// ProductResponse is a catalog search result with its arrival channel.
type ProductResponse struct {
	Code           string `json:"code"`
	Barcode        string `json:"barcode"`
	Name           string `json:"name"`
	Manufacturer   string `json:"manufacturer"`
	Brand          string `json:"brand"`
	ProductType    string `json:"productType"`
	ArrivalChannel string `json:"arrivalChannel"`
}
