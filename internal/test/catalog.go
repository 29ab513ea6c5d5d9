package test

import (
	"github.com/sucan/ordertrack/internal/catalog"
	"github.com/sucan/ordertrack/internal/domain/model"
)

// FixtureRecords returns a small catalog covering known and unknown brands.
func FixtureRecords() []model.ProductRecord {
	return []model.ProductRecord{
		{Code: "A1", Barcode: "7791234560011", Name: "Kibble Mix", Manufacturer: "Farmina SpA", Brand: "FARMINA", ProductType: "Dog food"},
		{Code: "B2", Barcode: "7791234560028", Name: "Cat Crunch", Manufacturer: "Supra SA", Brand: "SUPRA", ProductType: "Cat food"},
		{Code: "C3", Barcode: "7791234560035", Name: "Bird Seed Deluxe", Manufacturer: "Aves Ltda", Brand: "UNKNOWN BRAND", ProductType: "Bird food"},
	}
}

// FixtureIndex builds a catalog index over FixtureRecords.
func FixtureIndex() *catalog.Index {
	return catalog.NewIndex(FixtureRecords())
}
