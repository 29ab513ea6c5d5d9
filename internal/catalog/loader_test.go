package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write catalog file: %v", err)
	}
}

func TestLoadFileSemicolonWithBOMAndPreamble(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "padron.csv", "\ufeffExported catalog\n\n"+
		"Code;Barcode;Name;Manufacturer;Brand;Product Type\n"+
		"A1;7791111;Kibble Mix;Farmina SpA;FARMINA;Dog food\n"+
		";;;;;\n"+
		"B2;7792222;Cat Crunch;Supra SA;SUPRA;Cat food\n")

	records, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Code != "A1" || records[0].Name != "Kibble Mix" || records[0].Brand != "FARMINA" {
		t.Fatalf("unexpected first record %+v", records[0])
	}
	if records[1].ProductType != "Cat food" {
		t.Fatalf("unexpected second record %+v", records[1])
	}
}

func TestLoadFileCommaDelimited(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "export.csv",
		"Code,Barcode,Name,Manufacturer,Brand,Product Type\n"+
			"C3, 7793333 , Bird Seed Deluxe ,Aves Ltda,BELSIR,Bird food\n")

	records, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Name != "Bird Seed Deluxe" {
		t.Fatalf("expected cells to be trimmed, got %q", records[0].Name)
	}
}

func TestLoadFileWithoutHeaderYieldsEmpty(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "junk.csv", "just;some;rows\nwithout;a;header\n")

	records, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty catalog, got %d records", len(records))
	}
}

func TestLoadDirWithoutCSV(t *testing.T) {
	records, err := LoadDir(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty catalog, got %d records", len(records))
	}
}

func TestLoadDirPicksFirstSortedCSV(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "b.csv", "Code;Name\nB1;From B\n")
	writeCatalog(t, dir, "a.csv", "Code;Name\nA1;From A\n")

	records, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Code != "A1" {
		t.Fatalf("expected record from a.csv, got %+v", records)
	}
}

func TestSniffDelimiter(t *testing.T) {
	cases := []struct {
		name string
		data string
		want rune
	}{
		{"semicolons", "a;b;c\n", ';'},
		{"commas", "a,b,c\n", ','},
		{"tabs", "a\tb\tc\n", '\t'},
		{"no delimiter falls back", "plain text\n", ';'},
		{"skips empty leading lines", "\n\na,b\n", ','},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sniffDelimiter(tc.data); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
