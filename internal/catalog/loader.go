package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/sucan/ordertrack/internal/domain/model"
)

// Column headers recognized in catalog exports. The header row itself may be
// preceded by arbitrary preamble rows.
const (
	columnCode         = "Code"
	columnBarcode      = "Barcode"
	columnName         = "Name"
	columnManufacturer = "Manufacturer"
	columnBrand        = "Brand"
	columnProductType  = "Product Type"
)

// LoadDir loads product records from the first CSV file (sorted by name)
// found in dir. A directory without CSV files yields an empty catalog.
func LoadDir(dir string) ([]model.ProductRecord, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("scan catalog dir: %w", err)
	}
	if len(matches) == 0 {
		return nil, nil
	}
	sort.Strings(matches)
	return LoadFile(matches[0])
}

// LoadFile parses a single catalog CSV export. The file may carry a UTF-8
// byte-order mark; the delimiter is sniffed with a semicolon fallback.
func LoadFile(path string) ([]model.ProductRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(transform.NewReader(f, unicode.UTF8BOM.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.Comma = sniffDelimiter(string(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse catalog csv: %w", err)
	}

	return parseRows(rows), nil
}

// sniffDelimiter picks the most frequent candidate delimiter in the first
// non-empty line, falling back to semicolon.
func sniffDelimiter(data string) rune {
	var line string
	for _, l := range strings.Split(data, "\n") {
		if strings.TrimSpace(l) != "" {
			line = l
			break
		}
	}

	best := ';'
	bestCount := 0
	for _, candidate := range []rune{';', ',', '\t'} {
		if n := strings.Count(line, string(candidate)); n > bestCount {
			best = candidate
			bestCount = n
		}
	}
	return best
}

func parseRows(rows [][]string) []model.ProductRecord {
	headerIdx, columns := findHeader(rows)
	if headerIdx < 0 {
		return nil
	}

	var records []model.ProductRecord
	for _, row := range rows[headerIdx+1:] {
		if isBlank(row) {
			continue
		}
		cell := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}
		records = append(records, model.ProductRecord{
			Code:         cell(columnCode),
			Barcode:      cell(columnBarcode),
			Name:         cell(columnName),
			Manufacturer: cell(columnManufacturer),
			Brand:        cell(columnBrand),
			ProductType:  cell(columnProductType),
		})
	}
	return records
}

// findHeader locates the row containing both Code and Name columns and
// returns its position along with a header→column-index mapping.
func findHeader(rows [][]string) (int, map[string]int) {
	for i, row := range rows {
		columns := make(map[string]int, len(row))
		for idx, cell := range row {
			columns[strings.TrimSpace(cell)] = idx
		}
		_, hasCode := columns[columnCode]
		_, hasName := columns[columnName]
		if hasCode && hasName {
			return i, columns
		}
	}
	return -1, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
