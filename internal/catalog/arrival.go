package catalog

import "strings"

// DefaultArrivalChannel is used for brands without a purchase-order day:
// those products must be specially ordered from Montevideo.
const DefaultArrivalChannel = "Encargar a Montevideo"

// brandArrival maps a brand to the human-readable description of how and
// when its products become available. Labels are shown to staff verbatim.
var brandArrival = map[string]string{
	"SUPRA":    "Llega por orden de compra",
	"BELSIR":   "Llega por orden de compra (día 2)",
	"USA PET":  "Llega por orden de compra (día 3)",
	"DISTRICO": "Llega por orden de compra (día 3)",
	"DASLICAR": "Llega por orden de compra (día 5)",
	"FARMINA":  "Llega por orden de compra (día 6)",
	"SADENIR":  "Llega por orden de compra (día 4)",
}

// ArrivalChannel resolves the arrival-channel label for a brand. Unknown or
// empty brands fall back to DefaultArrivalChannel; the function never fails.
func ArrivalChannel(brand string) string {
	key := strings.ToUpper(strings.TrimSpace(brand))
	if label, ok := brandArrival[key]; ok {
		return label
	}
	return DefaultArrivalChannel
}
