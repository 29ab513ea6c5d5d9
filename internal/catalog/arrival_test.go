package catalog

import "testing"

func TestArrivalChannelKnownBrands(t *testing.T) {
	cases := []struct {
		brand string
		label string
	}{
		{"SUPRA", "Llega por orden de compra"},
		{"FARMINA", "Llega por orden de compra (día 6)"},
		{"SADENIR", "Llega por orden de compra (día 4)"},
		{"farmina", "Llega por orden de compra (día 6)"},
		{"  Usa Pet  ", "Llega por orden de compra (día 3)"},
	}

	for _, tc := range cases {
		t.Run(tc.brand, func(t *testing.T) {
			if got := ArrivalChannel(tc.brand); got != tc.label {
				t.Fatalf("expected %q, got %q", tc.label, got)
			}
		})
	}
}

func TestArrivalChannelFallback(t *testing.T) {
	for _, brand := range []string{"", "   ", "UNKNOWN BRAND"} {
		if got := ArrivalChannel(brand); got != DefaultArrivalChannel {
			t.Fatalf("expected fallback for %q, got %q", brand, got)
		}
	}
}
