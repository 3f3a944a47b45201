package main

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := map[float64]string{
		0:             "0",
		950:           "950",
		80_000:        "80K",
		1_780_000:     "1.78M",
		2_500_000_000: "2.50B",
		-500_000:      "-500K",
	}
	for v, want := range cases {
		if got := formatMoney(v); got != want {
			t.Errorf("formatMoney(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestToRange(t *testing.T) {
	r, err := toRange("radius", []float64{20, 100, 10})
	if err != nil {
		t.Fatalf("toRange: %v", err)
	}
	if r.Count() != 9 {
		t.Errorf("Count = %d, want 9", r.Count())
	}
	if _, err := toRange("sla", []float64{10, 30}); err == nil {
		t.Error("expected error for two values")
	}
}
