package services_test

import (
	"testing"

	"refind/internal/services"
)

func TestGenerateClaimCodeFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 5000; i++ {
		code := services.GenerateClaimCode()
		if len(code) != 6 {
			t.Fatalf("code %q is not 6 characters", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("code %q contains non-digit %q", code, r)
			}
		}
		seen[code] = true
	}
	// 5000 draws from a 10^6 space colliding down to a handful would mean a
	// broken source.
	if len(seen) < 4900 {
		t.Fatalf("suspiciously many collisions: %d distinct codes", len(seen))
	}
}
