package lib

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKeySetResolve(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       []string
	}{
		{
			name:       "no collisions",
			candidates: []string{"arial", "roboto", "inter"},
			want:       []string{"arial", "roboto", "inter"},
		},
		{
			name:       "repeated candidate",
			candidates: []string{"arialBold", "arialBold", "arialBold"},
			want:       []string{"arialBold", "arialBold1", "arialBold2"},
		},
		{
			name:       "suffixed candidate already taken",
			candidates: []string{"a", "a", "a1", "a"},
			want:       []string{"a", "a1", "a11", "a2"},
		},
		{
			name:       "counter restarts per collision",
			candidates: []string{"x", "y", "x", "y"},
			want:       []string{"x", "y", "x1", "y1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ks := NewKeySet()
			var got []string
			for _, c := range tt.candidates {
				got = append(got, ks.Resolve(c))
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
			if ks.Len() != len(tt.candidates) {
				t.Errorf("Len() = %d, want %d", ks.Len(), len(tt.candidates))
			}
		})
	}
}

func TestKeySetUnique(t *testing.T) {
	ks := NewKeySet()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		for _, c := range []string{"font", "font1", "font2", "other"} {
			key := ks.Resolve(c)
			if seen[key] {
				t.Fatalf("Resolve(%q) returned duplicate %q", c, key)
			}
			seen[key] = true
			if !ks.Has(key) {
				t.Fatalf("Has(%q) = false after Resolve", key)
			}
		}
	}
}
