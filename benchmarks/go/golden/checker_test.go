package golden

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	colorwheel "github.com/euforicio/colorwheel-go"
)

// TestHarmoniesMatchGolden pins the hex output of every harmony for a set of
// base colors. Run with GOLDEN_UPDATE=1 to rewrite testdata.
func TestHarmoniesMatchGolden(t *testing.T) {
	bases := []string{"#992E99", "#FF0000", "#12AB34", "#808080", "#FEDCBA", "#000000"}

	update := os.Getenv("GOLDEN_UPDATE") == "1"

	for _, kind := range colorwheel.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			got := make(map[string][]string, len(bases))
			for _, hex := range bases {
				base, err := colorwheel.HexToHSV(hex)
				if err != nil {
					t.Fatalf("decode %s: %v", hex, err)
				}
				colors, err := colorwheel.Calculate(base, kind)
				if err != nil {
					t.Fatalf("calculate %s: %v", hex, err)
				}
				for _, c := range colors {
					got[hex] = append(got[hex], c.Hex())
				}
			}

			goldenPath := filepath.Join("testdata", string(kind)+".json")
			if update {
				writeGolden(t, goldenPath, got)
				return
			}

			expected := readGolden(t, goldenPath)
			for _, hex := range bases {
				if len(got[hex]) != len(expected[hex]) {
					t.Fatalf("%s: length mismatch: got %d, want %d", hex, len(got[hex]), len(expected[hex]))
				}
				for i := range got[hex] {
					if got[hex][i] != expected[hex][i] {
						t.Fatalf("%s: color %d: got %s, want %s", hex, i, got[hex][i], expected[hex][i])
					}
				}
			}
		})
	}
}

func readGolden(t *testing.T, path string) map[string][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v", path, err)
	}
	var out map[string][]string
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal golden %s: %v", path, err)
	}
	return out
}

func writeGolden(t *testing.T, path string, v map[string][]string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.WriteFile(path, append(encoded, '\n'), 0o644); err != nil {
		t.Fatalf("write golden %s: %v", path, err)
	}
}
