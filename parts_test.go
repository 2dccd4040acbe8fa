package fh5tuner

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUpgradeSelectionGet(t *testing.T) {
	selection := UpgradeSelection{
		SectionPlatform: {"Springs": "Race"},
	}

	if got := selection.Get(SectionPlatform, "Springs"); got != "Race" {
		t.Errorf("expected Race, got %q", got)
	}

	if got := selection.Get(SectionPlatform, "Brakes"); got != "" {
		t.Errorf("expected empty for absent part, got %q", got)
	}

	if got := selection.Get(SectionAero, "Rear Wing"); got != "" {
		t.Errorf("expected empty for absent section, got %q", got)
	}
}

func TestUpgradeSelectionSelected(t *testing.T) {
	selection := UpgradeSelection{
		SectionPlatform: {
			"Springs": "Race",
			"Brakes":  "Stock",
		},
	}

	if !selection.Selected(SectionPlatform, "Springs") {
		t.Error("Springs should be selected")
	}

	if selection.Selected(SectionPlatform, "Brakes") {
		t.Error("an explicit Stock should not count as selected")
	}

	if selection.Selected(SectionAero, "Rear Wing") {
		t.Error("an absent part should not count as selected")
	}
}

func TestUpgradeSelectionSummary(t *testing.T) {
	selection := UpgradeSelection{
		SectionPlatform: {
			"Springs": "Race",
			"Brakes":  "Stock",
		},
		SectionAero: {"Rear Wing": "Sport"},
	}

	summary := selection.Summary()

	expected := []string{
		"Aero/Rear Wing: Sport",
		"Platform/Springs: Race",
	}

	if len(summary) != len(expected) {
		t.Fatalf("expected %d entries, got %d: %v", len(expected), len(summary), summary)
	}

	for i := range expected {
		if summary[i] != expected[i] {
			t.Errorf("expected %q at %d, got %q", expected[i], i, summary[i])
		}
	}
}

func TestLoadUpgradeSelection(t *testing.T) {
	selection, err := LoadUpgradeSelection("testdata/upgrades.yml")

	if err != nil {
		t.Fatal(err)
	}

	if got := selection.Get(SectionPlatform, "Springs"); got != "Race" {
		t.Errorf("expected Race springs, got %q", got)
	}

	if got := selection.Get(SectionTuning, "Final Drive"); got != "3.90" {
		t.Errorf("expected final drive override 3.90, got %q", got)
	}
}

func TestLoadUpgradeSelectionEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upgrades.yml")

	contents := []string{
		"",
		"# all stock\n\n",
	}

	for _, content := range contents {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		selection, err := LoadUpgradeSelection(path)

		if err != nil {
			t.Fatalf("%q: unexpected error: %s", content, err)
		}

		if len(selection) != 0 {
			t.Errorf("%q: expected the empty selection, got %v", content, selection)
		}
	}
}

func TestLoadUpgradeSelectionMissingFile(t *testing.T) {
	selection, err := LoadUpgradeSelection("testdata/no-such-file.yml")

	if err != nil {
		t.Fatal(err)
	}

	if len(selection) != 0 {
		t.Errorf("expected the empty selection, got %v", selection)
	}
}

func TestPartsCatalogOptions(t *testing.T) {
	catalog, err := LoadParts("testdata/parts.json")

	if err != nil {
		t.Fatal(err)
	}

	options := catalog.Options(SectionPlatform, "Springs")

	if len(options) != 3 || options[0] != OptionStock {
		t.Errorf("expected Stock-first options, got %v", options)
	}

	if got := catalog.Options(SectionPlatform, "Hydraulics"); got != nil {
		t.Errorf("expected nil for an unknown part, got %v", got)
	}
}

func TestRimCatalogCascade(t *testing.T) {
	rims, err := LoadRims("testdata/rims.json")

	if err != nil {
		t.Fatal(err)
	}

	styles := rims.Styles()

	if len(styles) != 2 {
		t.Fatalf("expected 2 rim styles, got %v", styles)
	}

	manufacturers := rims.Manufacturers("Sport")

	if len(manufacturers) != 2 || manufacturers[0] != "BBS" || manufacturers[1] != "Rays" {
		t.Errorf("unexpected Sport manufacturers: %v", manufacturers)
	}

	models := rims.Models("Sport", "Rays")

	if len(models) != 2 {
		t.Errorf("unexpected Rays models: %v", models)
	}

	sizes := rims.Sizes("Sport", "Rays", "Volk TE37")

	if len(sizes) != 3 || sizes[0] != 17 {
		t.Errorf("unexpected TE37 sizes: %v", sizes)
	}

	if got := rims.Sizes("Sport", "Rays", "Nope"); got != nil {
		t.Errorf("expected nil sizes for an unknown rim, got %v", got)
	}
}

func TestLoadRimsMissingFileUsesDefaults(t *testing.T) {
	rims, err := LoadRims("testdata/no-such-file.json")

	if err != nil {
		t.Fatal(err)
	}

	if len(rims) == 0 {
		t.Error("expected the default rim catalog")
	}
}
