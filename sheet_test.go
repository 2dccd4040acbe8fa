package fh5tuner

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"
)

var sheetSections = []string{
	"Gearing",
	"Differential",
	"Brakes",
	"Springs & ARBs",
	"Ride Height",
	"Alignment",
	"Damping",
	"Tires",
	"Aero",
	"Power & Assists",
}

func TestSheetSections(t *testing.T) {
	tune, err := ComputeTune(testGTR, nil, StyleRace, WeatherDry)

	if err != nil {
		t.Fatal(err)
	}

	sheet := tune.Sheet(testGTR, StyleRace, WeatherDry, nil)

	for _, section := range sheetSections {
		if !strings.Contains(sheet, "\n"+section+"\n") {
			t.Errorf("sheet is missing the %s section", section)
		}
	}

	if !strings.Contains(sheet, "Nissan GT-R (R35)") {
		t.Error("sheet is missing the car name")
	}

	if strings.Contains(sheet, "Applied Upgrades") {
		t.Error("sheet should not list upgrades when nothing is selected")
	}
}

func TestSheetAppliedUpgrades(t *testing.T) {
	upgrades := UpgradeSelection{
		SectionPlatform: {"Springs": "Race"},
	}

	tune, err := ComputeTune(testGTR, upgrades, StyleRace, WeatherDry)

	if err != nil {
		t.Fatal(err)
	}

	sheet := tune.Sheet(testGTR, StyleRace, WeatherDry, upgrades)

	if !strings.Contains(sheet, "Applied Upgrades") {
		t.Error("sheet is missing the upgrades footer")
	}

	if !strings.Contains(sheet, "Platform/Springs: Race") {
		t.Error("sheet is missing the selected upgrade")
	}
}

func TestSheetAWDFields(t *testing.T) {
	tune, err := ComputeTune(testGTR, nil, StyleRace, WeatherDry)

	if err != nil {
		t.Fatal(err)
	}

	sheet := tune.Sheet(testGTR, StyleRace, WeatherDry, nil)

	if !strings.Contains(sheet, "Center Balance") {
		t.Error("AWD sheet is missing the center balance line")
	}

	tune, err = ComputeTune(testGT3RS, nil, StyleRace, WeatherDry)

	if err != nil {
		t.Fatal(err)
	}

	sheet = tune.Sheet(testGT3RS, StyleRace, WeatherDry, nil)

	if strings.Contains(sheet, "Center Balance") {
		t.Error("RWD sheet should not have a center balance line")
	}
}

func TestSheetAlignmentWithNonASCIIValues(t *testing.T) {
	// compound labels come straight from the parts catalog and may not be
	// ASCII; value columns must still line up
	upgrades := UpgradeSelection{
		SectionTires: {"Front Compound": "Öhlins Gravel", "Rear Compound": "Öhlins Gravel"},
	}

	tune, err := ComputeTune(testGTR, upgrades, StyleRally, WeatherDry)

	if err != nil {
		t.Fatal(err)
	}

	sheet := tune.Sheet(testGTR, StyleRally, WeatherDry, nil)

	found := false

	for _, line := range strings.Split(sheet, "\n") {
		if !strings.HasPrefix(line, "Compound") {
			continue
		}

		found = true

		if got := utf8.RuneCountInString(line); got != sheetWidth {
			t.Errorf("compound line is %d runes wide, expected %d: %q", got, sheetWidth, line)
		}
	}

	if !found {
		t.Fatal("sheet has no compound line")
	}
}

func TestTuneJSONForm(t *testing.T) {
	awd, err := ComputeTune(testGTR, nil, StyleRace, WeatherDry)

	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(awd)

	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(data), `"center_diff"`) {
		t.Error("AWD JSON form is missing center_diff")
	}

	rwd, err := ComputeTune(testGT3RS, nil, StyleRace, WeatherDry)

	if err != nil {
		t.Fatal(err)
	}

	data, err = json.Marshal(rwd)

	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(string(data), `"center_diff"`) {
		t.Error("RWD JSON form should omit center_diff")
	}

	if !strings.Contains(string(data), `"gear_ratios"`) {
		t.Error("JSON form is missing gear_ratios")
	}
}
