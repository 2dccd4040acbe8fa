package fh5tuner

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	minGearCount     = 4
	maxGearCount     = 10
	defaultGearCount = 6

	// synthesized gears taper off the last known ratio
	gearTaper    = 0.88
	minGearRatio = 0.4
)

// gearingFor picks the style's final drive and base six-speed ratio set.
// Street, Race and Drag builds nudge the final drive on power-to-weight:
// short gearing suits low-powered cars, long gearing keeps powerful ones
// usable.
func gearingFor(tune *Tune, tab styleTunables, style TuneStyle, pwr float64) {
	tune.FinalDrive = tab.finalDrive
	tune.GearRatios = append([]float64(nil), tab.gearRatios...)

	switch style {
	case StyleStreet:
		if pwr > 0.20 {
			tune.FinalDrive = round2(tune.FinalDrive - 0.2)
		} else {
			tune.FinalDrive = round2(tune.FinalDrive + 0.2)
		}
	case StyleRace:
		if pwr > 0.25 {
			tune.FinalDrive = round2(tune.FinalDrive - 0.3)
		} else {
			tune.FinalDrive = round2(tune.FinalDrive + 0.2)
		}
	case StyleDrag:
		if pwr > 0.25 {
			tune.FinalDrive = round2(tune.FinalDrive - 0.3)
		}
	}
}

// targetGearCount resolves how many gears the tune should carry: a race or
// drift transmission upgrade wins, then the car's native gear count if sane,
// then six.
func targetGearCount(car *Car, upgrades UpgradeSelection) int {
	transmission := upgrades.Get(SectionDrivetrain, "Transmission")

	if n, ok := parseRaceTransmission(transmission); ok {
		return n
	}

	if transmission == "Drift: 4 Speed" {
		return 4
	}

	if car.Gears >= minGearCount && car.Gears <= maxGearCount {
		return car.Gears
	}

	return defaultGearCount
}

func parseRaceTransmission(s string) (int, bool) {
	var n int

	if _, err := fmt.Sscanf(s, "Race: %d Speed", &n); err != nil {
		return 0, false
	}

	if n < minGearCount || n > maxGearCount {
		return 0, false
	}

	return n, true
}

// normalizeGearCount reshapes the ratio list to the target count, keeping
// leading ratios and tapering new ones off the last known gear.
func normalizeGearCount(tune *Tune, car *Car, upgrades UpgradeSelection) {
	target := targetGearCount(car, upgrades)

	if target < len(tune.GearRatios) {
		tune.GearRatios = tune.GearRatios[:target]
		return
	}

	for len(tune.GearRatios) < target {
		last := tune.GearRatios[len(tune.GearRatios)-1]
		next := round2(last * gearTaper)

		if next < minGearRatio {
			next = minGearRatio
		}

		tune.GearRatios = append(tune.GearRatios, next)
	}
}

// applyManualOverrides applies the free-text Tuning section. A parseable
// Final Drive always wins. Gear ratios are all-or-nothing: every gear up to
// the current count must parse or none of them are applied.
func applyManualOverrides(tune *Tune, upgrades UpgradeSelection) {
	if v, ok := parseFinite(upgrades.Get(SectionTuning, "Final Drive")); ok {
		tune.FinalDrive = v
	}

	ratios := make([]float64, len(tune.GearRatios))

	for i := range ratios {
		v, ok := parseFinite(upgrades.Get(SectionTuning, fmt.Sprintf("Gear %d Ratio", i+1)))

		if !ok {
			return
		}

		ratios[i] = v
	}

	tune.GearRatios = ratios
}

// parseFinite parses a manual-tuning value. Malformed or non-finite input
// reports false so the caller keeps the computed value.
func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)

	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}
