package fh5tuner

import "math"

// upgrade section names as the selection UI emits them
const (
	SectionPlatform   = "Platform"
	SectionAero       = "Aero"
	SectionDrivetrain = "Drivetrain"
	SectionConversion = "Conversion"
	SectionEngine     = "Engine"
	SectionTires      = "Tires"
	SectionTuning     = "Tuning"
)

var weightReductionFactor = map[string]float64{
	"Street": 0.95,
	"Sport":  0.90,
	"Race":   0.85,
}

// effectiveCar returns a copy of the car with conversion upgrades applied:
// a drivetrain swap overrides the layout, and a weight-reduction tier scales
// the curb weight, rounded to the nearest pound. No other fields change.
func effectiveCar(car *Car, upgrades UpgradeSelection) *Car {
	out := *car

	if swap, ok := ParseDrivetrain(upgrades.Get(SectionConversion, "Drivetrain Swap")); ok {
		out.Drivetrain = swap
	}

	if factor, ok := weightReductionFactor[upgrades.Get(SectionPlatform, "Weight Reduction")]; ok {
		out.WeightLBS = math.Round(out.WeightLBS * factor)
	}

	return &out
}
