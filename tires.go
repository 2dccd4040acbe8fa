package fh5tuner

import "strings"

const (
	minTirePSI = 15.0
	maxTirePSI = 40.0
)

// tiresFor picks the style compound and pressures, dropping a pound from
// the driven axle on two-wheel-drive cars.
func tiresFor(tune *Tune, car *Car, tab styleTunables) {
	tune.TireCompound = tab.compound

	front, rear := tab.pressureFront, tab.pressureRear

	switch car.Drivetrain {
	case DrivetrainRWD:
		rear -= 1
	case DrivetrainFWD:
		front -= 1
	}

	tune.TirePressureFront = clamp(front, minTirePSI, maxTirePSI)
	tune.TirePressureRear = clamp(rear, minTirePSI, maxTirePSI)
}

// compoundShift maps a compound name to its front/rear pressure delta by
// substring match, so "Rally Softs" behaves like "Rally".
func compoundShift(name string) (front, rear float64) {
	n := strings.ToLower(name)

	switch {
	case strings.Contains(n, "rally"), strings.Contains(n, "offroad"), strings.Contains(n, "off-road"):
		return -2, -2
	case strings.Contains(n, "race"):
		return -1, -1
	case strings.Contains(n, "drift"):
		return 1, -1
	}

	return 0, 0
}

// applyTireUpgrades relabels the compound from the Tires section and shifts
// each axle's pressure by its own compound's delta. Differing front/rear
// selections are reported as "Mixed".
func applyTireUpgrades(tune *Tune, upgrades UpgradeSelection) {
	frontSel := upgrades.Get(SectionTires, "Front Compound")
	rearSel := upgrades.Get(SectionTires, "Rear Compound")

	frontSet := frontSel != "" && frontSel != OptionStock
	rearSet := rearSel != "" && rearSel != OptionStock

	if !frontSet && !rearSet {
		return
	}

	switch {
	case frontSet && rearSet && frontSel != rearSel:
		tune.TireCompound = "Mixed"
	case frontSet:
		tune.TireCompound = frontSel
	default:
		tune.TireCompound = rearSel
	}

	if frontSet {
		shift, _ := compoundShift(frontSel)
		tune.TirePressureFront = clamp(tune.TirePressureFront+shift, minTirePSI, maxTirePSI)
	}

	if rearSet {
		_, shift := compoundShift(rearSel)
		tune.TirePressureRear = clamp(tune.TirePressureRear+shift, minTirePSI, maxTirePSI)
	}
}
