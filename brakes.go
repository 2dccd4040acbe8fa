package fh5tuner

import "math"

// brakesFor starts from the style's bias and pressure, then shifts bias
// toward the heavier axle and for the drivetrain. The distribution nudge is
// applied on top of the style base, then the drivetrain adjustment.
func brakesFor(tune *Tune, car *Car, tab styleTunables) {
	front, _ := weightDistribution(car)

	tune.BrakeBias = tab.brakeBias + int(math.Round((front-referenceDistFront)*10))

	switch car.Drivetrain {
	case DrivetrainFWD:
		tune.BrakeBias += 3
	case DrivetrainRWD:
		tune.BrakeBias -= 2
	}

	tune.BrakePressure = tab.brakePressure
}

var brakeTierDelta = map[string]int{
	"Street": 3,
	"Sport":  6,
	"Race":   10,
}

func applyBrakeUpgrades(tune *Tune, upgrades UpgradeSelection) {
	delta, ok := brakeTierDelta[upgrades.Get(SectionPlatform, "Brakes")]

	if !ok {
		return
	}

	tune.BrakePressure = clampInt(tune.BrakePressure+delta, 80, 140)
}
