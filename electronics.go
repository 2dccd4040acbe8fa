package fh5tuner

import (
	"math"
	"strings"
)

// electronicsFor sets the driver-assist levels and turbo mapping. Powerful
// rear-wheel-drive cars get a traction-control bump.
func electronicsFor(tune *Tune, car *Car, tab styleTunables, pwr float64) {
	tune.TractionControl = tab.tractionControl
	tune.ABS = tab.abs
	tune.StabilityControl = tab.stabilityControl
	tune.TurboMap = tab.turboMap

	if car.Drivetrain == DrivetrainRWD && pwr > 0.25 {
		tune.TractionControl = clampInt(tune.TractionControl+1, 0, 2)
	}
}

// applyAspirationUpgrades raises the turbo mapping floor for forced-induction
// conversions. These are floors, never additive deltas.
func applyAspirationUpgrades(tune *Tune, upgrades UpgradeSelection) {
	aspiration := strings.ToLower(upgrades.Get(SectionConversion, "Aspiration"))

	switch {
	case strings.Contains(aspiration, "turbo"):
		floor := 0.9

		if upgrades.Get(SectionEngine, "Aspiration") == "Race with Anti-lag" {
			floor = 1.0
		}

		tune.TurboMap = math.Max(tune.TurboMap, floor)
	case strings.Contains(aspiration, "supercharger"):
		tune.TurboMap = math.Max(tune.TurboMap, 0.95)
	}
}
