package fh5tuner

import "math"

// differentialFor sets the accel/decel lock percentages and preload for the
// style. Cars driving all four wheels additionally get center/front/rear
// splits; two-wheel-drive cars leave those fields absent entirely.
func differentialFor(tune *Tune, car *Car, tab styleTunables, style TuneStyle) {
	tune.DiffAccel = tab.diffAccel
	tune.DiffDecel = tab.diffDecel
	tune.DiffPreload = int(math.Round(float64(tab.diffAccel+tab.diffDecel) / 2.5))

	if !car.Drivetrain.IsAllWheel() {
		return
	}

	center := 50.0

	if style == StyleDrift {
		// drift builds send most torque rearward
		center = 70.0
	}

	tune.CenterDiff = floatPtr(center)
	tune.FrontDiff = floatPtr(round1(float64(tab.diffAccel) * 0.8))
	tune.RearDiff = floatPtr(round1(float64(tab.diffAccel) * 0.9))
}

var differentialTierDelta = map[string]struct{ accel, decel int }{
	"Sport":    {5, 5},
	"Race":     {10, 8},
	"Rally":    {8, 10},
	"Off-Road": {6, 8},
	"Drift":    {15, 10},
}

func applyDifferentialUpgrades(tune *Tune, upgrades UpgradeSelection) {
	delta, ok := differentialTierDelta[upgrades.Get(SectionDrivetrain, "Differential")]

	if !ok {
		return
	}

	tune.DiffAccel = clampInt(tune.DiffAccel+delta.accel, 0, 100)
	tune.DiffDecel = clampInt(tune.DiffDecel+delta.decel, 0, 100)
}
