package fh5tuner

const (
	// spring rates and dampers scale against a 3500 lb, 55/45 reference car
	referenceWeightLBS = 3500.0
	referenceDistFront = 0.55
	referenceDistRear  = 0.45
	defaultDistFront   = 0.55
)

// weightDistribution resolves the front axle weight fraction from the car's
// optional attribute, clamped into a believable range, defaulting to 55/45.
func weightDistribution(car *Car) (front, rear float64) {
	front = defaultDistFront

	if car.WeightDistFront > 0 {
		front = clamp(car.WeightDistFront, 0.40, 0.65)
	}

	return front, 1 - front
}

func suspensionFor(tune *Tune, car *Car, tab styleTunables, style TuneStyle) {
	weightFactor := car.WeightLBS / referenceWeightLBS
	front, rear := weightDistribution(car)

	tune.SpringFront = round1(tab.springBase * weightFactor * (front / referenceDistFront))
	tune.SpringRear = round1(tab.springBase * weightFactor * (rear / referenceDistRear))

	tune.ARBFront = round1((64*front + 0.5) * tab.arbScale * weightFactor)
	tune.ARBRear = round1((64*rear + 1.0) * tab.arbScale * weightFactor)

	tune.RideHeightFront = tab.rideHeightBase
	tune.RideHeightRear = tab.rideHeightBase + 1

	if style == StyleDrag {
		// rake for weight transfer off the line
		tune.RideHeightRear = tab.rideHeightBase + 3
	}
}

func alignmentFor(tune *Tune, tab styleTunables) {
	tune.CamberFront = tab.camberFront
	tune.CamberRear = tab.camberRear
	tune.ToeFront = tab.toeFront
	tune.ToeRear = tab.toeRear
	tune.Caster = tab.caster
}

// dampingFor derives rebound from the axle weight fraction, scaled by the
// style intent and by how stiff the computed springs came out. Compression
// is a fraction of rebound; drift setups run much softer compression.
func dampingFor(tune *Tune, car *Car, tab styleTunables, style TuneStyle) {
	front, rear := weightDistribution(car)

	springScaleFront := clamp(tune.SpringFront/550, 0.8, 1.25)
	springScaleRear := clamp(tune.SpringRear/550, 0.8, 1.25)

	tune.ReboundFront = round1((19*front + 0.5) * tab.damperIntent * springScaleFront)
	tune.ReboundRear = round1((19*rear + 1.0) * tab.damperIntent * springScaleRear)

	bumpFront, bumpRear := 0.7, 0.6

	if style == StyleDrift {
		bumpFront, bumpRear = 0.55, 0.45
	}

	tune.BumpFront = round1(tune.ReboundFront * bumpFront)
	tune.BumpRear = round1(tune.ReboundRear * bumpRear)
}

func applySpringUpgrades(tune *Tune, upgrades UpgradeSelection) {
	switch upgrades.Get(SectionPlatform, "Springs") {
	case "Race":
		tune.SpringFront += 50
		tune.SpringRear += 50
	case "Rally":
		tune.SpringFront -= 50
		tune.SpringRear -= 50
		tune.RideHeightFront += 3
		tune.RideHeightRear += 3
	}
}

var arbTierFactor = map[string]float64{
	"Street": 1.05,
	"Sport":  1.10,
	"Race":   1.15,
}

func applyARBUpgrades(tune *Tune, upgrades UpgradeSelection) {
	if factor, ok := arbTierFactor[upgrades.Get(SectionPlatform, "Front ARB")]; ok {
		tune.ARBFront = round1(tune.ARBFront * factor)
	}

	if factor, ok := arbTierFactor[upgrades.Get(SectionPlatform, "Rear ARB")]; ok {
		tune.ARBRear = round1(tune.ARBRear * factor)
	}
}
