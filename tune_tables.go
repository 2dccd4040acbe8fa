package fh5tuner

// styleTunables is the base-value record one tune style contributes to every
// subsystem before car-specific scaling, upgrades and weather are applied.
// Adding a style is a data change here, not new branching in the engine.
type styleTunables struct {
	finalDrive float64
	gearRatios []float64

	diffAccel int
	diffDecel int

	springBase     float64
	rideHeightBase float64
	arbScale       float64
	damperIntent   float64

	camberFront float64
	camberRear  float64
	toeFront    float64
	toeRear     float64
	caster      float64

	compound      string
	pressureFront float64
	pressureRear  float64

	downforceFront float64
	downforceRear  float64

	tractionControl  int
	abs              int
	stabilityControl int
	turboMap         float64

	brakeBias     int
	brakePressure int
}

var styleTable = map[TuneStyle]styleTunables{
	StyleStreet: {
		finalDrive: 3.85,
		gearRatios: []float64{3.60, 2.60, 1.95, 1.55, 1.25, 1.05},

		diffAccel: 35,
		diffDecel: 20,

		springBase:     450,
		rideHeightBase: 6.0,
		arbScale:       1.0,
		damperIntent:   1.0,

		camberFront: -1.0,
		camberRear:  -0.5,
		toeFront:    0.0,
		toeRear:     0.0,
		caster:      5.5,

		compound:      "Street",
		pressureFront: 30,
		pressureRear:  29,

		downforceFront: 80,
		downforceRear:  120,

		tractionControl:  1,
		abs:              1,
		stabilityControl: 1,
		turboMap:         0.70,

		brakeBias:     52,
		brakePressure: 100,
	},
	StyleRoad: {
		finalDrive: 3.95,
		gearRatios: []float64{3.50, 2.55, 1.90, 1.50, 1.20, 1.00},

		diffAccel: 40,
		diffDecel: 25,

		springBase:     480,
		rideHeightBase: 5.5,
		arbScale:       1.0,
		damperIntent:   1.0,

		camberFront: -1.2,
		camberRear:  -0.8,
		toeFront:    0.0,
		toeRear:     0.1,
		caster:      5.5,

		compound:      "Sport",
		pressureFront: 29,
		pressureRear:  28,

		downforceFront: 100,
		downforceRear:  150,

		tractionControl:  1,
		abs:              1,
		stabilityControl: 0,
		turboMap:         0.75,

		brakeBias:     53,
		brakePressure: 100,
	},
	StyleRace: {
		finalDrive: 4.10,
		gearRatios: []float64{3.30, 2.45, 1.90, 1.52, 1.26, 1.06},

		diffAccel: 55,
		diffDecel: 35,

		springBase:     600,
		rideHeightBase: 4.0,
		arbScale:       1.05,
		damperIntent:   1.08,

		camberFront: -2.5,
		camberRear:  -1.8,
		toeFront:    0.1,
		toeRear:     0.2,
		caster:      6.5,

		compound:      "Race",
		pressureFront: 27,
		pressureRear:  26,

		// Race downforce further depends on PI, see aeroFor
		downforceFront: 150,
		downforceRear:  200,

		tractionControl:  0,
		abs:              0,
		stabilityControl: 0,
		turboMap:         0.85,

		brakeBias:     55,
		brakePressure: 110,
	},
	StyleDrift: {
		finalDrive: 4.40,
		gearRatios: []float64{3.70, 2.70, 2.00, 1.55, 1.25, 1.02},

		diffAccel: 90,
		diffDecel: 60,

		springBase:     520,
		rideHeightBase: 5.0,
		arbScale:       0.85,
		damperIntent:   1.05,

		camberFront: -3.5,
		camberRear:  -1.0,
		toeFront:    0.5,
		toeRear:     0.0,
		caster:      7.0,

		compound:      "Drift",
		pressureFront: 28,
		pressureRear:  33,

		downforceFront: 60,
		downforceRear:  120,

		tractionControl:  0,
		abs:              0,
		stabilityControl: 0,
		turboMap:         0.80,

		brakeBias:     50,
		brakePressure: 105,
	},
	StyleRally: {
		finalDrive: 4.20,
		gearRatios: []float64{3.60, 2.65, 2.00, 1.60, 1.30, 1.08},

		diffAccel: 65,
		diffDecel: 45,

		springBase:     380,
		rideHeightBase: 7.5,
		arbScale:       0.8,
		damperIntent:   0.9,

		camberFront: -1.5,
		camberRear:  -1.0,
		toeFront:    0.0,
		toeRear:     0.2,
		caster:      5.0,

		compound:      "Rally",
		pressureFront: 26,
		pressureRear:  26,

		downforceFront: 50,
		downforceRear:  80,

		tractionControl:  1,
		abs:              1,
		stabilityControl: 0,
		turboMap:         0.80,

		brakeBias:     54,
		brakePressure: 105,
	},
	StyleOffroad: {
		finalDrive: 4.30,
		gearRatios: []float64{3.80, 2.80, 2.10, 1.65, 1.32, 1.10},

		diffAccel: 70,
		diffDecel: 50,

		springBase:     340,
		rideHeightBase: 8.5,
		arbScale:       0.8,
		damperIntent:   0.9,

		camberFront: -1.0,
		camberRear:  -0.8,
		toeFront:    0.0,
		toeRear:     0.1,
		caster:      4.5,

		compound:      "Offroad",
		pressureFront: 24,
		pressureRear:  24,

		downforceFront: 40,
		downforceRear:  60,

		tractionControl:  1,
		abs:              1,
		stabilityControl: 1,
		turboMap:         0.75,

		brakeBias:     53,
		brakePressure: 100,
	},
	StyleCruise: {
		finalDrive: 3.60,
		gearRatios: []float64{3.40, 2.40, 1.80, 1.40, 1.10, 0.90},

		diffAccel: 25,
		diffDecel: 15,

		springBase:     420,
		rideHeightBase: 6.5,
		arbScale:       1.0,
		damperIntent:   1.0,

		camberFront: -0.8,
		camberRear:  -0.5,
		toeFront:    0.0,
		toeRear:     0.0,
		caster:      5.0,

		compound:      "Street",
		pressureFront: 31,
		pressureRear:  30,

		downforceFront: 50,
		downforceRear:  70,

		tractionControl:  2,
		abs:              2,
		stabilityControl: 2,
		turboMap:         0.60,

		brakeBias:     50,
		brakePressure: 95,
	},
	StyleDrag: {
		finalDrive: 4.60,
		gearRatios: []float64{3.20, 2.30, 1.75, 1.40, 1.18, 1.02},

		diffAccel: 80,
		diffDecel: 40,

		springBase:     500,
		rideHeightBase: 5.0,
		arbScale:       0.7,
		damperIntent:   0.95,

		camberFront: -0.5,
		camberRear:  -0.5,
		toeFront:    0.0,
		toeRear:     0.0,
		caster:      5.0,

		compound:      "Drag",
		pressureFront: 25,
		pressureRear:  19,

		downforceFront: 30,
		downforceRear:  50,

		tractionControl:  0,
		abs:              1,
		stabilityControl: 0,
		turboMap:         0.90,

		brakeBias:     55,
		brakePressure: 100,
	},
}
