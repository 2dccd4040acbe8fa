package fh5tuner

import (
	"reflect"
	"testing"
)

var testGTR = &Car{
	Manufacturer:  "Nissan",
	Model:         "GT-R (R35)",
	Year:          2017,
	PI:            800,
	Drivetrain:    DrivetrainAWD,
	PowerHP:       565,
	WeightLBS:     3865,
	EngineType:    "V6",
	Aspiration:    "Twin Turbo",
	DisplacementL: 3.8,

	Gears:           6,
	WeightDistFront: 0.54,
}

var testCivic = &Car{
	Manufacturer:  "Honda",
	Model:         "Civic Type R",
	Year:          2018,
	PI:            680,
	Drivetrain:    DrivetrainFWD,
	PowerHP:       306,
	WeightLBS:     3117,
	EngineType:    "I4",
	Aspiration:    "Turbo",
	DisplacementL: 2.0,

	Gears:           6,
	WeightDistFront: 0.62,
}

var testGT3RS = &Car{
	Manufacturer:  "Porsche",
	Model:         "911 GT3 RS",
	Year:          2019,
	PI:            875,
	Drivetrain:    DrivetrainRWD,
	PowerHP:       520,
	WeightLBS:     3153,
	EngineType:    "Flat-6",
	Aspiration:    "Naturally Aspirated",
	DisplacementL: 4.0,

	Gears:           7,
	WeightDistFront: 0.40,
}

// no optional attributes at all
var testEconomy = &Car{
	Manufacturer:  "Toyota",
	Model:         "Corolla",
	Year:          2000,
	PI:            420,
	Drivetrain:    DrivetrainFWD,
	PowerHP:       125,
	WeightLBS:     2500,
	EngineType:    "I4",
	Aspiration:    "Naturally Aspirated",
	DisplacementL: 1.8,
}

var testGarage = Cars{testGTR, testCivic, testGT3RS, testEconomy}

func TestComputeTuneValidation(t *testing.T) {
	t.Run("NilCar", func(t *testing.T) {
		if _, err := ComputeTune(nil, nil, StyleRace, WeatherDry); err == nil {
			t.Error("expected an error for a nil car")
		}
	})

	t.Run("ZeroWeight", func(t *testing.T) {
		car := *testGTR
		car.WeightLBS = 0

		if _, err := ComputeTune(&car, nil, StyleRace, WeatherDry); err == nil {
			t.Error("expected an error for zero weight")
		}
	})

	t.Run("UnknownStyle", func(t *testing.T) {
		if _, err := ComputeTune(testGTR, nil, TuneStyle("Gymkhana"), WeatherDry); err == nil {
			t.Error("expected an error for an unknown style")
		}
	})

	t.Run("UnknownWeather", func(t *testing.T) {
		if _, err := ComputeTune(testGTR, nil, StyleRace, WeatherPreset("Blizzard")); err == nil {
			t.Error("expected an error for an unknown weather preset")
		}
	})
}

func TestComputeTuneDoesNotMutateCar(t *testing.T) {
	before := *testGTR

	upgrades := UpgradeSelection{
		SectionConversion: {"Drivetrain Swap": "RWD"},
		SectionPlatform:   {"Weight Reduction": "Race"},
	}

	if _, err := ComputeTune(testGTR, upgrades, StyleRace, WeatherDry); err != nil {
		t.Fatal(err)
	}

	if *testGTR != before {
		t.Error("ComputeTune mutated the caller's car")
	}
}

func TestGearRatiosStrictlyDecreasing(t *testing.T) {
	for _, style := range AvailableTuneStyles {
		for _, car := range testGarage {
			tune, err := ComputeTune(car, nil, style, WeatherDry)

			if err != nil {
				t.Fatal(err)
			}

			for i := 1; i < len(tune.GearRatios); i++ {
				if tune.GearRatios[i] >= tune.GearRatios[i-1] {
					t.Errorf("%s/%s: gear %d ratio %.2f is not below gear %d ratio %.2f",
						style, car.Model, i+1, tune.GearRatios[i], i, tune.GearRatios[i-1])
				}
			}
		}
	}
}

func TestTirePressureBounds(t *testing.T) {
	upgradeSets := []UpgradeSelection{
		nil,
		{SectionTires: {"Front Compound": "Rally", "Rear Compound": "Rally"}},
		{SectionTires: {"Front Compound": "Drift", "Rear Compound": "Drift"}},
		{SectionTires: {"Front Compound": "Race", "Rear Compound": "Offroad"}},
	}

	for _, style := range AvailableTuneStyles {
		for _, weather := range AvailableWeatherPresets {
			for _, upgrades := range upgradeSets {
				for _, car := range testGarage {
					tune, err := ComputeTune(car, upgrades, style, weather)

					if err != nil {
						t.Fatal(err)
					}

					for _, psi := range []float64{tune.TirePressureFront, tune.TirePressureRear} {
						if psi < 15 || psi > 40 {
							t.Errorf("%s/%s/%s: tire pressure %.1f out of range", style, weather, car.Model, psi)
						}
					}
				}
			}
		}
	}
}

func TestCamberBounds(t *testing.T) {
	for _, style := range AvailableTuneStyles {
		for _, weather := range AvailableWeatherPresets {
			for _, car := range testGarage {
				tune, err := ComputeTune(car, nil, style, weather)

				if err != nil {
					t.Fatal(err)
				}

				for _, camber := range []float64{tune.CamberFront, tune.CamberRear} {
					if camber >= 0 || camber <= -5 {
						t.Errorf("%s/%s/%s: camber %.1f out of range", style, weather, car.Model, camber)
					}
				}
			}
		}
	}
}

func TestDifferentialFieldsByDrivetrain(t *testing.T) {
	for _, car := range testGarage {
		tune, err := ComputeTune(car, nil, StyleRoad, WeatherDry)

		if err != nil {
			t.Fatal(err)
		}

		defined := tune.CenterDiff != nil && tune.FrontDiff != nil && tune.RearDiff != nil
		undefined := tune.CenterDiff == nil && tune.FrontDiff == nil && tune.RearDiff == nil

		if car.Drivetrain.IsAllWheel() && !defined {
			t.Errorf("%s: expected center/front/rear diff fields for %s", car.Model, car.Drivetrain)
		}

		if !car.Drivetrain.IsAllWheel() && !undefined {
			t.Errorf("%s: expected no center/front/rear diff fields for %s", car.Model, car.Drivetrain)
		}
	}
}

func TestWetWeatherDeltas(t *testing.T) {
	for _, car := range testGarage {
		dry, err := ComputeTune(car, nil, StyleRace, WeatherDry)

		if err != nil {
			t.Fatal(err)
		}

		wet, err := ComputeTune(car, nil, StyleRace, WeatherWet)

		if err != nil {
			t.Fatal(err)
		}

		if wet.TirePressureFront >= dry.TirePressureFront || wet.TirePressureRear >= dry.TirePressureRear {
			t.Errorf("%s: wet pressures not below dry", car.Model)
		}

		if wet.DiffAccel >= dry.DiffAccel {
			t.Errorf("%s: wet diff accel %d not below dry %d", car.Model, wet.DiffAccel, dry.DiffAccel)
		}

		if wet.CamberFront >= dry.CamberFront || wet.CamberRear >= dry.CamberRear {
			t.Errorf("%s: wet camber magnitude not above dry", car.Model)
		}

		if wet.DownforceFront <= dry.DownforceFront || wet.DownforceRear <= dry.DownforceRear {
			t.Errorf("%s: wet downforce not above dry", car.Model)
		}
	}
}

func TestComputeTuneDeterminism(t *testing.T) {
	upgrades := UpgradeSelection{
		SectionPlatform: {"Springs": "Race", "Brakes": "Sport"},
		SectionAero:     {"Rear Wing": "Race"},
	}

	first, err := ComputeTune(testGTR, upgrades, StyleRace, WeatherWet)

	if err != nil {
		t.Fatal(err)
	}

	second, err := ComputeTune(testGTR, upgrades, StyleRace, WeatherWet)

	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different tunes")
	}
}

func TestGTRRaceScenario(t *testing.T) {
	tune, err := ComputeTune(testGTR, nil, StyleRace, WeatherDry)

	if err != nil {
		t.Fatal(err)
	}

	if len(tune.GearRatios) != 6 {
		t.Errorf("expected 6 gears, got %d", len(tune.GearRatios))
	}

	if tune.FinalDrive <= 2.0 || tune.FinalDrive >= 6.0 {
		t.Errorf("final drive %.2f outside (2.0, 6.0)", tune.FinalDrive)
	}

	if tune.CenterDiff == nil || tune.FrontDiff == nil || tune.RearDiff == nil {
		t.Error("expected AWD differential fields to be defined")
	}
}

func TestUpgradesRaiseBaseline(t *testing.T) {
	baseline, err := ComputeTune(testGTR, nil, StyleRace, WeatherDry)

	if err != nil {
		t.Fatal(err)
	}

	upgraded, err := ComputeTune(testGTR, UpgradeSelection{
		SectionPlatform: {"Springs": "Race"},
		SectionAero:     {"Rear Wing": "Race"},
	}, StyleRace, WeatherDry)

	if err != nil {
		t.Fatal(err)
	}

	if upgraded.SpringFront <= baseline.SpringFront || upgraded.SpringRear <= baseline.SpringRear {
		t.Error("race springs did not raise spring rates")
	}

	if upgraded.DownforceRear <= baseline.DownforceRear {
		t.Error("race rear wing did not raise rear downforce")
	}
}

func TestBrakeBiasFWDAboveRWD(t *testing.T) {
	fwd, err := ComputeTune(testCivic, nil, StyleRace, WeatherDry)

	if err != nil {
		t.Fatal(err)
	}

	rwd, err := ComputeTune(testGT3RS, nil, StyleRace, WeatherDry)

	if err != nil {
		t.Fatal(err)
	}

	if fwd.BrakeBias <= rwd.BrakeBias {
		t.Errorf("FWD brake bias %d not above RWD %d", fwd.BrakeBias, rwd.BrakeBias)
	}
}

func TestHighPIRaceAero(t *testing.T) {
	tune, err := ComputeTune(testGT3RS, nil, StyleRace, WeatherDry)

	if err != nil {
		t.Fatal(err)
	}

	if tune.DownforceFront != 200 || tune.DownforceRear != 300 {
		t.Errorf("expected 200/300 downforce above PI 850, got %.0f/%.0f",
			tune.DownforceFront, tune.DownforceRear)
	}
}
