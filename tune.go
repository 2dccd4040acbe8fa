package fh5tuner

import (
	"math"

	"github.com/pkg/errors"
)

// Tune is the full set of computed setup values for one car, style and
// weather combination. It is a pure computed value with no identity; the
// center/front/rear differential fields are only present for cars driving
// all four wheels.
type Tune struct {
	FinalDrive float64   `json:"final_drive"`
	GearRatios []float64 `json:"gear_ratios"`

	DiffAccel   int      `json:"diff_accel"`
	DiffDecel   int      `json:"diff_decel"`
	DiffPreload int      `json:"diff_preload"`
	CenterDiff  *float64 `json:"center_diff,omitempty"`
	FrontDiff   *float64 `json:"front_diff,omitempty"`
	RearDiff    *float64 `json:"rear_diff,omitempty"`

	BrakeBias     int `json:"brake_bias"`
	BrakePressure int `json:"brake_pressure"`

	SpringFront     float64 `json:"spring_front"`
	SpringRear      float64 `json:"spring_rear"`
	ARBFront        float64 `json:"arb_front"`
	ARBRear         float64 `json:"arb_rear"`
	RideHeightFront float64 `json:"ride_height_front"`
	RideHeightRear  float64 `json:"ride_height_rear"`

	CamberFront float64 `json:"camber_front"`
	CamberRear  float64 `json:"camber_rear"`
	ToeFront    float64 `json:"toe_front"`
	ToeRear     float64 `json:"toe_rear"`
	Caster      float64 `json:"caster"`

	ReboundFront float64 `json:"rebound_front"`
	ReboundRear  float64 `json:"rebound_rear"`
	BumpFront    float64 `json:"bump_front"`
	BumpRear     float64 `json:"bump_rear"`

	TireCompound      string  `json:"tire_compound"`
	TirePressureFront float64 `json:"tire_pressure_front"`
	TirePressureRear  float64 `json:"tire_pressure_rear"`

	DownforceFront float64 `json:"downforce_front"`
	DownforceRear  float64 `json:"downforce_rear"`

	TurboMap         float64 `json:"turbo_map"`
	TractionControl  int     `json:"traction_control"`
	ABS              int     `json:"abs"`
	StabilityControl int     `json:"stability_control"`
}

// ComputeTune derives a complete tune. It validates its inputs once here;
// the per-subsystem helpers below are total over well-formed values. The
// caller's car is never mutated.
func ComputeTune(car *Car, upgrades UpgradeSelection, style TuneStyle, weather WeatherPreset) (*Tune, error) {
	if car == nil {
		return nil, errors.Wrap(ErrInvalidCarSpec, "car is required")
	}

	if err := car.Validate(); err != nil {
		return nil, err
	}

	tab, ok := styleTable[style]

	if !ok {
		return nil, errors.Wrap(ErrUnknownTuneStyle, string(style))
	}

	switch weather {
	case WeatherDry, WeatherWet:
	default:
		return nil, errors.Wrap(ErrUnknownWeather, string(weather))
	}

	if upgrades == nil {
		upgrades = make(UpgradeSelection)
	}

	effective := effectiveCar(car, upgrades)

	// power-to-weight in hp/lb, computed once and shared
	pwr := effective.PowerHP / effective.WeightLBS

	tune := &Tune{}

	gearingFor(tune, tab, style, pwr)
	differentialFor(tune, effective, tab, style)
	suspensionFor(tune, effective, tab, style)
	alignmentFor(tune, tab)
	dampingFor(tune, effective, tab, style)
	tiresFor(tune, effective, tab)
	aeroFor(tune, effective, tab, style)
	electronicsFor(tune, effective, tab, pwr)
	brakesFor(tune, effective, tab)

	normalizeGearCount(tune, effective, upgrades)
	applyManualOverrides(tune, upgrades)

	applySpringUpgrades(tune, upgrades)
	applyARBUpgrades(tune, upgrades)
	applyBrakeUpgrades(tune, upgrades)
	applyAeroUpgrades(tune, upgrades)
	applyTireUpgrades(tune, upgrades)
	applyDifferentialUpgrades(tune, upgrades)
	applyAspirationUpgrades(tune, upgrades)

	if weather == WeatherWet {
		applyWetWeather(tune)
	}

	return tune, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}

	if v > max {
		return max
	}

	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}

	if v > max {
		return max
	}

	return v
}

func floatPtr(v float64) *float64 {
	return &v
}
