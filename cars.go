package fh5tuner

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Drivetrain string

const (
	DrivetrainRWD       Drivetrain = "RWD"
	DrivetrainFWD       Drivetrain = "FWD"
	DrivetrainAWD       Drivetrain = "AWD"
	DrivetrainFourWheel Drivetrain = "4WD"
)

var AvailableDrivetrains = []Drivetrain{
	DrivetrainRWD,
	DrivetrainFWD,
	DrivetrainAWD,
	DrivetrainFourWheel,
}

// ParseDrivetrain matches a drivetrain layout name. The bool reports whether
// the name was recognized; callers treat an unrecognized name as "no swap".
func ParseDrivetrain(s string) (Drivetrain, bool) {
	for _, drivetrain := range AvailableDrivetrains {
		if strings.EqualFold(s, string(drivetrain)) {
			return drivetrain, true
		}
	}

	return "", false
}

// IsAllWheel reports whether all four wheels are driven, which decides
// whether the center/front/rear differential fields exist in a tune.
func (d Drivetrain) IsAllWheel() bool {
	return d == DrivetrainAWD || d == DrivetrainFourWheel
}

// Car is one vehicle record from the car catalog. The engine never mutates
// a Car; upgrades that change drivetrain or weight derive a copy.
type Car struct {
	Manufacturer  string     `json:"manufacturer"`
	Model         string     `json:"model"`
	Year          int        `json:"year"`
	PI            int        `json:"pi"`
	Drivetrain    Drivetrain `json:"drivetrain"`
	PowerHP       float64    `json:"power_hp"`
	WeightLBS     float64    `json:"weight_lbs"`
	EngineType    string     `json:"engine_type"`
	Aspiration    string     `json:"aspiration"`
	DisplacementL float64    `json:"displacement_l"`

	// optional extended attributes, zero when the catalog doesn't know them
	Gears           int     `json:"gears,omitempty"`
	WeightDistFront float64 `json:"weight_dist_front,omitempty"`
	TopSpeedMPH     float64 `json:"top_speed_mph,omitempty"`
	TorqueLBFT      float64 `json:"torque_lbft,omitempty"`
}

func (c *Car) DisplayName() string {
	return fmt.Sprintf("%s %s", c.Manufacturer, c.Model)
}

var (
	ErrInvalidCarSpec = errors.New("fh5tuner: invalid car spec")
	ErrCarNotFound    = errors.New("fh5tuner: car not found")
)

// Validate checks the fields the tune calculation divides by or compares
// against. Optional attributes are never an error.
func (c *Car) Validate() error {
	if c.Manufacturer == "" || c.Model == "" {
		return errors.Wrap(ErrInvalidCarSpec, "manufacturer and model are required")
	}

	if c.WeightLBS <= 0 {
		return errors.Wrapf(ErrInvalidCarSpec, "weight must be positive, got %.0f", c.WeightLBS)
	}

	if c.PowerHP <= 0 {
		return errors.Wrapf(ErrInvalidCarSpec, "power must be positive, got %.0f", c.PowerHP)
	}

	return nil
}

type Cars []*Car

// Find looks a car up by its display name, with or without the model year
// appended: both "Nissan GT-R (R35) 2017" and the "Nissan GT-R (R35) (2017)"
// form the list and search output prints. Matching is case-insensitive.
func (cs Cars) Find(name string) (*Car, error) {
	for _, car := range cs {
		if strings.EqualFold(name, car.DisplayName()) {
			return car, nil
		}

		if strings.EqualFold(name, fmt.Sprintf("%s %d", car.DisplayName(), car.Year)) {
			return car, nil
		}

		if strings.EqualFold(name, fmt.Sprintf("%s (%d)", car.DisplayName(), car.Year)) {
			return car, nil
		}
	}

	return nil, errors.Wrap(ErrCarNotFound, name)
}

func (cs Cars) Manufacturers() []string {
	seen := make(map[string]bool)

	var out []string

	for _, car := range cs {
		if !seen[car.Manufacturer] {
			seen[car.Manufacturer] = true
			out = append(out, car.Manufacturer)
		}
	}

	sort.Strings(out)

	return out
}

// LoadCars reads the car catalog JSON. Records which fail validation are
// skipped with a warning rather than failing the whole catalog.
func LoadCars(path string) (Cars, error) {
	f, err := os.Open(path)

	if err != nil {
		return nil, errors.Wrapf(err, "couldn't open car catalog %s", path)
	}

	defer f.Close()

	var loaded Cars

	if err := json.NewDecoder(f).Decode(&loaded); err != nil {
		return nil, errors.Wrapf(err, "couldn't decode car catalog %s", path)
	}

	var cars Cars

	for _, car := range loaded {
		if err := car.Validate(); err != nil {
			logrus.WithError(err).Warnf("Skipping invalid car catalog entry: %s %s", car.Manufacturer, car.Model)
			continue
		}

		cars = append(cars, car)
	}

	sort.Slice(cars, func(i, j int) bool {
		if cars[i].Manufacturer != cars[j].Manufacturer {
			return cars[i].Manufacturer < cars[j].Manufacturer
		}

		if cars[i].Model != cars[j].Model {
			return cars[i].Model < cars[j].Model
		}

		return cars[i].Year < cars[j].Year
	})

	return cars, nil
}
