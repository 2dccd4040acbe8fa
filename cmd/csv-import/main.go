package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	tuner "github.com/Frazmcc/FH5-Tuner"

	"github.com/sirupsen/logrus"
)

// csv-import converts a car list spreadsheet export into the cars.json
// catalog the tuner reads. Column order doesn't matter; columns are matched
// by header name.

var (
	inFile  string
	outFile string
)

func init() {
	flag.StringVar(&inFile, "in", "", "CSV file to convert")
	flag.StringVar(&outFile, "out", "cars.json", "JSON catalog to write")
	flag.Parse()
}

func main() {
	if inFile == "" {
		logrus.Fatal("no input file given, use -in")
	}

	f, err := os.Open(inFile)

	if err != nil {
		logrus.Fatalf("could not open input file, err: %s", err)
	}

	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	headers, err := r.Read()

	if err != nil {
		logrus.Fatalf("could not read CSV header row, err: %s", err)
	}

	columns := make(map[string]int)

	for i, h := range headers {
		columns[normalizeHeader(h)] = i
	}

	var cars tuner.Cars

	skipped := 0

	for line := 2; ; line++ {
		record, err := r.Read()

		if err == io.EOF {
			break
		} else if err != nil {
			logrus.Fatalf("could not read CSV row, err: %s", err)
		}

		car, err := carFromRecord(columns, record)

		if err != nil {
			logrus.WithError(err).Warnf("Skipping line %d", line)
			skipped++

			continue
		}

		cars = append(cars, car)
	}

	out, err := os.Create(outFile)

	if err != nil {
		logrus.Fatalf("could not create output file, err: %s", err)
	}

	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	if err := enc.Encode(cars); err != nil {
		logrus.Fatalf("could not write car catalog, err: %s", err)
	}

	logrus.Infof("Wrote %d cars to %s (%d rows skipped)", len(cars), outFile, skipped)
}

func carFromRecord(columns map[string]int, record []string) (*tuner.Car, error) {
	field := func(name string) string {
		i, ok := columns[name]

		if !ok || i >= len(record) {
			return ""
		}

		return strings.TrimSpace(record[i])
	}

	number := func(name string) float64 {
		v, err := strconv.ParseFloat(strings.ReplaceAll(field(name), ",", ""), 64)

		if err != nil {
			return 0
		}

		return v
	}

	car := &tuner.Car{
		Manufacturer:  field("manufacturer"),
		Model:         field("model"),
		Year:          int(number("year")),
		PI:            int(number("pi")),
		PowerHP:       number("power_hp"),
		WeightLBS:     number("weight_lbs"),
		EngineType:    field("engine_type"),
		Aspiration:    field("aspiration"),
		DisplacementL: number("displacement_l"),

		Gears:           int(number("gears")),
		WeightDistFront: number("weight_dist_front"),
		TopSpeedMPH:     number("top_speed_mph"),
		TorqueLBFT:      number("torque_lbft"),
	}

	if drivetrain, ok := tuner.ParseDrivetrain(field("drivetrain")); ok {
		car.Drivetrain = drivetrain
	}

	if err := car.Validate(); err != nil {
		return nil, err
	}

	return car, nil
}

// normalizeHeader maps spreadsheet headings like "Power (HP)" onto the JSON
// field names.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.NewReplacer(" (hp)", "_hp", " (lbs)", "_lbs", " (l)", "_l", " ", "_", "(", "", ")", "").Replace(h)

	switch h {
	case "make":
		return "manufacturer"
	case "performance_index":
		return "pi"
	case "power":
		return "power_hp"
	case "weight", "curb_weight":
		return "weight_lbs"
	case "displacement":
		return "displacement_l"
	}

	return h
}
