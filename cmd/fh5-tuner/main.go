package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	tuner "github.com/Frazmcc/FH5-Tuner"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

var (
	configFile   string
	carName      string
	styleName    string
	weatherName  string
	upgradesFile string
	searchQuery  string
	listCars     bool
	outputJSON   bool
	outputFile   string
	noColor      bool
)

func init() {
	flag.StringVar(&configFile, "config", "config.yml", "config file location")
	flag.StringVar(&carName, "car", "", "car to tune, e.g. 'Nissan GT-R (R35)'")
	flag.StringVar(&styleName, "style", "", "tune style (Street/Road/Race/Drift/Rally/Offroad/Cruise/Drag)")
	flag.StringVar(&weatherName, "weather", "", "weather preset (Dry/Wet)")
	flag.StringVar(&upgradesFile, "upgrades", "", "YAML upgrade selection file")
	flag.StringVar(&searchQuery, "search", "", "search the car catalog and exit")
	flag.BoolVar(&listCars, "list", false, "list the car catalog and exit")
	flag.BoolVar(&outputJSON, "json", false, "output the tune as JSON instead of a sheet")
	flag.StringVar(&outputFile, "o", "", "write output to a file instead of stdout")
	flag.BoolVar(&noColor, "no-color", false, "disable colored output")
	flag.Parse()
}

func main() {
	if noColor {
		color.NoColor = true
	}

	config, err := tuner.ReadConfig(configFile)

	if err != nil {
		logrus.Fatalf("could not read config file, err: %s", err)
	}

	cars, err := tuner.LoadCars(config.Content.CarsPath())

	if err != nil {
		logrus.Fatalf("could not load car catalog, err: %s", err)
	}

	if listCars {
		for _, car := range cars {
			fmt.Printf("%s (%d) - PI %d, %s\n", car.DisplayName(), car.Year, car.PI, car.Drivetrain)
		}

		return
	}

	if searchQuery != "" {
		index, err := tuner.NewCarIndex(cars)

		if err != nil {
			logrus.Fatalf("could not build car search index, err: %s", err)
		}

		matches, err := index.Search(searchQuery, 10)

		if err != nil {
			logrus.Fatalf("could not search car catalog, err: %s", err)
		}

		if len(matches) == 0 {
			logrus.Infof("No cars matched %q", searchQuery)
			return
		}

		for _, car := range matches {
			fmt.Printf("%s (%d) - PI %d, %s\n", car.DisplayName(), car.Year, car.PI, car.Drivetrain)
		}

		return
	}

	if carName == "" {
		logrus.Fatal("no car given, use -car (or -list / -search to browse the catalog)")
	}

	car, err := cars.Find(carName)

	if err != nil {
		logrus.Fatalf("could not find car %q, err: %s", carName, err)
	}

	if styleName == "" {
		styleName = config.Defaults.Style
	}

	style, err := tuner.ParseTuneStyle(styleName)

	if err != nil {
		logrus.Fatalf("invalid tune style, err: %s", err)
	}

	if weatherName == "" {
		weatherName = config.Defaults.Weather
	}

	weather, err := tuner.ParseWeatherPreset(weatherName)

	if err != nil {
		logrus.Fatalf("invalid weather preset, err: %s", err)
	}

	upgrades := make(tuner.UpgradeSelection)

	if upgradesFile != "" {
		upgrades, err = tuner.LoadUpgradeSelection(upgradesFile)

		if err != nil {
			logrus.Fatalf("could not load upgrade selection, err: %s", err)
		}
	}

	tune, err := tuner.ComputeTune(car, upgrades, style, weather)

	if err != nil {
		logrus.Fatalf("could not compute tune, err: %s", err)
	}

	var output string

	if outputJSON {
		data, err := json.MarshalIndent(tune, "", "  ")

		if err != nil {
			logrus.Fatalf("could not marshal tune, err: %s", err)
		}

		output = string(data) + "\n"
	} else {
		output = tune.Sheet(car, style, weather, upgrades)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(output), 0644); err != nil {
			logrus.Fatalf("could not write output file, err: %s", err)
		}

		logrus.Infof("Tune written to %s", outputFile)

		return
	}

	if outputJSON {
		fmt.Print(output)
		return
	}

	printSheet(output)
}

// printSheet colorizes section headings, which the sheet marks by a
// following rule of dashes.
func printSheet(sheet string) {
	header := color.New(color.FgCyan, color.Bold)

	lines := strings.Split(sheet, "\n")

	for i, line := range lines {
		if i+1 < len(lines) && strings.HasPrefix(lines[i+1], "--") {
			_, _ = header.Println(line)
		} else {
			fmt.Println(line)
		}
	}
}
