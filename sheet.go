package fh5tuner

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/mitchellh/go-wordwrap"
)

const sheetWidth = 46

// Sheet renders the tune as a fixed-width text sheet, grouped the way the
// in-game tuning screens are. The layout is a presentation contract only;
// the numbers all come from the Tune as computed.
func (t *Tune) Sheet(car *Car, style TuneStyle, weather WeatherPreset, upgrades UpgradeSelection) string {
	var b strings.Builder

	line := func(label string, format string, args ...interface{}) {
		value := fmt.Sprintf(format, args...)

		// pad in runes so catalog-supplied labels stay aligned
		b.WriteString(fmt.Sprintf("%-*s%s\n", sheetWidth-utf8.RuneCountInString(value), label, value))
	}

	header := func(name string) {
		b.WriteString("\n" + name + "\n")
		b.WriteString(strings.Repeat("-", sheetWidth) + "\n")
	}

	b.WriteString(strings.Repeat("=", sheetWidth) + "\n")
	b.WriteString(fmt.Sprintf("%s (%d)\n", car.DisplayName(), car.Year))
	b.WriteString(fmt.Sprintf("PI %d | %s | %s hp | %s lbs\n",
		car.PI, car.Drivetrain,
		humanize.Commaf(car.PowerHP), humanize.Commaf(car.WeightLBS)))
	b.WriteString(fmt.Sprintf("%s tune, %s\n", style, strings.ToLower(string(weather))))
	b.WriteString(strings.Repeat("=", sheetWidth) + "\n")

	header("Gearing")
	line("Final Drive", "%.2f", t.FinalDrive)

	for i, ratio := range t.GearRatios {
		line(fmt.Sprintf("Gear %d", i+1), "%.2f", ratio)
	}

	header("Differential")
	line("Acceleration", "%d%%", t.DiffAccel)
	line("Deceleration", "%d%%", t.DiffDecel)
	line("Preload", "%d%%", t.DiffPreload)

	if t.CenterDiff != nil {
		line("Center Balance", "%.0f%%", *t.CenterDiff)
	}

	if t.FrontDiff != nil {
		line("Front Accel", "%.1f%%", *t.FrontDiff)
	}

	if t.RearDiff != nil {
		line("Rear Accel", "%.1f%%", *t.RearDiff)
	}

	header("Brakes")
	line("Balance", "%d%%", t.BrakeBias)
	line("Pressure", "%d%%", t.BrakePressure)

	header("Springs & ARBs")
	line("Springs (F/R)", "%.1f / %.1f lb/in", t.SpringFront, t.SpringRear)
	line("ARBs (F/R)", "%.1f / %.1f", t.ARBFront, t.ARBRear)

	header("Ride Height")
	line("Height (F/R)", "%.1f / %.1f in", t.RideHeightFront, t.RideHeightRear)

	header("Alignment")
	line("Camber (F/R)", "%.1f / %.1f deg", t.CamberFront, t.CamberRear)
	line("Toe (F/R)", "%.2f / %.2f deg", t.ToeFront, t.ToeRear)
	line("Caster", "%.1f deg", t.Caster)

	header("Damping")
	line("Rebound (F/R)", "%.1f / %.1f", t.ReboundFront, t.ReboundRear)
	line("Bump (F/R)", "%.1f / %.1f", t.BumpFront, t.BumpRear)

	header("Tires")
	line("Compound", "%s", t.TireCompound)
	line("Pressure (F/R)", "%.1f / %.1f psi", t.TirePressureFront, t.TirePressureRear)

	header("Aero")
	line("Downforce (F/R)", "%.0f / %.0f lbs", t.DownforceFront, t.DownforceRear)

	header("Power & Assists")
	line("Turbo Mapping", "%.0f%%", t.TurboMap*100)
	line("Traction Control", "%d", t.TractionControl)
	line("ABS", "%d", t.ABS)
	line("Stability Control", "%d", t.StabilityControl)

	if summary := upgrades.Summary(); len(summary) > 0 {
		header("Applied Upgrades")
		b.WriteString(wordwrap.WrapString(strings.Join(summary, ", "), sheetWidth))
		b.WriteString("\n")
	}

	return b.String()
}
