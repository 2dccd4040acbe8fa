package fh5tuner

import (
	"strings"

	"github.com/pkg/errors"
)

type TuneStyle string

const (
	StyleStreet  TuneStyle = "Street"
	StyleRoad    TuneStyle = "Road"
	StyleRace    TuneStyle = "Race"
	StyleDrift   TuneStyle = "Drift"
	StyleRally   TuneStyle = "Rally"
	StyleOffroad TuneStyle = "Offroad"
	StyleCruise  TuneStyle = "Cruise"
	StyleDrag    TuneStyle = "Drag"
)

var AvailableTuneStyles = []TuneStyle{
	StyleStreet,
	StyleRoad,
	StyleRace,
	StyleDrift,
	StyleRally,
	StyleOffroad,
	StyleCruise,
	StyleDrag,
}

var ErrUnknownTuneStyle = errors.New("fh5tuner: unknown tune style")

// ParseTuneStyle matches a style name case-insensitively. An unmatched name
// is a hard error, never a silent fallback to some default style.
func ParseTuneStyle(s string) (TuneStyle, error) {
	for _, style := range AvailableTuneStyles {
		if strings.EqualFold(s, string(style)) {
			return style, nil
		}
	}

	return "", errors.Wrap(ErrUnknownTuneStyle, s)
}

type WeatherPreset string

const (
	WeatherDry WeatherPreset = "Dry"
	WeatherWet WeatherPreset = "Wet"
)

var AvailableWeatherPresets = []WeatherPreset{
	WeatherDry,
	WeatherWet,
}

var ErrUnknownWeather = errors.New("fh5tuner: unknown weather preset")

func ParseWeatherPreset(s string) (WeatherPreset, error) {
	for _, weather := range AvailableWeatherPresets {
		if strings.EqualFold(s, string(weather)) {
			return weather, nil
		}
	}

	return "", errors.Wrap(ErrUnknownWeather, s)
}
