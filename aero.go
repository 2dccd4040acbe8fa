package fh5tuner

// aeroFor sets base downforce. High-PI race builds carry substantially
// more wing than the class table.
func aeroFor(tune *Tune, car *Car, tab styleTunables, style TuneStyle) {
	tune.DownforceFront = tab.downforceFront
	tune.DownforceRear = tab.downforceRear

	if style == StyleRace && car.PI > 850 {
		tune.DownforceFront = 200
		tune.DownforceRear = 300
	}
}

func applyAeroUpgrades(tune *Tune, upgrades UpgradeSelection) {
	switch upgrades.Get(SectionAero, "Rear Wing") {
	case "Race":
		tune.DownforceRear += 50
	case "Sport":
		tune.DownforceRear += 20
	}

	switch upgrades.Get(SectionAero, "Front Bumper") {
	case "Sport":
		tune.DownforceFront += 20
	case "Race":
		tune.DownforceFront += 40
	}

	switch upgrades.Get(SectionAero, "Rear Bumper") {
	case "Sport":
		tune.DownforceRear += 15
	case "Race":
		tune.DownforceRear += 30
	}
}
