package fh5tuner

// applyWetWeather softens a finished tune for a wet surface: lower
// pressures, less accel lock, more camber, a touch of rear toe-in, more
// downforce and an extra level of traction control. Always the last step.
func applyWetWeather(tune *Tune) {
	tune.TirePressureFront = clamp(tune.TirePressureFront-2, minTirePSI, maxTirePSI)
	tune.TirePressureRear = clamp(tune.TirePressureRear-2, minTirePSI, maxTirePSI)

	tune.DiffAccel -= 10

	if tune.DiffAccel < 10 {
		tune.DiffAccel = 10
	}

	tune.CamberFront = round1(tune.CamberFront - 0.3)
	tune.CamberRear = round1(tune.CamberRear - 0.3)
	tune.ToeRear = round2(tune.ToeRear + 0.05)

	tune.DownforceFront += 20
	tune.DownforceRear += 30

	tune.TractionControl = clampInt(tune.TractionControl+1, 0, 2)
}
