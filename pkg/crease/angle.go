package crease

// AngleTable - метка сгиба -> двугранный угол в градусах.
// Регистр важен, неизвестные метки дают плоский угол 0.
type AngleTable map[string]float64

func DefaultAngles() AngleTable {
	return AngleTable{
		"V": 180, "v": 180,
		"M": -180, "m": -180,
	}
}

func (t AngleTable) Angle(label string) float64 {
	return t[label]
}
