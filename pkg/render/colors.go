package render

// цвета ребер по типу сгиба
var assignmentColors = map[string]string{
	"M": "#e74c3c",
	"V": "#3498db",
	"B": "#d3d3d3",
	"F": "#f1c40f",
	"U": "#7f8c8d",
}

// названия серий на графике
var assignmentNames = map[string]string{
	"M": "Гора (M)",
	"V": "Долина (V)",
	"B": "Граница (B)",
	"F": "Плоский (F)",
	"U": "Без типа (U)",
}

func edgeColor(assignment string) string {
	if c, ok := assignmentColors[assignment]; ok {
		return c
	}
	return assignmentColors["U"]
}

func edgeSeries(assignment string) string {
	if n, ok := assignmentNames[assignment]; ok {
		return n
	}
	return assignmentNames["U"]
}
