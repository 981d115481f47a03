package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatPrice formata um valor monetário com separador de milhares,
// no padrão exibido pelo dashboard (ex: 1234567.5 -> "$1,234,567.5").
// Valores ausentes (zero) são exibidos como "$0".
func FormatPrice(value float64) string {
	if value <= 0 {
		return "$0"
	}

	formatted := strconv.FormatFloat(value, 'f', -1, 64)

	intPart := formatted
	decPart := ""
	if idx := strings.Index(formatted, "."); idx >= 0 {
		intPart = formatted[:idx]
		decPart = formatted[idx:]
	}

	// Agrupar a parte inteira em blocos de três dígitos
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	return "$" + strings.Join(groups, ",") + decPart
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
