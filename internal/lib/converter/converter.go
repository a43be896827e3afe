package converter

import (
	"fmt"
	"math"
)

// Amounts travel as pesos with centavo precision; books are kept in
// integer centavos to avoid float drift.

func ConvertPesosToCentavos(amount float64) int {
	return int(math.Round(amount * 100))
}

func ConvertCentavosToPesos(amount int) float64 {
	return float64(amount) / 100
}

func FormatPesos(amount float64) string {
	return fmt.Sprintf("PHP %.2f", amount)
}
