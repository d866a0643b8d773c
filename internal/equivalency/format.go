package equivalency

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// English locale keeps separators stable regardless of the user's LANG.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousands separators.
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats f with precision decimals and thousands separators.
func FormatFloat(f float64, precision int) string {
	if precision <= 0 {
		return FormatNumber(int64(math.Round(f)))
	}
	formatted := strconv.FormatFloat(f, 'f', precision, 64)
	intPart, frac, _ := strings.Cut(formatted, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return formatted
	}
	if n == 0 && strings.HasPrefix(intPart, "-") {
		return "-0." + frac
	}
	return FormatNumber(n) + "." + frac
}

// FormatKg renders a kg figure, for example "4,800 kg".
func FormatKg(kg int) string {
	return FormatNumber(int64(kg)) + " kg"
}

// FormatTonnes renders a kg figure in tonnes with one decimal, for example
// "4.8 t".
func FormatTonnes(kg int) string {
	return FormatFloat(float64(kg)/1000, 1) + " t"
}

// FormatLarge abbreviates millions and billions.
func FormatLarge(n float64) string {
	switch {
	case n >= BillionThreshold:
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	case n >= LargeNumberThreshold:
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	default:
		return FormatNumber(int64(math.Round(n)))
	}
}
