package tui

import (
	"math"

	"github.com/akyairhashvil/carebook/internal/interpolate"
	"github.com/akyairhashvil/carebook/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numbers = message.NewPrinter(language.English)

// FormatCount renders a whole number with thousands separators ("12,000").
func FormatCount(v float64) string {
	return numbers.Sprintf("%d", int64(math.Floor(v)))
}

// FormatStat renders a counter's current value with the stat's suffix. The
// suffix only shows once the counter has landed on its target.
func FormatStat(stat models.Stat, state interpolate.CounterState) string {
	s := FormatCount(state.Current)
	if state.Target > 0 && state.Done() {
		s += stat.Suffix
	}
	return s
}
