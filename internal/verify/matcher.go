package verify

import (
	"strings"

	"github.com/jayarAsio/stl-gaming-system-sub001/internal/http-server/model"
)

// Resolve maps a bet's free-text game label to a canonical game in the
// schedule. The comparison is case-insensitive substring containment in
// either direction, and the first game in schedule order wins. A label
// like "Swer" can therefore land on "Swer2" when "Swer3" was meant; the
// first-match policy is deliberate and documented, not an accident.
// A miss returns nil: the bet has nothing to report against today's
// schedule, which is not an error.
func Resolve(label string, sched *model.Schedule) *model.Game {
	needle := strings.ToLower(strings.TrimSpace(label))
	if needle == "" {
		return nil
	}

	for i := range sched.Games {
		name := strings.ToLower(sched.Games[i].Name)

		if strings.Contains(name, needle) || strings.Contains(needle, name) {
			return &sched.Games[i]
		}
	}

	return nil
}
