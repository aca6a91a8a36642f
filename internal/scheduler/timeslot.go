package scheduler

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Named slots map to fixed wall-clock times.
var namedSlots = map[string][2]int{
	"morning":   {9, 0},
	"afternoon": {14, 0},
	"evening":   {18, 0},
}

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

// ResolveTimeSlot turns a time token into an instant on day. Absent or
// unrecognized tokens fall back to the morning slot.
func ResolveTimeSlot(token string, day Day) time.Time {
	tok := strings.ToLower(strings.TrimSpace(token))
	if slot, ok := namedSlots[tok]; ok {
		return day.At(slot[0], slot[1])
	}
	if m := clockPattern.FindStringSubmatch(tok); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		return day.At(h, min)
	}
	morning := namedSlots["morning"]
	return day.At(morning[0], morning[1])
}
