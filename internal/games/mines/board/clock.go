package board

import "fmt"

// Clock counts whole seconds of play.
type Clock struct {
	seconds uint64
}

func (c *Clock) Tick()           { c.seconds++ }
func (c *Clock) Reset()          { c.seconds = 0 }
func (c *Clock) Seconds() uint64 { return c.seconds }

// String formats the clock as HH:MM:SS. Hours are not capped.
func (c Clock) String() string {
	return FormatSeconds(c.seconds)
}

// FormatSeconds formats a duration in seconds as HH:MM:SS.
func FormatSeconds(s uint64) string {
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s/60)%60, s%60)
}
