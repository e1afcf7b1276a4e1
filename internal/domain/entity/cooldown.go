package entity

// Cooldown gates an action to at most Rate occurrences per second.
// Timestamps are milliseconds.
type Cooldown struct {
	Rate      float64
	LastFired int64
}

// NewCooldown creates a cooldown that is ready immediately for any timestamp
// past 1/rate seconds after the epoch.
func NewCooldown(rate float64) Cooldown {
	return Cooldown{Rate: rate}
}

// Ready reports whether at least 1/Rate seconds have elapsed between LastFired and now.
func (c Cooldown) Ready(now int64) bool {
	elapsed := float64(now-c.LastFired) / 1000
	return elapsed >= 1/c.Rate
}

// Trigger records at as the last firing time
func (c *Cooldown) Trigger(at int64) {
	c.LastFired = at
}
