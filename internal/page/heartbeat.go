package page

import "time"

const (
	HeartbeatPeriod = 2800 * time.Millisecond
	FirstBeat       = 280 * time.Millisecond
	SecondBeat      = 840 * time.Millisecond

	pulseClass = "animate"
)

func (c *Controller) startHeartbeat() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopHeartbeat != nil || c.stopped {
		return
	}
	c.heartbeatCycle()
	c.stopHeartbeat = c.sched.Every(HeartbeatPeriod, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.stopped {
			c.heartbeatCycle()
		}
	})
}

// heartbeatCycle schedules the two beats of one cycle. Callers hold mu.
func (c *Controller) heartbeatCycle() {
	c.later(FirstBeat, c.triggerPulse)
	c.later(SecondBeat, c.triggerPulse)
}

// triggerPulse restarts the animation on the next pulse wave. Callers hold mu.
func (c *Controller) triggerPulse() {
	waves := c.doc.QueryAll(".pulse-wave")
	if len(waves) == 0 {
		return
	}
	idx := c.state.WaveIndex % len(waves)
	waves[idx].RestartAnimation(pulseClass)
	c.state.WaveIndex = (idx + 1) % len(waves)
}
