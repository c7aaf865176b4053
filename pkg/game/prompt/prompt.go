// Package prompt holds the single on-screen text line shown under the
// crosshair. Two layers share it: a look prompt that stays until changed,
// and transient messages that cover it for a fixed time.
package prompt

import "time"

// FadeSpeed is how much alpha the prompt gains or loses per second
const FadeSpeed = 6.0

// Channel is the prompt surface. It keeps its own clock, advanced by Tick,
// so expiry never depends on the wall clock.
type Channel struct {
	now time.Duration

	sticky string

	message   string
	expiresAt time.Duration

	alpha float64
}

// New creates an empty channel
func New() *Channel {
	return &Channel{}
}

// ShowUntilChanged sets the look prompt. It stays until replaced or hidden.
func (c *Channel) ShowUntilChanged(text string) {
	c.sticky = text
}

// Show displays a transient message for d. It takes precedence over the
// look prompt until it expires. A later Show replaces an earlier one.
func (c *Channel) Show(text string, d time.Duration) {
	if d <= 0 {
		return
	}
	c.message = text
	c.expiresAt = c.now + d
}

// Hide clears the look prompt. Transient messages run their course.
func (c *Channel) Hide() {
	c.sticky = ""
}

// Clear drops both the look prompt and any transient message
func (c *Channel) Clear() {
	c.sticky = ""
	c.message = ""
	c.expiresAt = 0
}

// Tick advances the channel clock and the fade
func (c *Channel) Tick(dt time.Duration) {
	c.now += dt
	if c.message != "" && c.now >= c.expiresAt {
		c.message = ""
	}

	target := 0.0
	if c.Visible() {
		target = 1.0
	}
	step := FadeSpeed * dt.Seconds()
	switch {
	case c.alpha < target:
		c.alpha = min(target, c.alpha+step)
	case c.alpha > target:
		c.alpha = max(target, c.alpha-step)
	}
}

// Text returns what should be on screen now, transient messages first
func (c *Channel) Text() string {
	if c.message != "" {
		return c.message
	}
	return c.sticky
}

// Visible reports whether there is anything to show
func (c *Channel) Visible() bool {
	return c.Text() != ""
}

// Transient reports whether a timed message is covering the look prompt
func (c *Channel) Transient() bool {
	return c.message != ""
}

// Alpha returns the fade level in [0,1]
func (c *Channel) Alpha() float64 {
	return c.alpha
}
