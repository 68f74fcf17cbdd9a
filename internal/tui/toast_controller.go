package tui

import (
	"time"

	"github.com/colonyops/closet/internal/core/notify"
)

const (
	defaultToastTTL   = 4 * time.Second
	maxToasts         = 3
	errorTTLFactor    = 2
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 44
)

// toast is one visible notification. Repeats of the newest toast fold into
// it and raise count instead of stacking.
type toast struct {
	notification notify.Notification
	remaining    time.Duration
	count        int
}

// ToastController keeps the stack of visible toasts and the state of the
// tick chain that expires them. Error toasts stay errorTTLFactor times
// longer than the rest.
type ToastController struct {
	ttl     time.Duration
	toasts  []toast
	ticking bool
}

// NewToastController creates a controller whose toasts live for ttl.
// A non-positive ttl selects defaultToastTTL.
func NewToastController(ttl time.Duration) *ToastController {
	if ttl <= 0 {
		ttl = defaultToastTTL
	}
	return &ToastController{ttl: ttl}
}

func (c *ToastController) ttlFor(level notify.Level) time.Duration {
	if level == notify.LevelError {
		return c.ttl * errorTTLFactor
	}
	return c.ttl
}

// Push shows n. A repeat of the newest toast restarts its timer and bumps its
// count; otherwise n goes on top and the oldest is dropped past maxToasts.
func (c *ToastController) Push(n notify.Notification) {
	if last := len(c.toasts) - 1; last >= 0 {
		top := &c.toasts[last]
		if top.notification.Level == n.Level && top.notification.Message == n.Message {
			top.count++
			top.remaining = c.ttlFor(n.Level)
			return
		}
	}

	c.toasts = append(c.toasts, toast{notification: n, remaining: c.ttlFor(n.Level), count: 1})
	if len(c.toasts) > maxToasts {
		c.toasts = c.toasts[len(c.toasts)-maxToasts:]
	}
}

// StartTicking reports whether a tick chain must be scheduled: there are
// toasts and no chain is running. It marks the chain as running.
func (c *ToastController) StartTicking() bool {
	if c.ticking || len(c.toasts) == 0 {
		return false
	}
	c.ticking = true
	return true
}

// Tick ages every toast by d and drops the expired ones. It reports whether
// the chain should continue; once the stack is empty the chain stops.
func (c *ToastController) Tick(d time.Duration) bool {
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
	c.ticking = len(alive) > 0
	return c.ticking
}

// Dismiss removes the newest toast.
func (c *ToastController) Dismiss() {
	if len(c.toasts) > 0 {
		c.toasts = c.toasts[:len(c.toasts)-1]
	}
}

// HasToasts reports whether any toast is visible.
func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

// Toasts returns the visible toasts, oldest first.
func (c *ToastController) Toasts() []toast {
	return c.toasts
}
