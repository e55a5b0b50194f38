package client

import (
	"time"

	"github.com/Dvij-Joshi/neon-glide-arena/protocol"
)

// PaddleSender bounds the rate a peer reports its own paddle. Rendering may
// run at any frame rate; outbound bandwidth stays capped by a minimum
// inter-send interval rather than a timer.
type PaddleSender struct {
	minInterval time.Duration
	lastSent    time.Time
}

func NewPaddleSender() *PaddleSender {
	return &PaddleSender{minInterval: time.Second / protocol.PaddleSendHz}
}

// Allow reports whether a paddle update may be sent now, and if so consumes
// the slot.
func (s *PaddleSender) Allow(now time.Time) bool {
	if now.Sub(s.lastSent) < s.minInterval {
		return false
	}
	s.lastSent = now
	return true
}
