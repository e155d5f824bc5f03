package tui

import (
	"math"

	"github.com/akyairhashvil/carebook/internal/config"
	"github.com/akyairhashvil/carebook/internal/platform"
	"github.com/akyairhashvil/carebook/internal/util"
	"github.com/charmbracelet/harmonica"
)

// smoothScroller eases the page toward a section requested by the nav.
// It implements platform.Scroller; the model steps it once per frame.
type smoothScroller struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	active bool
}

var _ platform.Scroller = (*smoothScroller)(nil)

func newSmoothScroller() *smoothScroller {
	return &smoothScroller{
		spring: harmonica.NewSpring(harmonica.FPS(config.FrameRate), config.SpringFrequency, 1.0),
	}
}

// sync records where the page currently is, so the next animation starts
// from there.
func (s *smoothScroller) sync(offset int) {
	if s.active {
		return
	}
	s.pos, s.vel = float64(offset), 0
}

func (s *smoothScroller) ScrollTo(target platform.Target, smooth bool) {
	s.target = target.Offset
	if !smooth {
		s.pos, s.vel = target.Offset, 0
	}
	s.active = true
}

// step advances one frame and returns the offset to show. It reports
// whether the animation is still running.
func (s *smoothScroller) step() (int, bool) {
	if !s.active {
		return util.Round(s.pos), false
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < 0.5 && math.Abs(s.vel) < 0.5 {
		s.pos, s.vel, s.active = s.target, 0, false
	}
	return util.Round(s.pos), s.active
}

// limit caps the target at the furthest offset the page can reach.
func (s *smoothScroller) limit(maxOffset int) {
	if s.target > float64(maxOffset) {
		s.target = float64(maxOffset)
	}
	if s.target < 0 {
		s.target = 0
	}
}

// cancel stops an animation, e.g. when the user scrolls by hand.
func (s *smoothScroller) cancel() {
	s.active = false
	s.vel = 0
}
