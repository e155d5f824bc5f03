package parallax

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Layer eases one decorative layer toward the offset its field implies.
// The field itself stores raw samples; easing belongs to the consumer.
type Layer struct {
	Coefficient float64

	spring harmonica.Spring
	x, vx  float64
	y, vy  float64
}

// NewLayer builds a layer animated at fps frames per second.
func NewLayer(coefficient float64, fps int, frequency, damping float64) *Layer {
	return &Layer{
		Coefficient: coefficient,
		spring:      harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Target is the resting offset for the field's current sample, centred so a
// pointer in the middle of the container leaves the layer in place.
func (l *Layer) Target(f *Field) (x, y float64) {
	dx, dy := f.Offset(l.Coefficient)
	b := f.Bounds()
	return dx - b.Width/2*l.Coefficient, dy - b.Height/2*l.Coefficient
}

// Step advances the spring by one frame and returns the eased offset.
func (l *Layer) Step(f *Field) (x, y float64) {
	tx, ty := l.Target(f)
	l.x, l.vx = l.spring.Update(l.x, l.vx, tx)
	l.y, l.vy = l.spring.Update(l.y, l.vy, ty)
	return l.x, l.y
}

// Offset returns the eased offset without advancing.
func (l *Layer) Offset() (x, y float64) { return l.x, l.y }

// Settled reports whether the layer is at rest on the field's target.
func (l *Layer) Settled(f *Field) bool {
	const eps = 0.01
	tx, ty := l.Target(f)
	return math.Abs(l.x-tx) < eps && math.Abs(l.y-ty) < eps &&
		math.Abs(l.vx) < eps && math.Abs(l.vy) < eps
}
