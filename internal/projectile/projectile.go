// Package projectile simulates a projectile launched through an environment
// with constant gravity and wind, and plots its trajectory on an rt.Canvas.
package projectile

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/rt"
)

// ErrNoLanding is returned when a projectile is still airborne after the
// maximum number of ticks.
var ErrNoLanding = errors.New("projectile: did not land")

// Projectile is a point mass with a position and a velocity.
type Projectile struct {
	Position rt.Point
	Velocity rt.Vector
}

// Environment holds the constant accelerations applied on every tick.
type Environment struct {
	Gravity rt.Vector
	Wind    rt.Vector
}

// Tick advances p by one time step: the position moves by the velocity and
// the velocity changes by gravity plus wind.
func Tick(env Environment, p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// Trajectory returns the positions of p after every tick while it is above
// the ground (y > 0). The landing position is the last element; a projectile
// that starts on the ground yields an empty path.
// If p has not landed after maxTicks ticks, the positions so far are
// returned with an error wrapping ErrNoLanding.
func Trajectory(env Environment, p Projectile, maxTicks int) ([]rt.Point, error) {
	var path []rt.Point
	for p.Position.Y > 0 {
		if len(path) >= maxTicks {
			return path, fmt.Errorf("%w after %d ticks", ErrNoLanding, len(path))
		}
		p = Tick(env, p)
		path = append(path, p.Position)
	}

	rt.Logger().Debug("trajectory computed", "ticks", len(path))
	return path, nil
}

// Plot writes col at every position of path that falls on c and returns the
// number of pixels written. World y grows upward, so it is flipped to
// canvas rows; coordinates are rounded to the nearest pixel.
func Plot(c *rt.Canvas, path []rt.Point, col rt.Color) int {
	n := 0
	for _, p := range path {
		x := int(math.Round(p.X))
		y := c.Height() - 1 - int(math.Round(p.Y))
		if !c.InBounds(x, y) {
			continue
		}
		c.WritePixel(x, y, col)
		n++
	}
	return n
}
