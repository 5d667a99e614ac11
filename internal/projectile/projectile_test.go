package projectile

import (
	"errors"
	"testing"

	"github.com/gogpu/rt"
)

func TestTick(t *testing.T) {
	env := Environment{
		Gravity: rt.NewVector(0, -0.1, 0),
		Wind:    rt.NewVector(-0.01, 0, 0),
	}
	p := Projectile{
		Position: rt.NewPoint(0, 1, 0),
		Velocity: rt.NewVector(1, 1, 0),
	}

	got := Tick(env, p)

	if want := rt.NewPoint(1, 2, 0); !got.Position.Equal(want) {
		t.Errorf("Position = %v, want %v", got.Position, want)
	}
	if want := rt.NewVector(0.99, 0.9, 0); !got.Velocity.Equal(want) {
		t.Errorf("Velocity = %v, want %v", got.Velocity, want)
	}
}

func TestTrajectory_Lands(t *testing.T) {
	env := Environment{Gravity: rt.NewVector(0, -0.1, 0)}
	p := Projectile{
		Position: rt.NewPoint(0, 1, 0),
		Velocity: rt.NewVector(1, 0, 0),
	}

	path, err := Trajectory(env, p, 1000)
	if err != nil {
		t.Fatalf("Trajectory() error: %v", err)
	}
	if len(path) == 0 {
		t.Fatal("Trajectory() returned an empty path")
	}

	last := path[len(path)-1]
	if last.Y > 0 {
		t.Errorf("last position %v is still above ground", last)
	}
	for i, pos := range path[:len(path)-1] {
		if pos.Y <= 0 {
			t.Errorf("position %d = %v landed before the end of the path", i, pos)
		}
	}
	for i := 1; i < len(path); i++ {
		if !rt.FloatsEqual(path[i].X-path[i-1].X, 1) {
			t.Errorf("x step %d = %v, want 1 without wind", i, path[i].X-path[i-1].X)
		}
	}
}

func TestTrajectory_StartsOnGround(t *testing.T) {
	p := Projectile{Position: rt.NewPoint(0, 0, 0), Velocity: rt.NewVector(1, 1, 0)}
	path, err := Trajectory(Environment{}, p, 10)
	if err != nil {
		t.Fatalf("Trajectory() error: %v", err)
	}
	if len(path) != 0 {
		t.Errorf("len(path) = %d, want 0", len(path))
	}
}

func TestTrajectory_NoLanding(t *testing.T) {
	p := Projectile{Position: rt.NewPoint(0, 1, 0), Velocity: rt.NewVector(1, 1, 0)}

	path, err := Trajectory(Environment{}, p, 25)
	if !errors.Is(err, ErrNoLanding) {
		t.Fatalf("Trajectory() error = %v, want ErrNoLanding", err)
	}
	if len(path) != 25 {
		t.Errorf("len(path) = %d, want 25", len(path))
	}
}

func TestPlot(t *testing.T) {
	c, err := rt.NewCanvas(10, 5)
	if err != nil {
		t.Fatal(err)
	}

	path := []rt.Point{
		rt.NewPoint(0, 0, 0),
		rt.NewPoint(2.4, 3.6, 0),
		rt.NewPoint(-1, 2, 0),  // off the left edge
		rt.NewPoint(4, 10, 0),  // above the top
		rt.NewPoint(9, 0.2, 0), // rounds to ground row
	}

	n := Plot(c, path, rt.Red)
	if n != 3 {
		t.Errorf("Plot() = %d, want 3", n)
	}

	for _, px := range []struct{ x, y int }{{0, 4}, {2, 0}, {9, 4}} {
		if got := c.PixelAt(px.x, px.y); !got.Equal(rt.Red) {
			t.Errorf("PixelAt(%d, %d) = %v, want red", px.x, px.y, got)
		}
	}
	if got := c.PixelAt(4, 0); !got.Equal(rt.Black) {
		t.Errorf("PixelAt(4, 0) = %v, want black", got)
	}
}
