// Package cloud renders the alternative hero: a sphere of coloured points
// that slowly rotates as one rigid body and leans toward the pointer.
package cloud

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"

	"maxlab/canvas"
)

// Defaults for a generated cloud.
const (
	DefaultCount  = 4000
	DefaultRadius = 5.0
)

// Particle is one point of the cloud. Particles never change after
// generation; the cloud moves by rotating all of them together.
type Particle struct {
	Pos   r3.Vec
	Color colorful.Color
}

// Swatch is a palette entry with an integer sampling weight.
type Swatch struct {
	Color  colorful.Color
	Weight int
}

// DefaultPalette mixes a few accents with darker fillers that dominate, so
// the accents read as sparse highlights.
var DefaultPalette = []Swatch{
	{canvas.Hex("#00e5cc"), 3}, // cyan
	{canvas.Hex("#e5a045"), 2}, // amber
	{canvas.Hex("#78a0ff"), 1}, // periwinkle
	{canvas.Hex("#c878dc"), 1}, // soft violet
	{canvas.Hex("#e5788c"), 1}, // rose
	{canvas.Hex("#2a3340"), 6}, // slate
	{canvas.Hex("#3b4654"), 5}, // steel
	{canvas.Hex("#59636f"), 4}, // pewter
	{canvas.Hex("#1d242d"), 5}, // ink
}

// Expand flattens a weighted palette into a list where each colour appears
// Weight times. Entries with a non-positive weight are dropped.
func Expand(palette []Swatch) []colorful.Color {
	var out []colorful.Color
	for _, s := range palette {
		for i := 0; i < s.Weight; i++ {
			out = append(out, s.Color)
		}
	}
	return out
}

// Generate places count particles uniformly by volume inside a sphere of
// the given radius. Angles come from theta = 2πu and phi = acos(2v-1), and
// the distance from the centre from the cube root of a third uniform, so
// density does not bunch up at the core. Colours are drawn uniformly from
// the expanded palette.
func Generate(rng *rand.Rand, count int, radius float64, palette []Swatch) []Particle {
	if count <= 0 || radius <= 0 {
		return nil
	}
	colors := Expand(palette)
	if len(colors) == 0 {
		colors = []colorful.Color{canvas.Hex("#ffffff")}
	}

	particles := make([]Particle, count)
	for i := range particles {
		theta := 2 * math.Pi * rng.Float64()
		phi := math.Acos(2*rng.Float64() - 1)
		r := radius * math.Cbrt(rng.Float64())

		sinPhi := math.Sin(phi)
		p := r3.Vec{
			X: r * sinPhi * math.Cos(theta),
			Y: r * sinPhi * math.Sin(theta),
			Z: r * math.Cos(phi),
		}
		// Rounding can push a point a hair past the shell.
		for n := r3.Norm(p); n > radius; n = r3.Norm(p) {
			p = r3.Scale(radius/n*(1-1e-15), p)
		}
		particles[i] = Particle{Pos: p, Color: colors[rng.Intn(len(colors))]}
	}
	return particles
}
