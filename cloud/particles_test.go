package cloud

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestGenerateCountAndRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, tc := range []struct {
		count  int
		radius float64
	}{{DefaultCount, DefaultRadius}, {1, 0.5}, {250, 12}} {
		ps := Generate(rng, tc.count, tc.radius, DefaultPalette)
		require.Len(t, ps, tc.count)
		for i, p := range ps {
			assert.LessOrEqual(t, r3.Norm(p.Pos), tc.radius, "particle %d", i)
		}
	}
}

func TestGenerateDegenerateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Nil(t, Generate(rng, 0, 5, DefaultPalette))
	assert.Nil(t, Generate(rng, 10, 0, DefaultPalette))
	ps := Generate(rng, 3, 1, nil)
	assert.Len(t, ps, 3)
}

func TestGenerateIsUniformByVolume(t *testing.T) {
	// Half the volume of a sphere lies beyond radius / cbrt(2), so roughly
	// half the points must too. A uniform radius would put only ~21% there.
	const n = 20000
	rng := rand.New(rand.NewSource(7))
	ps := Generate(rng, n, 1, DefaultPalette)
	shell := math.Cbrt(0.5)
	outer := 0
	var cx, cy, cz float64
	for _, p := range ps {
		if r3.Norm(p.Pos) > shell {
			outer++
		}
		cx += p.Pos.X
		cy += p.Pos.Y
		cz += p.Pos.Z
	}
	assert.InDelta(t, 0.5, float64(outer)/n, 0.02)
	// No preferred direction: the centroid stays near the origin.
	assert.InDelta(t, 0, cx/n, 0.02)
	assert.InDelta(t, 0, cy/n, 0.02)
	assert.InDelta(t, 0, cz/n, 0.02)
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(42)), 100, 5, DefaultPalette)
	b := Generate(rand.New(rand.NewSource(42)), 100, 5, DefaultPalette)
	assert.Equal(t, a, b)
}

func TestPaletteWeighting(t *testing.T) {
	colors := Expand(DefaultPalette)
	total := 0
	for _, s := range DefaultPalette {
		total += s.Weight
	}
	assert.Len(t, colors, total)

	// Fillers outweigh accents.
	accents := 0
	for _, s := range DefaultPalette[:5] {
		accents += s.Weight
	}
	assert.Greater(t, total-accents, accents)

	rng := rand.New(rand.NewSource(3))
	ps := Generate(rng, 10000, 1, DefaultPalette)
	cyan := 0
	for _, p := range ps {
		if p.Color == DefaultPalette[0].Color {
			cyan++
		}
	}
	want := float64(DefaultPalette[0].Weight) / float64(total)
	assert.InDelta(t, want, float64(cyan)/10000, 0.02)
}

func TestExpandSkipsNonPositiveWeights(t *testing.T) {
	p := []Swatch{{DefaultPalette[0].Color, 0}, {DefaultPalette[1].Color, -3}, {DefaultPalette[2].Color, 2}}
	assert.Len(t, Expand(p), 2)
}
