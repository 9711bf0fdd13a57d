package geometry

import (
	"github.com/chewxy/math32"

	"github.com/fernseed/treegen/pkg/math"
)

// Sphere builds a UV sphere of the given radius centered at the origin.
// widthSegments is floored to 3 and heightSegments to 2. Used for the
// canopy of the primitive-based archetype trees.
func Sphere(radius float32, widthSegments, heightSegments int) *Mesh {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}

	m := &Mesh{}

	// Vertex grid with a duplicated seam column so UVs wrap cleanly.
	cols := widthSegments + 1
	for i := 0; i <= heightSegments; i++ {
		v := float32(i) / float32(heightSegments)
		phi := v * math32.Pi // 0 at the top pole
		for j := 0; j <= widthSegments; j++ {
			u := float32(j) / float32(widthSegments)
			theta := u * 2 * math32.Pi

			n := math.Vec3{
				X: math32.Sin(phi) * math32.Cos(theta),
				Y: math32.Cos(phi),
				Z: math32.Sin(phi) * math32.Sin(theta),
			}
			m.addVertex(n.Scale(radius), n, math.Vec2{X: u, Y: v})
		}
	}

	for i := 0; i < heightSegments; i++ {
		for j := 0; j < widthSegments; j++ {
			a := uint32(i*cols + j)
			b := a + 1
			c := a + uint32(cols)
			d := c + 1

			// Skip the degenerate triangle at each pole.
			if i > 0 {
				m.Triangles = append(m.Triangles, [3]uint32{a, b, c})
			}
			if i < heightSegments-1 {
				m.Triangles = append(m.Triangles, [3]uint32{b, d, c})
			}
		}
	}
	return m
}
