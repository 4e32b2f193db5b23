package sim

import (
	"cosmodrift/parameter"
	"cosmodrift/vmath"
)

// FrameData is the per-tick render extract: flat parallel buffers over the
// visible objects, plus the pooled trail particles of visible comets.
// Buffers are laid out for direct upload; indices i map to the same object
// across every per-object slice.
type FrameData struct {
	IDs       []uint64
	Kinds     []uint8
	Positions []float32 // 3 per object
	Scales    []float32
	Rotations []float32 // 4 per object, x y z w
	Opacities []float32
	Colors    []float32 // 3 per object

	// Comet-only channels, zero for other kinds
	TailLengths     []float32
	GlowIntensities []float32

	// Trail particles of all visible comets, pooled
	TrailPositions []float32 // 3 per particle
	TrailColors    []float32 // 4 per particle, rgb + fade alpha
	TrailSizes     []float32
}

// Count returns the number of visible objects in the frame
func (f *FrameData) Count() int {
	return len(f.IDs)
}

// TrailCount returns the number of pooled trail particles
func (f *FrameData) TrailCount() int {
	return len(f.TrailSizes)
}

// VisibleObjects extracts the current frame. Dormant and off-frustum
// objects are skipped; comet glow carries its pulse at the current time.
func (s *System) VisibleObjects() *FrameData {
	f := &FrameData{}

	for _, o := range s.objects {
		if !o.Active || o.Dormant() {
			continue
		}
		if !s.Space.InViewFrustum(o.Position) {
			continue
		}

		f.IDs = append(f.IDs, o.ID)
		f.Kinds = append(f.Kinds, uint8(o.Kind))
		f.Positions = append(f.Positions, o.Position.X, o.Position.Y, o.Position.Z)
		f.Scales = append(f.Scales, o.Scale)
		f.Rotations = append(f.Rotations, o.Rotation.X, o.Rotation.Y, o.Rotation.Z, o.Rotation.W)
		f.Opacities = append(f.Opacities, o.Opacity)
		f.Colors = append(f.Colors, o.Color[0], o.Color[1], o.Color[2])

		if o.Comet != nil {
			pulse := vmath.Sin(o.Age*parameter.GlowPulseRate)*parameter.GlowPulseDepth +
				(1 - parameter.GlowPulseDepth)
			f.TailLengths = append(f.TailLengths, o.Comet.TailLength)
			f.GlowIntensities = append(f.GlowIntensities, o.Comet.GlowIntensity*pulse)

			for i := range o.Comet.Trail {
				p := &o.Comet.Trail[i]
				f.TrailPositions = append(f.TrailPositions,
					p.Position.X, p.Position.Y, p.Position.Z)
				f.TrailColors = append(f.TrailColors,
					p.Color[0], p.Color[1], p.Color[2], p.Fade())
				f.TrailSizes = append(f.TrailSizes, p.Size)
			}
		} else {
			f.TailLengths = append(f.TailLengths, 0)
			f.GlowIntensities = append(f.GlowIntensities, 0)
		}
	}

	return f
}
