package sim

import (
	"cosmodrift/parameter"
	"cosmodrift/vmath"
)

// TrailParticle is one glowing fleck shed by a comet. Particles inherit a
// damped share of the parent velocity and fade out over their lifetime.
type TrailParticle struct {
	Position vmath.Vec3
	Velocity vmath.Vec3
	Color    [3]float32
	Size     float32
	Age      float32
	Lifetime float32
}

// Fade returns the remaining life fraction, 1 at birth down to 0
func (p *TrailParticle) Fade() float32 {
	if p.Lifetime <= 0 {
		return 0
	}
	return vmath.Clamp01(1 - p.Age/p.Lifetime)
}

// updateTrail ages and moves existing particles, drops dead ones, and
// probabilistically sheds a new particle behind the comet. Spawn chance
// scales with object size so tiny fresh comets stay clean.
func (s *System) updateTrail(o *Object, dt float32) {
	c := o.Comet

	alive := c.Trail[:0]
	for i := range c.Trail {
		p := &c.Trail[i]
		p.Age += dt
		if p.Age >= p.Lifetime {
			continue
		}
		p.Position = vmath.V3Add(p.Position, vmath.V3Scale(p.Velocity, dt))
		alive = append(alive, *p)
	}
	c.Trail = alive

	if len(c.Trail) >= s.tuning.TrailCapacity {
		return
	}

	chance := o.Size / parameter.MaxObjectSize * s.tuning.TrailSpawnFactor
	if s.rng.Float32() >= chance {
		return
	}

	c.Trail = append(c.Trail, s.newTrailParticle(o))
}

// newTrailParticle places a particle behind the comet along its velocity,
// with jittered position, velocity and color
func (s *System) newTrailParticle(o *Object) TrailParticle {
	back := vmath.V3Normalize(o.Velocity)
	pos := vmath.V3Sub(o.Position, vmath.V3Scale(back, parameter.TrailOffsetBehind))
	pos = vmath.V3Add(pos, vmath.Vec3{
		X: s.randRange(-parameter.TrailPositionJitter, parameter.TrailPositionJitter),
		Y: s.randRange(-parameter.TrailPositionJitter, parameter.TrailPositionJitter),
		Z: s.randRange(-parameter.TrailPositionJitter, parameter.TrailPositionJitter),
	})

	vel := vmath.V3Scale(o.Velocity, parameter.TrailVelocityFactor)
	vel = vmath.V3Add(vel, vmath.Vec3{
		X: s.randRange(-parameter.TrailVelocityJitter, parameter.TrailVelocityJitter),
		Y: s.randRange(-parameter.TrailVelocityJitter, parameter.TrailVelocityJitter),
		Z: s.randRange(-parameter.TrailVelocityJitter, parameter.TrailVelocityJitter),
	})

	var color [3]float32
	for i, ch := range o.Color {
		color[i] = vmath.Clamp01(ch +
			s.randRange(-parameter.TrailColorJitter, parameter.TrailColorJitter))
	}

	return TrailParticle{
		Position: pos,
		Velocity: vel,
		Color:    color,
		Size:     s.randRange(s.tuning.TrailSize.Min, s.tuning.TrailSize.Max),
		Lifetime: s.randRange(s.tuning.TrailLifetime.Min, s.tuning.TrailLifetime.Max),
	}
}
