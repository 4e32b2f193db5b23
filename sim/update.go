package sim

import (
	"fmt"

	"cosmodrift/geom"
	"cosmodrift/parameter"
	"cosmodrift/space"
	"cosmodrift/vmath"
)

// Update advances the simulation by dt seconds. Non-finite or non-positive
// dt is rejected; oversized dt clamps to the configured maximum so a stalled
// caller cannot teleport objects through the plane.
func (s *System) Update(dt float32) error {
	if !vmath.IsFinite(dt) || dt <= 0 {
		return fmt.Errorf("invalid time step %v", dt)
	}
	if dt > s.tuning.MaxTimeStep {
		dt = s.tuning.MaxTimeStep
	}
	s.elapsed += dt

	for _, o := range s.objects {
		s.updateObject(o, dt)
	}

	s.sweepRemoved()
	s.heal()
	return nil
}

func (s *System) updateObject(o *Object, dt float32) {
	if !o.Active {
		return
	}

	// Dormant objects only burn down their spawn delay
	if o.Dormant() {
		o.Age += dt
		return
	}

	prev := o.Position
	o.Age += dt
	if o.Age > o.MaxLifetime {
		o.remove = true
		return
	}

	s.integrate(o, dt)
	s.grow(o, dt)
	s.spin(o, dt)
	s.shade(o)

	if !o.PassedPlane {
		s.checkPlaneCrossing(o, prev)
	}

	if s.shouldCull(o) {
		o.remove = true
		return
	}

	switch o.Kind {
	case KindComet:
		s.updateComet(o, dt)
	case KindCrystal:
		s.updateCrystal(o)
	case KindSphere:
		// pulse and turbulence are fixed per spawn; rendering animates them
	}
}

// integrate applies acceleration, the speed caps and the visibility-time
// slowdown, then moves the object
func (s *System) integrate(o *Object, dt float32) {
	speed := vmath.V3Mag(o.Velocity)

	// Approaching objects accelerate harder near the observer
	factor := float32(1.0)
	toObject := vmath.V3Sub(o.Position, s.Space.ObserverPosition)
	if toObject.Z > 0 && o.Velocity.Z < 0 {
		dist := vmath.V3Mag(toObject)
		if dist < parameter.ApproachBoostRadius {
			factor = 1 + (1-dist/parameter.ApproachBoostRadius)*(parameter.ApproachBoostMax-1)
		}
	}

	newSpeed := vmath.Min(speed+o.Acceleration*factor*dt, o.MaxSpeed)
	if speed > vmath.Epsilon {
		o.Velocity = vmath.V3Scale(o.Velocity, newSpeed/speed)
	}

	o.Velocity = vmath.V3ClampLateral(o.Velocity, s.tuning.MaxLateralSpeed)

	// Fast lateral movers would streak across the screen; slow them so the
	// crossing takes at least MinVisibilityTime
	lateral := vmath.V3Lateral(o.Velocity)
	if lateral > vmath.Epsilon && s.tuning.MinVisibilityTime > 0 {
		vpWidth, _ := s.Space.ViewportDimensions()
		screenWidth := vpWidth * 2
		if screenWidth/lateral < s.tuning.MinVisibilityTime {
			ratio := screenWidth / s.tuning.MinVisibilityTime / lateral
			o.Velocity.X *= ratio
			o.Velocity.Y *= ratio
		}
	}

	o.Position = vmath.V3Add(o.Position, vmath.V3Scale(o.Velocity, dt))

	if o.travelLength > vmath.Epsilon {
		o.DistanceRatio = vmath.Clamp01(
			vmath.V3Dist(o.Position, o.spawnPosition) / o.travelLength)
	}
}

// grow moves size toward the target, never past it
func (s *System) grow(o *Object, dt float32) {
	if o.Size < o.TargetSize {
		o.Size = vmath.Min(o.Size+o.GrowthRate*dt, o.TargetSize)
	}
}

// spin composes the per-kind tumble onto the orientation
func (s *System) spin(o *Object, dt float32) {
	rate := float32(parameter.SpinBaseRate)
	switch o.Kind {
	case KindCrystal:
		rate *= parameter.CrystalSpinup
	case KindSphere:
		rate *= parameter.SphereSpinup
	}
	step := rate * dt
	o.Rotation = vmath.QNormalize(vmath.QMul(o.Rotation,
		vmath.QFromEuler(step, step*parameter.SpinRatioY, step*parameter.SpinRatioZ)))
}

// shade derives scale and opacity from the perspective curves and lifecycle
func (s *System) shade(o *Object) {
	scaleF := s.Space.ScaleFactor(o.Position)
	o.Scale = vmath.Max(vmath.Pow(scaleF, parameter.ScaleExponent)*o.Size, parameter.MinScale)

	base := s.Space.TransparencyFactor(o.Position)
	switch {
	case o.Age < parameter.FadeInDuration:
		o.Opacity = vmath.Clamp01(o.Age / parameter.FadeInDuration)
	case o.PassedPlane:
		o.Opacity = base
	default:
		// Objects still approaching never go fully invisible
		o.Opacity = vmath.Max(base, 0.3)
	}

	if remaining := o.MaxLifetime - o.Age; remaining < parameter.FadeOutWindow {
		o.Opacity *= vmath.Clamp01(remaining / parameter.FadeOutWindow)
	}
}

// checkPlaneCrossing detects the first depth crossing, shortens the
// remaining lifetime and records the exact surface intersection when the
// segment passes through the plane's rectangle
func (s *System) checkPlaneCrossing(o *Object, prev vmath.Vec3) {
	planeZ := s.viewingPlane.Position.Z
	before := prev.Z > planeZ
	after := o.Position.Z > planeZ
	if before == after {
		return
	}

	o.PassedPlane = true
	o.MaxLifetime = o.Age + s.tuning.RemainingLifetimeFraction*o.MaxLifetime

	if o.Comet != nil {
		o.Comet.GlowIntensity *= parameter.PassGlowBoost
	}

	hit, ok := geom.SegmentPlane(prev, o.Position, s.viewingPlane, o.ID, s.elapsed)
	if !ok {
		return
	}
	s.history.Append(hit)
	s.effects.Push(s.effectFor(o, hit))
}

// effectFor maps a recorded intersection to its visual effect
func (s *System) effectFor(o *Object, hit geom.Intersection) Effect {
	var kind EffectKind
	var minR, maxR, minL, maxL float32

	switch {
	case o.DirectHit:
		kind = EffectExplosion
		minR, maxR = parameter.ExplosionMinRadius, parameter.ExplosionMaxRadius
		minL, maxL = parameter.ExplosionMinLifetime, parameter.ExplosionMaxLifetime
	case hit.Kind == geom.Entry:
		kind = EffectRipple
		minR, maxR = parameter.RippleMinRadius, parameter.RippleMaxRadius
		minL, maxL = parameter.RippleMinLifetime, parameter.RippleMaxLifetime
	case hit.Kind == geom.Exit:
		kind = EffectGlow
		minR, maxR = parameter.GlowMinRadius, parameter.GlowMaxRadius
		minL, maxL = parameter.GlowMinLifetime, parameter.GlowMaxLifetime
	default:
		kind = EffectDistortion
		minR, maxR = parameter.DistortionMinRadius, parameter.DistortionMaxRadius
		minL, maxL = parameter.DistortionMinLifetime, parameter.DistortionMaxLifetime
	}

	return Effect{
		Position:  hit.Position,
		Color:     o.Color,
		Radius:    s.randRange(minR, maxR),
		Lifetime:  s.randRange(minL, maxL),
		Intensity: s.randRange(s.tuning.EffectIntensity.Min, s.tuning.EffectIntensity.Max),
		Kind:      kind,
	}
}

// shouldCull flags objects that left the world or collapsed to invisible
func (s *System) shouldCull(o *Object) bool {
	toObject := vmath.V3Sub(o.Position, s.Space.ObserverPosition)
	if toObject.Z < space.BehindObserverDepth {
		return true
	}

	dims := s.Space.Dimensions()
	if vmath.Abs(o.Position.X) > dims.X || vmath.Abs(o.Position.Y) > dims.Y {
		return true
	}

	return o.PassedPlane && o.Opacity <= parameter.OpacityCollapseThreshold
}

// updateComet animates the tail length and the trail particle set
func (s *System) updateComet(o *Object, dt float32) {
	c := o.Comet
	if c == nil {
		return
	}

	// Tail extends as the comet grows in
	if o.TargetSize > 0 {
		c.TailLength = c.MaxTrailLength * vmath.Clamp01(o.Size/o.TargetSize)
	}

	s.updateTrail(o, dt)
}

// updateCrystal dims the emission toward end of life
func (s *System) updateCrystal(o *Object) {
	c := o.Crystal
	if c == nil {
		return
	}
	lifeLeft := vmath.Clamp01(1 - o.Age/o.MaxLifetime)
	c.EdgeEmission = 0.5 + 0.5*lifeLeft
	c.FaceOpacity = 0.3 + 0.2*lifeLeft
}

// sweepRemoved compacts the object list, dropping flagged objects
func (s *System) sweepRemoved() {
	alive := s.objects[:0]
	for _, o := range s.objects {
		if o.remove {
			o.Active = false
			continue
		}
		alive = append(alive, o)
	}
	s.objects = alive
}

// heal respawns up to the target population
func (s *System) heal() {
	for s.PopulationCount() < s.tuning.TargetObjectCount {
		s.insert(s.spawnObject())
	}
}
