package sim

import (
	"cosmodrift/parameter"
	"cosmodrift/vmath"
)

var vec3Z1 = vmath.Vec3{Z: 1}

// Per-kind palettes, drawn uniformly at spawn
var (
	cometPalette = [][3]float32{
		{0.0, 1.0, 1.0},  // cyan
		{1.0, 0.2, 0.8},  // pink
		{0.3, 0.5, 1.0},  // blue
		{1.0, 0.9, 0.2},  // yellow
		{0.7, 0.3, 1.0},  // purple
	}
	crystalPalette = [][3]float32{
		{0.9, 0.1, 0.3},  // ruby
		{0.3, 0.9, 0.8},  // aquamarine
		{1.0, 0.75, 0.2}, // amber
		{0.6, 0.4, 0.9},  // amethyst
		{0.2, 0.9, 0.4},  // emerald
	}
	spherePalette = [][3]float32{
		{0.6, 0.8, 1.0}, // pale blue
		{1.0, 0.6, 0.3}, // ember
		{0.8, 1.0, 0.9}, // mint white
	}
)

// randRange draws uniformly from [min, max)
func (s *System) randRange(min, max float32) float32 {
	return min + s.rng.Float32()*(max-min)
}

// pickKind draws a kind with the configured weights
func (s *System) pickKind() Kind {
	total := s.tuning.CometWeight + s.tuning.CrystalWeight + s.tuning.SphereWeight
	r := s.rng.Float32() * total
	if r < s.tuning.CometWeight {
		return KindComet
	}
	if r < s.tuning.CometWeight+s.tuning.CrystalWeight {
		return KindCrystal
	}
	return KindSphere
}

// farPlanePosition places a spawn on the far plane. Most spawns land in a
// shrunken central region so traffic concentrates where the viewport looks.
func (s *System) farPlanePosition() vmath.Vec3 {
	vpWidth, vpHeight := s.Space.ViewportDimensions()
	halfW := vpWidth / 2 * parameter.SpawnAreaFactor
	halfH := vpHeight / 2 * parameter.SpawnAreaFactor

	if s.rng.Float32() < parameter.CentralSpawnChance {
		halfW *= parameter.CentralRegionFactor
		halfH *= parameter.CentralRegionFactor
	}

	return vmath.Vec3{
		X: s.randRange(-halfW, halfW),
		Y: s.randRange(-halfH, halfH),
		Z: s.Space.MaxZ + s.randRange(-parameter.SpawnDepthJitter, parameter.SpawnDepthJitter),
	}
}

// exitTarget picks where the trajectory should end up. Rare draws aim at or
// near the observer; most pass behind it at a lateral offset.
func (s *System) exitTarget() (target vmath.Vec3, directHit bool) {
	obs := s.Space.ObserverPosition

	roll := s.rng.Float32()
	switch {
	case roll < parameter.DirectHitChance:
		jitter := vmath.Vec3{
			X: s.randRange(-1, 1),
			Y: s.randRange(-1, 1),
			Z: s.randRange(-1, 1),
		}
		return vmath.V3Add(obs, jitter), true

	case roll < parameter.DirectHitChance+parameter.NearObserverChance:
		offset := vmath.Vec3{
			X: s.randRange(-0.8, 0.8),
			Y: s.randRange(-0.8, 0.8),
			Z: s.randRange(-1, 1),
		}
		offset = vmath.V3Normalize(offset)
		if vmath.V3MagSq(offset) < vmath.Epsilon {
			offset = vmath.Vec3{X: 1}
		}
		dist := s.randRange(parameter.NearPassMinOffset, parameter.NearPassMaxOffset)
		return vmath.V3Add(obs, vmath.V3Scale(offset, dist)), false
	}

	lateral := vmath.Vec3{
		X: s.randRange(-parameter.MaxLateralDeviation, parameter.MaxLateralDeviation),
		Y: s.randRange(-parameter.MaxLateralDeviation, parameter.MaxLateralDeviation),
	}

	var depth float32
	if s.rng.Float32() < parameter.BehindObserverChance {
		depth = -s.randRange(parameter.BehindExitMinDepth, parameter.BehindExitMaxDepth)
	} else {
		depth = s.randRange(parameter.FrontExitMinDepth, parameter.FrontExitMaxDepth)
	}

	target = vmath.Vec3{
		X: obs.X + lateral.X,
		Y: obs.Y + lateral.Y,
		Z: obs.Z + depth,
	}
	return target, false
}

// trajectoryVelocity builds the initial velocity from spawn toward target.
// The unit direction's lateral share is capped so objects stay watchable,
// then speed scales with trajectory length and the lateral speed cap applies.
func (s *System) trajectoryVelocity(start, target vmath.Vec3) vmath.Vec3 {
	delta := vmath.V3Sub(target, start)
	dist := vmath.V3Mag(delta)
	dir := vmath.V3Normalize(delta)
	if vmath.V3MagSq(dir) < vmath.Epsilon {
		dir = vmath.Vec3{Z: -1}
		dist = 1
	}

	// Cap the lateral direction share, recomputing Z to stay unit length
	lateral := vmath.V3Lateral(dir)
	if lateral > parameter.MaxLateralDirection {
		ratio := parameter.MaxLateralDirection / lateral
		dir.X *= ratio
		dir.Y *= ratio
		zSq := 1 - dir.X*dir.X - dir.Y*dir.Y
		z := vmath.Sqrt(vmath.Max(zSq, 0))
		if dir.Z < 0 {
			z = -z
		}
		dir.Z = z
	}

	speed := s.randRange(s.tuning.BaseSpeed.Min, s.tuning.BaseSpeed.Max)
	boost := vmath.Min(1+dist/parameter.SpeedDistanceFactor, parameter.MaxSpeedDistanceBoost)
	speed *= boost

	return vmath.V3ClampLateral(vmath.V3Scale(dir, speed), s.tuning.MaxLateralSpeed)
}

// spawnObject builds a fully initialized dormant object on the far plane
func (s *System) spawnObject() *Object {
	kind := s.pickKind()
	start := s.farPlanePosition()
	target, directHit := s.exitTarget()
	velocity := s.trajectoryVelocity(start, target)
	baseSpeed := vmath.V3Mag(velocity)

	o := &Object{
		ID:   s.nextID,
		Kind: kind,

		Position: start,
		Velocity: velocity,

		Acceleration: s.randRange(s.tuning.Acceleration.Min, s.tuning.Acceleration.Max),
		MaxSpeed:     baseSpeed * parameter.MaxSpeedMultiple,

		Rotation: vmath.QFromEuler(
			s.randRange(0, 6.2831853),
			s.randRange(0, 6.2831853),
			s.randRange(0, 6.2831853),
		),

		Size:       parameter.InitialSize,
		TargetSize: s.randRange(s.tuning.TargetSize.Min, s.tuning.TargetSize.Max),
		GrowthRate: s.randRange(s.tuning.GrowthRate.Min, s.tuning.GrowthRate.Max),

		Scale:   parameter.MinScale,
		Opacity: 0,

		Age:         -s.randRange(s.tuning.SpawnDelay.Min, s.tuning.SpawnDelay.Max),
		MaxLifetime: s.tuning.MaxLifetime,

		Active:    true,
		DirectHit: directHit,

		spawnPosition: start,
		travelLength:  vmath.V3Dist(start, target),
	}
	s.nextID++

	switch kind {
	case KindComet:
		o.Color = cometPalette[s.rng.Intn(len(cometPalette))]
		o.Comet = &CometPayload{
			MaxTrailLength: s.randRange(parameter.MinTrailLength, parameter.MaxTrailLength),
			GlowIntensity:  s.randRange(parameter.MinGlowIntensity, parameter.MaxGlowIntensity),
			Trail:          make([]TrailParticle, 0, s.tuning.TrailCapacity),
		}
	case KindCrystal:
		o.Color = crystalPalette[s.rng.Intn(len(crystalPalette))]
		o.Crystal = &CrystalPayload{
			VertexCount:  6 + s.rng.Intn(7),
			EdgeEmission: 1,
			FaceOpacity:  0.5,
		}
	case KindSphere:
		o.Color = spherePalette[s.rng.Intn(len(spherePalette))]
		o.Sphere = &SpherePayload{
			PulseRate:  s.randRange(1, 3),
			Turbulence: s.randRange(0.2, 1),
		}
	}

	return o
}
