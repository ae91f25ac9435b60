package grove

import (
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Particle is a single simulated particle. Particles live in world space;
// they are spawned at the emitter's node position but do not follow it
// afterwards.
type Particle struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Scale    float32
	Life     float32
	Lifetime float32

	scaleTween *gween.Tween
}

// ParticleEmitter is a reference-counted particle system attached to a node.
// The core only steps the simulation; rendering the particles is the
// consumer's concern.
type ParticleEmitter struct {
	Ref

	node *Node // Non-owning; the node the emitter is attached to.

	// Settings, applied to particles spawned after a change.
	Rate             float32 // Particles emitted per second while started.
	ParticleLifetime float32 // Seconds each particle lives.
	StartVelocity    mgl32.Vec3
	Spread           float32 // Random velocity jitter added per axis.
	Gravity          mgl32.Vec3
	StartScale       float32
	EndScale         float32 // Particles tween from StartScale to EndScale over their lifetime.

	maxParticles int
	particles    []*Particle
	emitCounter  float32
	started      bool
	rng          *rand.Rand
}

// NewParticleEmitter creates an emitter capped at maxParticles live
// particles, with one-second default lifetime and unit scale.
func NewParticleEmitter(maxParticles int) *ParticleEmitter {
	if maxParticles < 1 {
		maxParticles = 1
	}
	return &ParticleEmitter{
		Ref:              newRef(nil),
		Rate:             10,
		ParticleLifetime: 1,
		StartScale:       1,
		EndScale:         1,
		maxParticles:     maxParticles,
		rng:              rand.New(rand.NewSource(1)),
	}
}

// Start begins emission. Particles spawn during Update while started.
func (emitter *ParticleEmitter) Start() {
	emitter.started = true
}

// Stop halts emission. Live particles keep simulating until they expire.
func (emitter *ParticleEmitter) Stop() {
	emitter.started = false
	emitter.emitCounter = 0
}

// IsStarted returns whether the emitter is emitting.
func (emitter *ParticleEmitter) IsStarted() bool {
	return emitter.started
}

// ParticleCount returns the number of live particles.
func (emitter *ParticleEmitter) ParticleCount() int {
	return len(emitter.particles)
}

// Particles returns the live particles. The returned slice is owned by the
// emitter and valid until the next Update.
func (emitter *ParticleEmitter) Particles() []*Particle {
	return emitter.particles
}

// Update advances the simulation by dt seconds: spawns new particles while
// started, integrates velocity and gravity, tweens scale, and retires
// expired particles.
func (emitter *ParticleEmitter) Update(dt float32) {
	if emitter.started && emitter.Rate > 0 {
		emitter.emitCounter += emitter.Rate * dt
		for emitter.emitCounter >= 1 && len(emitter.particles) < emitter.maxParticles {
			emitter.emitCounter--
			emitter.spawn()
		}
		if len(emitter.particles) >= emitter.maxParticles {
			emitter.emitCounter = 0
		}
	}

	alive := emitter.particles[:0]
	for _, particle := range emitter.particles {
		particle.Life += dt
		if particle.Life >= particle.Lifetime {
			continue
		}
		particle.Velocity = particle.Velocity.Add(emitter.Gravity.Mul(dt))
		particle.Position = particle.Position.Add(particle.Velocity.Mul(dt))
		if particle.scaleTween != nil {
			scale, _ := particle.scaleTween.Update(dt)
			particle.Scale = scale
		}
		alive = append(alive, particle)
	}
	emitter.particles = alive
}

func (emitter *ParticleEmitter) spawn() {
	origin := mgl32.Vec3{}
	if emitter.node != nil {
		origin = emitter.node.WorldTranslation()
	}
	velocity := emitter.StartVelocity
	if emitter.Spread > 0 {
		velocity = velocity.Add(mgl32.Vec3{
			emitter.jitter(),
			emitter.jitter(),
			emitter.jitter(),
		})
	}
	particle := &Particle{
		Position: origin,
		Velocity: velocity,
		Scale:    emitter.StartScale,
		Lifetime: emitter.ParticleLifetime,
	}
	if math32.Abs(emitter.EndScale-emitter.StartScale) > 0 {
		particle.scaleTween = gween.New(emitter.StartScale, emitter.EndScale, emitter.ParticleLifetime, ease.Linear)
	}
	emitter.particles = append(emitter.particles, particle)
}

func (emitter *ParticleEmitter) jitter() float32 {
	return (emitter.rng.Float32()*2 - 1) * emitter.Spread
}

// Node returns the node this emitter is attached to, or nil.
func (emitter *ParticleEmitter) Node() *Node {
	return emitter.node
}

func (emitter *ParticleEmitter) setNode(node *Node) {
	emitter.node = node
}
