// Package grove implements the scene-graph core of a real-time 3D engine: a
// hierarchy of transform Nodes that attach renderable and simulated resources
// (Camera, Light, Model, AudioSource, ParticleEmitter) and keep derived
// world-space matrices correct and cheap to query under frequent mutation.
//
// Invalidation is eager (a transform edit or re-parenting flips dirty bits
// down the whole subtree immediately), while recomputation is lazy (matrices
// are rebuilt only on the first query after invalidation). The package is
// single-threaded by design; all mutation and querying is expected to happen
// from one goroutine, typically the main simulation/render loop.
package grove
