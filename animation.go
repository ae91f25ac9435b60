package grove

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates a node's local transform toward target values over
// time. Create one via the convenience constructors (TweenTranslation,
// TweenScale, TweenRotation) and call Update(dt) each frame. Values are
// written through the normal Transform setters, so dirty-bit invalidation
// cascades exactly as it would for a manual edit.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [3]*gween.Tween
	count  int
	apply  func(values [3]float32)
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values to the
// target transform. Once every tween reports finished, Done is set to true
// and further calls are no-ops.
func (group *TweenGroup) Update(dt float32) {
	if group.Done {
		return
	}
	var values [3]float32
	allDone := true
	for i := 0; i < group.count; i++ {
		value, finished := group.tweens[i].Update(dt)
		values[i] = value
		if !finished {
			allDone = false
		}
	}
	group.apply(values)
	group.Done = allDone
}

// TweenTranslation creates a TweenGroup that animates the node's local
// translation to the given target over duration seconds.
func TweenTranslation(node *Node, to mgl32.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := node.Translation()
	group := &TweenGroup{count: 3}
	for i := 0; i < 3; i++ {
		group.tweens[i] = gween.New(from[i], to[i], duration, fn)
	}
	group.apply = func(values [3]float32) {
		node.SetTranslation(values[0], values[1], values[2])
	}
	return group
}

// TweenScale creates a TweenGroup that animates the node's local scale to the
// given target over duration seconds.
func TweenScale(node *Node, to mgl32.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := node.Scale()
	group := &TweenGroup{count: 3}
	for i := 0; i < 3; i++ {
		group.tweens[i] = gween.New(from[i], to[i], duration, fn)
	}
	group.apply = func(values [3]float32) {
		node.SetScale(values[0], values[1], values[2])
	}
	return group
}

// TweenRotation creates a TweenGroup that rotates the node around the given
// axis by angle radians over duration seconds, applied on top of the node's
// rotation at creation time.
func TweenRotation(node *Node, axis mgl32.Vec3, angle float32, duration float32, fn ease.TweenFunc) *TweenGroup {
	start := node.Rotation()
	group := &TweenGroup{count: 1}
	group.tweens[0] = gween.New(0, angle, duration, fn)
	group.apply = func(values [3]float32) {
		node.SetRotation(start.Mul(mgl32.QuatRotate(values[0], axis)).Normalize())
	}
	return group
}
