package grove

// Ref implements shared ownership for scene resources through an explicit,
// single-threaded reference count. A resource starts with a count of one,
// held by whoever created it; attaching it to a Node (or making it a Scene's
// active camera) acquires another share. Releasing the last share runs the
// resource's finalizer deterministically, which matters for resources holding
// device handles (an AudioSource's stream, for example) whose teardown must
// not depend on garbage collection order.
type Ref struct {
	count     int
	finalizer func()
}

func newRef(finalizer func()) Ref {
	return Ref{count: 1, finalizer: finalizer}
}

// AddRef acquires an additional ownership share.
func (ref *Ref) AddRef() {
	ref.count++
}

// Release drops one ownership share. When the last share is released, the
// resource's finalizer (if any) runs exactly once.
func (ref *Ref) Release() {
	if ref.count <= 0 {
		return
	}
	ref.count--
	if ref.count == 0 && ref.finalizer != nil {
		ref.finalizer()
		ref.finalizer = nil
	}
}

// RefCount returns the current number of ownership shares.
func (ref *Ref) RefCount() int {
	return ref.count
}
