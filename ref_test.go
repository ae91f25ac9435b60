package grove

import (
	"testing"
)

func TestRefCounting(t *testing.T) {

	finalized := 0
	ref := newRef(func() { finalized++ })

	if ref.RefCount() != 1 {
		t.Fatal("a fresh ref must start with one share")
	}

	ref.AddRef()
	ref.Release()

	if finalized != 0 {
		t.Fatal("finalizer ran while shares remain")
	}

	ref.Release()

	if finalized != 1 || ref.RefCount() != 0 {
		t.Fatal("finalizer must run exactly once when the last share is released")
	}

	// Extra releases are ignored.
	ref.Release()

	if finalized != 1 {
		t.Fatal("finalizer ran again on an over-release")
	}

}

func TestRefWithoutFinalizer(t *testing.T) {

	ref := newRef(nil)
	ref.Release()

	if ref.RefCount() != 0 {
		t.Fatal("release without a finalizer must still drop the count")
	}

}
