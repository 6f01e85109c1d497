package signature

import (
	"testing"

	"github.com/mranest/dss/model"
)

func newBareSignature(id model.Identifier) *Signature {
	return New(id, model.FormCAdES, &fakeBackend{})
}

func TestAddCounterSignature(t *testing.T) {
	parent := newBareSignature("parent")
	child := newBareSignature("child")

	if err := parent.AddCounterSignature(child); err != nil {
		t.Fatalf("AddCounterSignature: %v", err)
	}
	if child.MasterSignature() != parent {
		t.Fatalf("child.MasterSignature() did not return parent")
	}
	if len(parent.CounterSignatures()) != 1 || parent.CounterSignatures()[0] != child {
		t.Fatalf("parent.CounterSignatures() does not contain child")
	}
}

func TestAddCounterSignatureRejectsSelf(t *testing.T) {
	sig := newBareSignature("sig")
	if err := sig.AddCounterSignature(sig); err != ErrCounterSignatureCycle {
		t.Fatalf("AddCounterSignature(self) = %v, want ErrCounterSignatureCycle", err)
	}
}

func TestAddCounterSignatureRejectsAncestorCycle(t *testing.T) {
	grandparent := newBareSignature("grandparent")
	parent := newBareSignature("parent")
	child := newBareSignature("child")

	if err := grandparent.AddCounterSignature(parent); err != nil {
		t.Fatalf("AddCounterSignature(parent): %v", err)
	}
	if err := parent.AddCounterSignature(child); err != nil {
		t.Fatalf("AddCounterSignature(child): %v", err)
	}

	// child counter-signing its own grandparent would close a cycle.
	if err := child.AddCounterSignature(grandparent); err != ErrCounterSignatureCycle {
		t.Fatalf("AddCounterSignature(grandparent) = %v, want ErrCounterSignatureCycle", err)
	}
}

func TestAddCounterSignatureRejectsDescendantCycle(t *testing.T) {
	parent := newBareSignature("parent")
	child := newBareSignature("child")
	grandchild := newBareSignature("grandchild")

	if err := parent.AddCounterSignature(child); err != nil {
		t.Fatalf("AddCounterSignature(child): %v", err)
	}
	if err := child.AddCounterSignature(grandchild); err != nil {
		t.Fatalf("AddCounterSignature(grandchild): %v", err)
	}

	// grandchild counter-signing parent would close a cycle the other way.
	if err := grandchild.AddCounterSignature(parent); err != ErrCounterSignatureCycle {
		t.Fatalf("AddCounterSignature(parent) = %v, want ErrCounterSignatureCycle", err)
	}
}
