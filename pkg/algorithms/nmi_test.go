package algorithms

import (
	"math"
	"testing"
)

func TestNMI_IdenticalPartitions(t *testing.T) {
	nodes := []string{"a", "b", "c", "d"}
	p := Partition{"a": 0, "b": 0, "c": 1, "d": 1}

	if nmi := NMI(p, p, nodes); math.Abs(nmi-1.0) > 1e-9 {
		t.Errorf("Expected NMI(x,x)=1, got %f", nmi)
	}
}

func TestNMI_LabelPermutationInvariance(t *testing.T) {
	nodes := []string{"a", "b", "c", "d"}
	p := Partition{"a": 0, "b": 0, "c": 1, "d": 1}
	relabeled := Partition{"a": 7, "b": 7, "c": 3, "d": 3}

	if nmi := NMI(p, relabeled, nodes); math.Abs(nmi-1.0) > 1e-9 {
		t.Errorf("Expected NMI 1 under label permutation, got %f", nmi)
	}
}

func TestNMI_Symmetric(t *testing.T) {
	nodes := []string{"a", "b", "c", "d", "e"}
	x := Partition{"a": 0, "b": 0, "c": 1, "d": 1, "e": 2}
	y := Partition{"a": 0, "b": 1, "c": 1, "d": 1, "e": 0}

	ab := NMI(x, y, nodes)
	ba := NMI(y, x, nodes)
	if math.Abs(ab-ba) > 1e-12 {
		t.Errorf("Expected symmetric NMI, got %f vs %f", ab, ba)
	}
}

func TestNMI_TrivialPartitions(t *testing.T) {
	nodes := []string{"a", "b", "c"}
	single := Partition{"a": 0, "b": 0, "c": 0}

	// Single community on both sides: entropy zero on both, exactly 1.0.
	if nmi := NMI(single, single, nodes); nmi != 1.0 {
		t.Errorf("Expected exactly 1.0 for trivial partitions, got %f", nmi)
	}
}

func TestNMI_IndependentPartitions(t *testing.T) {
	// Detected splits orthogonally to ground truth: low information overlap.
	nodes := []string{"a", "b", "c", "d"}
	gt := Partition{"a": 0, "b": 0, "c": 1, "d": 1}
	det := Partition{"a": 0, "b": 1, "c": 0, "d": 1}

	nmi := NMI(gt, det, nodes)
	if nmi > 1e-6 {
		t.Errorf("Expected NMI near 0 for independent partitions, got %f", nmi)
	}
	if nmi < 0 {
		t.Errorf("Expected NMI clamped to [0,1], got %f", nmi)
	}
}

func TestNMI_Range(t *testing.T) {
	nodes := []string{"a", "b", "c", "d", "e", "f"}
	gt := Partition{"a": 0, "b": 0, "c": 0, "d": 1, "e": 1, "f": 1}
	det := Partition{"a": 0, "b": 0, "c": 1, "d": 1, "e": 1, "f": 1}

	nmi := NMI(gt, det, nodes)
	if nmi < 0.0 || nmi > 1.0 {
		t.Fatalf("Expected NMI in [0,1], got %f", nmi)
	}
	if nmi == 0.0 || nmi == 1.0 {
		t.Errorf("Expected partial agreement strictly inside (0,1), got %f", nmi)
	}
}

func TestNMI_EmptyNodeSet(t *testing.T) {
	if nmi := NMI(Partition{}, Partition{}, nil); nmi != 1.0 {
		t.Errorf("Expected 1.0 for empty node set, got %f", nmi)
	}
}
