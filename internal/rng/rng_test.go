package rng

import "testing"

func TestRNG_Deterministic(t *testing.T) {
	r1 := New(42)
	r2 := New(42)

	for i := 0; i < 50; i++ {
		a := r1.Intn(100)
		b := r2.Intn(100)
		if a != b {
			t.Fatalf("draw %d: got %d and %d from same seed", i, a, b)
		}
	}
}

func TestRNG_Intn_Range(t *testing.T) {
	r := New(7)

	for i := 0; i < 1000; i++ {
		v := r.Intn(3)
		if v < 0 || v >= 3 {
			t.Fatalf("Intn(3) out of range: got %d", v)
		}
	}
}

func TestRNG_Position_Tracks(t *testing.T) {
	r := New(1)
	if r.Position() != 0 {
		t.Fatalf("expected position 0, got %d", r.Position())
	}
	r.Intn(10)
	r.Intn(10)
	r.Intn(10)
	if r.Position() != 3 {
		t.Fatalf("expected position 3, got %d", r.Position())
	}
}

func TestRNG_Unseeded_RecordsSeed(t *testing.T) {
	r := NewUnseeded()
	replay := New(r.Seed())

	for i := 0; i < 20; i++ {
		if a, b := r.Intn(1000), replay.Intn(1000); a != b {
			t.Fatalf("draw %d: unseeded %d, replay %d", i, a, b)
		}
	}
}

func TestRNG_DifferentSeeds_DifferentResults(t *testing.T) {
	r1 := New(1)
	r2 := New(2)

	differs := false
	for i := 0; i < 20; i++ {
		if r1.Intn(100) != r2.Intn(100) {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("expected different seeds to produce different results")
	}
}
