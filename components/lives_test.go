package components

import "testing"

func TestLivesDecrementStopsAtZero(t *testing.T) {
	l := LivesData{Lives: 2}

	l.Decrement()
	if l.Lives != 1 || !l.OnLastLife {
		t.Fatalf("after first decrement: %+v, want 1 life on last life", l)
	}

	l.Decrement()
	if l.Lives != 0 || l.OnLastLife {
		t.Fatalf("after second decrement: %+v, want 0 lives", l)
	}

	l.Decrement()
	if l.Lives != 0 {
		t.Fatalf("lives went negative: %d", l.Lives)
	}
}

func TestLivesReset(t *testing.T) {
	l := LivesData{}
	l.Reset(3)
	if l.Lives != 3 || l.OnLastLife {
		t.Fatalf("after reset: %+v", l)
	}

	l.Reset(1)
	if !l.OnLastLife {
		t.Fatal("reset to one life should set OnLastLife")
	}
}

func TestLossCauseString(t *testing.T) {
	if CauseBoundaryExit.String() != "boundary_exit" {
		t.Fatalf("got %q", CauseBoundaryExit.String())
	}
	if CauseHazardContact.String() != "hazard_contact" {
		t.Fatalf("got %q", CauseHazardContact.String())
	}
	if LossCause(99).String() != "unknown" {
		t.Fatalf("got %q", LossCause(99).String())
	}
}
