package pipeline

import (
	"context"
	"errors"
	"testing"
)

func testCoordinator() *Coordinator {
	p := New(testFixture(), &fakeAggregator{}, testLogger(), 7)

	return NewCoordinator(p, testLogger())
}

func TestCoordinatorDeliversCurrentCycle(t *testing.T) {
	c := testCoordinator()

	cycle := c.Begin(context.Background(), "10", "100")

	result, err := cycle.Run()
	if err != nil {
		t.Fatalf("cycle failed: %v", err)
	}

	if result.Milestone.ID != 100 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestCoordinatorDiscardsSupersededCycle(t *testing.T) {
	c := testCoordinator()

	first := c.Begin(context.Background(), "10", "100")
	second := c.Begin(context.Background(), "10", "100")

	// the older cycle completes after the newer one began; its result
	// must be discarded on arrival
	if _, err := first.Run(); !errors.Is(err, ErrSuperseded) {
		t.Fatalf("expected ErrSuperseded from the older cycle, got %v", err)
	}

	result, err := second.Run()
	if err != nil {
		t.Fatalf("latest cycle must deliver, got %v", err)
	}

	if result == nil {
		t.Fatal("expected a result from the latest cycle")
	}
}

func TestCoordinatorCancelsSupersededContext(t *testing.T) {
	c := testCoordinator()

	first := c.Begin(context.Background(), "10", "100")
	_ = c.Begin(context.Background(), "10", "100")

	select {
	case <-first.ctx.Done():
	default:
		t.Fatal("expected the superseded cycle's context to be cancelled")
	}
}

func TestCoordinatorReportsCurrentGeneration(t *testing.T) {
	c := testCoordinator()

	if c.Generation() != 0 {
		t.Fatalf("expected generation 0 before any cycle, got %d", c.Generation())
	}

	first := c.Begin(context.Background(), "10", "100")

	if c.Generation() != first.Generation {
		t.Fatalf("expected generation %d, got %d", first.Generation, c.Generation())
	}

	second := c.Begin(context.Background(), "10", "100")

	if c.Generation() != second.Generation {
		t.Fatalf("expected generation %d, got %d", second.Generation, c.Generation())
	}
}

func TestCoordinatorGenerationsIncrease(t *testing.T) {
	c := testCoordinator()

	first := c.Begin(context.Background(), "10", "100")
	second := c.Begin(context.Background(), "20", "200")

	if second.Generation <= first.Generation {
		t.Fatalf("expected increasing generations, got %d then %d", first.Generation, second.Generation)
	}
}
