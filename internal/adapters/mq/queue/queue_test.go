package queue

import (
	"context"
	"testing"

	"github.com/quether/talentgap/internal/domain/model"
)

func testPair(empID, roleID string) Pair {
	return Pair{
		Employee: model.Employee{ID: empID},
		Role:     model.Role{ID: roleID},
	}
}

func TestInMemoryQueue_EnqueueDequeue(t *testing.T) {
	q := NewInMemoryQueue(WithCapacity(10), WithBufferSize(10))
	ctx := context.Background()

	if !q.Enqueue(ctx, testPair("emp-1", "role-a")) {
		t.Fatal("expected enqueue to succeed")
	}
	if !q.Enqueue(ctx, testPair("emp-2", "role-a")) {
		t.Fatal("expected enqueue to succeed")
	}
	if l := q.Len(ctx); l != 2 {
		t.Errorf("expected length 2, got %d", l)
	}

	pairs := q.Dequeue(ctx)
	first := <-pairs
	if first.Employee.ID != "emp-1" || first.Role.ID != "role-a" {
		t.Errorf("unexpected first pair: %s/%s", first.Employee.ID, first.Role.ID)
	}
	second := <-pairs
	if second.Employee.ID != "emp-2" {
		t.Errorf("unexpected second pair: %s", second.Employee.ID)
	}
}

func TestInMemoryQueue_CapacityLimit(t *testing.T) {
	q := NewInMemoryQueue(WithCapacity(2), WithBufferSize(2))
	ctx := context.Background()

	if !q.Enqueue(ctx, testPair("emp-1", "role-a")) {
		t.Fatal("expected enqueue to succeed")
	}
	if !q.Enqueue(ctx, testPair("emp-2", "role-a")) {
		t.Fatal("expected enqueue to succeed")
	}
	if q.Enqueue(ctx, testPair("emp-3", "role-a")) {
		t.Error("expected enqueue past capacity to be rejected")
	}
	if l := q.Len(ctx); l != 2 {
		t.Errorf("expected length 2, got %d", l)
	}
}

func TestInMemoryQueue_CloseDrains(t *testing.T) {
	q := NewInMemoryQueue(WithCapacity(10), WithBufferSize(10))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if !q.Enqueue(ctx, testPair("emp-1", "role-a")) {
			t.Fatal("expected enqueue to succeed")
		}
	}
	if err := q.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !q.IsClosed() {
		t.Error("expected queue to report closed")
	}
	if q.Enqueue(ctx, testPair("emp-2", "role-a")) {
		t.Error("expected enqueue after close to be rejected")
	}

	// Queued pairs drain, then the channel closes.
	count := 0
	for range q.Dequeue(ctx) {
		count++
	}
	if count != 3 {
		t.Errorf("expected 3 drained pairs, got %d", count)
	}
}

func TestInMemoryQueue_CloseIdempotent(t *testing.T) {
	q := NewInMemoryQueue()
	if err := q.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := q.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestInMemoryQueue_DequeueStopsOnContextCancel(t *testing.T) {
	q := NewInMemoryQueue(WithCapacity(10), WithBufferSize(10))
	ctx, cancel := context.WithCancel(context.Background())

	if !q.Enqueue(ctx, testPair("emp-1", "role-a")) {
		t.Fatal("expected enqueue to succeed")
	}
	if !q.Enqueue(ctx, testPair("emp-2", "role-a")) {
		t.Fatal("expected enqueue to succeed")
	}

	pairs := q.Dequeue(ctx)
	<-pairs
	cancel()
	if err := q.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// The forwarding goroutine may hand over one in-flight pair before it
	// observes the cancellation, but the channel must close afterwards.
	delivered := 0
	for range pairs {
		delivered++
	}
	if delivered > 1 {
		t.Errorf("expected at most one pair after cancellation, got %d", delivered)
	}
}
