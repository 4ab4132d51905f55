package models

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to OrderStatus }{
		{OrderStatusPending, OrderStatusPaid},
		{OrderStatusPending, OrderStatusProcessed},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusPaid, OrderStatusProcessed},
		{OrderStatusPaid, OrderStatusCompleted},
		{OrderStatusPaid, OrderStatusCancelled},
		{OrderStatusProcessed, OrderStatusCompleted},
		{OrderStatusProcessed, OrderStatusCancelled},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("Expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}
}

func TestCompletedAndCancelledAreTerminal(t *testing.T) {
	all := []OrderStatus{
		OrderStatusPending, OrderStatusPaid, OrderStatusProcessed,
		OrderStatusCompleted, OrderStatusCancelled,
	}
	for _, to := range all {
		if CanTransition(OrderStatusCompleted, to) {
			t.Errorf("Expected completed to be terminal, got completed -> %s", to)
		}
		if CanTransition(OrderStatusCancelled, to) {
			t.Errorf("Expected cancelled to be terminal, got cancelled -> %s", to)
		}
	}
}

func TestNoCyclingBackToPending(t *testing.T) {
	// The old admin UI rotated completed back to pending; the transition
	// table forbids that.
	if CanTransition(OrderStatusCompleted, OrderStatusPending) {
		t.Error("completed -> pending must not be allowed")
	}
	if CanTransition(OrderStatusProcessed, OrderStatusPending) {
		t.Error("processed -> pending must not be allowed")
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusPending, OrderStatusPaid, OrderStatusProcessed,
		OrderStatusCompleted, OrderStatusCancelled,
	} {
		if !ValidOrderStatus(s) {
			t.Errorf("Expected %s to be a valid status", s)
		}
	}
	if ValidOrderStatus("shipped") {
		t.Error("Expected unknown status to be invalid")
	}
}
