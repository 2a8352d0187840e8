package statemachine

import (
	"testing"

	"restaurant-pro-api/models"
)

func TestHappyPathChain(t *testing.T) {
	chain := []models.OrderStatus{
		models.StatusPending,
		models.StatusPreparing,
		models.StatusReady,
		models.StatusDelivered,
	}
	for i := 0; i < len(chain)-1; i++ {
		if err := CanTransition(chain[i], chain[i+1]); err != nil {
			t.Errorf("%s → %s should be allowed: %v", chain[i], chain[i+1], err)
		}
	}
}

func TestCancellation(t *testing.T) {
	if err := CanTransition(models.StatusPending, models.StatusCancelled); err != nil {
		t.Errorf("cancel from PENDING should be allowed: %v", err)
	}
	if err := CanTransition(models.StatusPreparing, models.StatusCancelled); err != nil {
		t.Errorf("cancel from PREPARING should be allowed: %v", err)
	}
	if err := CanTransition(models.StatusReady, models.StatusCancelled); err == nil {
		t.Error("cancel from READY should be rejected")
	}
}

func TestIllegalJumps(t *testing.T) {
	cases := []struct{ from, to models.OrderStatus }{
		{models.StatusPending, models.StatusDelivered},
		{models.StatusPending, models.StatusReady},
		{models.StatusDelivered, models.StatusPending},
		{models.StatusCancelled, models.StatusPreparing},
	}
	for _, tc := range cases {
		if err := CanTransition(tc.from, tc.to); err == nil {
			t.Errorf("%s → %s should be rejected", tc.from, tc.to)
		}
	}
}

func TestTerminalStates(t *testing.T) {
	for _, s := range []models.OrderStatus{models.StatusDelivered, models.StatusCancelled} {
		if nexts := ValidTransitionsFrom(s); len(nexts) != 0 {
			t.Errorf("%s should be terminal, got transitions %v", s, nexts)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	if !IsValidStatus(models.StatusPreparing) {
		t.Error("PREPARING should be a valid status")
	}
	if IsValidStatus(models.OrderStatus("SHIPPED")) {
		t.Error("SHIPPED should not be a valid status")
	}
}
