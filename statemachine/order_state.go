package statemachine

import (
	"errors"

	"restaurant-pro-api/models"
)

// validTransitions is the authoritative lifecycle definition for an
// order once the placement engine has created it as PENDING.
var validTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.StatusPending:   {models.StatusPreparing, models.StatusCancelled},
	models.StatusPreparing: {models.StatusReady, models.StatusCancelled},
	models.StatusReady:     {models.StatusDelivered},
	// DELIVERED and CANCELLED are terminal
}

// IsValidStatus reports whether s is one of the known order statuses.
func IsValidStatus(s models.OrderStatus) bool {
	switch s {
	case models.StatusPending, models.StatusPreparing, models.StatusReady,
		models.StatusDelivered, models.StatusCancelled:
		return true
	}
	return false
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	return validTransitions[status]
}

// CanTransition checks whether an order may move from one state to another
func CanTransition(from, to models.OrderStatus) error {
	for _, next := range validTransitions[from] {
		if next == to {
			return nil
		}
	}
	return errors.New(
		"invalid transition: " + string(from) + " → " + string(to) +
			". Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}
