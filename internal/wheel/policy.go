package wheel

import (
	"fmt"
	"strings"
)

// RollbackPolicy decides how the rollback counter is seeded at spin start.
// Rollback ticks run while the counter is below totalSpinDeg/60.
type RollbackPolicy int

const (
	// RollbackLegacy seeds the counter one past the stop threshold when
	// rollback is drawn and at zero otherwise. The net effect is that a
	// "rollback" spin never rolls back and every other spin does.
	RollbackLegacy RollbackPolicy = iota
	// RollbackIntended seeds at zero when rollback is drawn and at the
	// threshold otherwise, so only drawn sessions roll back.
	RollbackIntended
)

func (p RollbackPolicy) String() string {
	switch p {
	case RollbackLegacy:
		return "legacy"
	case RollbackIntended:
		return "intended"
	}
	return fmt.Sprintf("RollbackPolicy(%d)", int(p))
}

// seed returns the starting counter for a session.
func (p RollbackPolicy) seed(enabled bool, stop int) int {
	if p == RollbackIntended {
		if enabled {
			return 0
		}
		return stop
	}
	if enabled {
		return stop + 1
	}
	return 0
}

// ParseRollbackPolicy accepts "legacy" or "intended".
func ParseRollbackPolicy(s string) (RollbackPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "legacy":
		return RollbackLegacy, nil
	case "intended":
		return RollbackIntended, nil
	}
	return 0, fmt.Errorf("unknown rollback policy %q", s)
}
