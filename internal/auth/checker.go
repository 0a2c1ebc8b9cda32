package auth

import "fmt"

// AdminChecker answers whether a user ID belongs to the configured admin set.
// The set is fixed at startup; admins are not stored in the database.
type AdminChecker struct {
	admins map[int64]struct{}
	order  []int64
}

// NewAdminChecker creates a new AdminChecker from the configured admin IDs.
// An empty set is allowed; it simply makes every admin command unavailable.
// Duplicate IDs are collapsed.
func NewAdminChecker(adminIDs []int64) (*AdminChecker, error) {
	if adminIDs == nil {
		return nil, fmt.Errorf("admin ID list cannot be nil")
	}
	ac := &AdminChecker{admins: make(map[int64]struct{}, len(adminIDs))}
	for _, id := range adminIDs {
		if _, seen := ac.admins[id]; seen {
			continue
		}
		ac.admins[id] = struct{}{}
		ac.order = append(ac.order, id)
	}
	return ac, nil
}

// IsAdmin reports whether the user is in the configured admin set.
func (ac *AdminChecker) IsAdmin(userID int64) bool {
	_, ok := ac.admins[userID]
	return ok
}

// Admins returns the configured admin IDs in configuration order.
func (ac *AdminChecker) Admins() []int64 {
	out := make([]int64, len(ac.order))
	copy(out, ac.order)
	return out
}
