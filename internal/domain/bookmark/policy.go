package bookmark

// AssertOwnership is the only ownership check for mutations. A zero Bookmark
// (lookup found nothing) is rejected the same way as someone else's.
func AssertOwnership(b Bookmark, callerID int) error {
	if b.ID == 0 || callerID <= 0 || b.UserID != callerID {
		return ErrForbidden
	}
	return nil
}
