package service

// checkOwnership is the single authorization policy for mutations: the
// caller must be the resource's author.
func checkOwnership(callerID, authorID string) error {
	if callerID == "" || callerID != authorID {
		return ErrNotAuthor
	}
	return nil
}
