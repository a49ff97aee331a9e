package entity

// Principal is the authenticated caller handed to the core by the identity boundary.
type Principal struct {
	UserID int64
	Role   Role
}

// IsAdmin reports whether the principal acts with administrator rights.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Is reports whether the principal is the given user, or an admin acting on their behalf.
func (p Principal) Is(userID int64) bool {
	return p.IsAdmin() || p.UserID == userID
}
