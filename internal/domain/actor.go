package domain

// Actor is the authenticated caller of a workflow operation. It is supplied
// by the identity port; this package never authenticates anyone.
type Actor struct {
	ID          int64
	DisplayName string
	Role        Role
}

// HasRole reports whether the actor holds role r. Admins hold every role.
func (a Actor) HasRole(r Role) bool {
	return a.Role == r || a.Role.IsAdmin()
}

// IsZero reports whether the actor is unset.
func (a Actor) IsZero() bool {
	return a.ID == 0
}
