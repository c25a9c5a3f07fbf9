package domain

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Identity is the authenticated caller, supplied by the auth boundary.
type Identity struct {
	ID     int64
	Email  string
	Roles  []string
	Active bool
}

// Privileged reports whether the caller holds an elevated role.
func (i Identity) Privileged() bool {
	for _, r := range i.Roles {
		if r == RoleAdmin || r == RoleStaff {
			return true
		}
	}
	return false
}

// CanActFor reports whether the caller may create or mutate reservations
// owned by the given user.
func (i Identity) CanActFor(userID int64) bool {
	return i.Privileged() || i.ID == userID
}
