package entity

// Role ID constants carried in the access token
const (
	RoleIDAdmin        = 1
	RoleIDDoctor       = 2
	RoleIDPatient      = 3
	RoleIDReceptionist = 4
)

// RoleNames constants
const (
	RoleAdmin        = "admin"
	RoleDoctor       = "doctor"
	RolePatient      = "patient"
	RoleReceptionist = "receptionist"
)

var roleNames = map[int]string{
	RoleIDAdmin:        RoleAdmin,
	RoleIDDoctor:       RoleDoctor,
	RoleIDPatient:      RolePatient,
	RoleIDReceptionist: RoleReceptionist,
}

// RoleName returns the name of a role id, or an empty string when unknown.
func RoleName(roleID int) string {
	return roleNames[roleID]
}
