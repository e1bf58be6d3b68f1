package entity

import "github.com/google/uuid"

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID uuid.UUID
	Email  string
	RoleID int
}

func (a *Actor) Role() string {
	return RoleName(a.RoleID)
}

// Action is an operation an actor can attempt on a resource.
type Action string

const (
	ActionViewAny Action = "viewAny"
	ActionView    Action = "view"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
)

// Resource names double as table names.
type Resource string

const (
	ResourcePatients       Resource = "patients"
	ResourceDoctors        Resource = "doctors"
	ResourceAppointments   Resource = "appointments"
	ResourceMedicalRecords Resource = "medical_records"
	ResourceAuditLogs      Resource = "audit_logs"
)

// Target is what an action is performed on: a whole resource class when ID is
// zero, a single record otherwise.
type Target struct {
	Resource Resource
	ID       uint
}

func ClassOf(resource Resource) Target {
	return Target{Resource: resource}
}

func InstanceOf(resource Resource, id uint) Target {
	return Target{Resource: resource, ID: id}
}
