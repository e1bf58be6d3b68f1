package entity

// Relation names, as understood by the store's eager loading.
const (
	RelationPatient        = "Patient"
	RelationDoctor         = "Doctor"
	RelationAppointment    = "Appointment"
	RelationAppointments   = "Appointments"
	RelationMedicalRecord  = "MedicalRecord"
	RelationMedicalRecords = "MedicalRecords"
)
