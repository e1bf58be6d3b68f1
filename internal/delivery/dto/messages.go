package dto

const (
	msgUKMobile        = "The phone number must be a valid UK mobile number (e.g., 07700 900123)."
	msgNHSNumber       = "The NHS number must be exactly 10 digits."
	msgDateOfBirthPast = "The date of birth must be in the past."
	msgAppointmentDate = "The appointment date must be in the future."
	msgVisitDate       = "The visit date cannot be in the future."
)
