package models

// EmergencyContact is the person to notify in an emergency. All fields are
// required whenever the contact is supplied.
type EmergencyContact struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Relationship string `json:"relationship" binding:"required"`
}

// User represents an account in the system. Timestamps are ISO-8601 strings,
// matching the wire format the mobile client expects.
type User struct {
	UserID           string            `json:"userId"`
	Email            string            `json:"email"`
	FirstName        string            `json:"firstName"`
	LastName         string            `json:"lastName"`
	DateOfBirth      string            `json:"dateOfBirth,omitempty"`
	PhoneNumber      string            `json:"phoneNumber,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
	MedicalHistory   []string          `json:"medicalHistory"`
	Allergies        []string          `json:"allergies"`
	Medications      []string          `json:"medications"`
	CreatedAt        string            `json:"createdAt"`
	UpdatedAt        string            `json:"updatedAt"`
}
