package models

// MedicalRecordType represents the type of medical record
type MedicalRecordType string

const (
	RecordTypeAppointment  MedicalRecordType = "appointment"
	RecordTypeTestResult   MedicalRecordType = "test_result"
	RecordTypePrescription MedicalRecordType = "prescription"
	RecordTypeSymptom      MedicalRecordType = "symptom"
	RecordTypeVaccination  MedicalRecordType = "vaccination"
	RecordTypeSurgery      MedicalRecordType = "surgery"
)

// MedicalRecord represents a single entry in a user's health history.
type MedicalRecord struct {
	RecordID    string            `json:"recordId"`
	UserID      string            `json:"userId"`
	Type        MedicalRecordType `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Date        string            `json:"date"`
	Doctor      string            `json:"doctor,omitempty"`
	Hospital    string            `json:"hospital,omitempty"`
	Attachments []string          `json:"attachments"`
	Tags        []string          `json:"tags"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
}
