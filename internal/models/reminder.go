package models

// ReminderType enum
type ReminderType string

const (
	ReminderTypeMedication  ReminderType = "medication"
	ReminderTypeAppointment ReminderType = "appointment"
	ReminderTypeTest        ReminderType = "test"
	ReminderTypeGeneral     ReminderType = "general"
)

// ReminderStatus enum. Status transitions are not enforced.
type ReminderStatus string

const (
	ReminderStatusPending   ReminderStatus = "pending"
	ReminderStatusCompleted ReminderStatus = "completed"
	ReminderStatusCancelled ReminderStatus = "cancelled"
)

// Reminder is the canonical reminder shape returned by the list endpoint.
type Reminder struct {
	ReminderID    string         `json:"reminderId"`
	UserID        string         `json:"userId"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	ScheduledTime string         `json:"scheduledTime"`
	Type          ReminderType   `json:"type"`
	Status        ReminderStatus `json:"status"`
	Priority      Urgency        `json:"priority"`
	CreatedAt     string         `json:"createdAt"`
	UpdatedAt     string         `json:"updatedAt"`
}

// CreateReminderRequest is the schema-validated reminder payload. No route is
// wired to it today; the save endpoint writes a trimmed ad hoc shape instead
// (see handlers.SaveReminder). Both shapes are kept until the divergence is
// resolved with stakeholders.
type CreateReminderRequest struct {
	UserID        string         `json:"userId" binding:"required"`
	Title         string         `json:"title" binding:"required,min=1,max=200"`
	Description   string         `json:"description" binding:"omitempty,max=2000"`
	ScheduledTime string         `json:"scheduledTime" binding:"required,isodate"`
	Type          ReminderType   `json:"type" binding:"required,oneof=medication appointment test general"`
	Priority      Urgency        `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status        ReminderStatus `json:"status" binding:"omitempty,oneof=pending completed cancelled"`
}
