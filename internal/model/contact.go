package model

// ContactMessage is a public contact-form submission forwarded to the
// backend. Phone is optional.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// ContactAck is the backend's acknowledgement of a contact submission.
type ContactAck struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SubmissionID string `json:"submission_id,omitempty"`
}
