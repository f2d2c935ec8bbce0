package models

// ContactForm holds the values entered on the contact page
type ContactForm struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	EventType string `json:"eventType"`
	EventDate string `json:"eventDate"`
	Message   string `json:"message"`
}

// IsEmpty reports whether every field is blank
func (f ContactForm) IsEmpty() bool {
	return f == ContactForm{}
}

// FormStatus is the feedback shown after a submission
type FormStatus struct {
	Submitted bool   `json:"submitted"`
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Reference string `json:"reference,omitempty"`
}

