// Package contact implements the contact page form. Submissions are simulated:
// nothing is delivered anywhere, the form always reports success after a delay.
package contact

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"eaglesounds.in/internal/models"
)

const (
	SuccessMessage = "Thank you for your message! We will get back to you soon."

	DefaultSubmitDelay = time.Second
	DefaultResetDelay  = 5 * time.Second
)

var (
	ErrMissingFields = errors.New("contact: missing required fields")
	ErrUnknownField  = errors.New("contact: unknown field")
	ErrBusy          = errors.New("contact: submission already in progress")
	ErrEventType     = errors.New("contact: unknown event type")
)

// EventTypes are the choices offered by the event type select
var EventTypes = []string{"wedding", "birthday", "corporate", "college", "other"}

// Options configures the simulated delays
type Options struct {
	SubmitDelay time.Duration
	ResetDelay  time.Duration
}

// Form holds the field values and the submission status of one visitor's form
type Form struct {
	mu         sync.Mutex
	fields     models.ContactForm
	status     models.FormStatus
	submitting bool
	resetTimer *time.Timer

	submitDelay time.Duration
	resetDelay  time.Duration
}

// NewForm creates an empty form
func NewForm(opts Options) *Form {
	if opts.SubmitDelay < 0 {
		opts.SubmitDelay = 0
	}
	if opts.ResetDelay <= 0 {
		opts.ResetDelay = DefaultResetDelay
	}
	return &Form{submitDelay: opts.SubmitDelay, resetDelay: opts.ResetDelay}
}

// Set updates a single field by its input name
func (f *Form) Set(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case "name":
		f.fields.Name = value
	case "email":
		f.fields.Email = value
	case "phone":
		f.fields.Phone = value
	case "eventType":
		f.fields.EventType = value
	case "eventDate":
		f.fields.EventDate = value
	case "message":
		f.fields.Message = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return nil
}

// Fill replaces every field at once
func (f *Form) Fill(values models.ContactForm) {
	f.mu.Lock()
	f.fields = values
	f.mu.Unlock()
}

// Fields returns the current field values
func (f *Form) Fields() models.ContactForm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Status returns the current submission status
func (f *Form) Status() models.FormStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Missing returns the names of required fields that are blank
func Missing(values models.ContactForm) []string {
	var missing []string
	check := func(name, v string) {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	check("name", values.Name)
	check("email", values.Email)
	check("phone", values.Phone)
	check("message", values.Message)
	return missing
}

// Submit waits the simulated delay, then reports success and clears every
// field. The status re-arms after the reset delay.
func (f *Form) Submit(ctx context.Context) (models.FormStatus, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return models.FormStatus{}, ErrBusy
	}
	if missing := Missing(f.fields); len(missing) > 0 {
		f.mu.Unlock()
		return models.FormStatus{}, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	if et := f.fields.EventType; et != "" && !slices.Contains(EventTypes, et) {
		f.mu.Unlock()
		return models.FormStatus{}, fmt.Errorf("%w: %q", ErrEventType, et)
	}
	f.submitting = true
	f.mu.Unlock()

	timer := time.NewTimer(f.submitDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
		return models.FormStatus{}, ctx.Err()
	case <-timer.C:
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.submitting = false
	f.status = models.FormStatus{
		Submitted: true,
		Success:   true,
		Message:   SuccessMessage,
		Reference: uuid.NewString(),
	}
	f.fields = models.ContactForm{}

	if f.resetTimer != nil {
		f.resetTimer.Stop()
	}
	f.resetTimer = time.AfterFunc(f.resetDelay, f.rearm)

	return f.status, nil
}

// rearm clears the status so the form can be used again
func (f *Form) rearm() {
	f.mu.Lock()
	f.status = models.FormStatus{}
	f.resetTimer = nil
	f.mu.Unlock()
}

// Close stops the pending status reset
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.resetTimer != nil {
		f.resetTimer.Stop()
		f.resetTimer = nil
	}
}
