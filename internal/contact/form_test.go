package contact

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eaglesounds.in/internal/models"
)

func filled() models.ContactForm {
	return models.ContactForm{
		Name:      "Asha",
		Email:     "asha@example.com",
		Phone:     "+91 90000 00000",
		EventType: "wedding",
		EventDate: "2026-12-01",
		Message:   "Need a DJ and smoke machine",
	}
}

func TestSubmitSucceedsAndClearsFields(t *testing.T) {
	form := NewForm(Options{SubmitDelay: 20 * time.Millisecond, ResetDelay: time.Hour})
	defer form.Close()
	form.Fill(filled())

	start := time.Now()
	status, err := form.Submit(context.Background())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.True(t, status.Submitted)
	assert.True(t, status.Success)
	assert.Equal(t, SuccessMessage, status.Message)
	assert.NotEmpty(t, status.Reference)
	assert.True(t, form.Fields().IsEmpty())
	assert.Equal(t, status, form.Status())
}

func TestSubmitRequiresFields(t *testing.T) {
	form := NewForm(Options{})
	require.NoError(t, form.Set("name", "Ravi"))
	require.NoError(t, form.Set("email", "ravi@example.com"))

	_, err := form.Submit(context.Background())
	require.ErrorIs(t, err, ErrMissingFields)
	assert.Contains(t, err.Error(), "phone, message")
	assert.Equal(t, "Ravi", form.Fields().Name, "fields kept on failure")
}

func TestStatusRearmsAfterResetDelay(t *testing.T) {
	form := NewForm(Options{ResetDelay: 30 * time.Millisecond})
	defer form.Close()
	form.Fill(filled())

	_, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, form.Status().Success)

	require.Eventually(t, func() bool {
		return form.Status() == models.FormStatus{}
	}, time.Second, 5*time.Millisecond)
}

func TestSubmitCancelled(t *testing.T) {
	form := NewForm(Options{SubmitDelay: time.Hour})
	form.Fill(filled())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := form.Submit(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, form.Fields().IsEmpty())
}

func TestSetUnknownField(t *testing.T) {
	form := NewForm(Options{})
	assert.ErrorIs(t, form.Set("budget", "lots"), ErrUnknownField)
}

func TestSubmitRejectsUnknownEventType(t *testing.T) {
	f := NewForm(Options{})
	f.Fill(models.ContactForm{
		Name:      "Dana",
		Email:     "dana@example.com",
		Phone:     "555-0100",
		EventType: "funeral",
		Message:   "Hello",
	})

	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrEventType)
	assert.Equal(t, "funeral", f.Fields().EventType, "fields kept on rejection")
}
