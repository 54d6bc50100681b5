package conversation

import (
	"context"
	"fmt"

	"github.com/bookchat/seeker/internal/model/appointment"
	"github.com/bookchat/seeker/internal/model/chat"
	"github.com/bookchat/seeker/internal/service/auth"
)

// AppointmentsProvider fetches the seeker's appointment book from the booking
// backend.
type AppointmentsProvider interface {
	ListUpcoming(ctx context.Context) ([]appointment.Appointment, error)
	ListPast(ctx context.Context) ([]appointment.Appointment, error)
}

// Controller orchestrates the gate, registry, log and composer into the
// select/send/switch workflow and is the single chat API the view layer sees.
type Controller struct {
	gate         *auth.Gate
	registry     *Registry
	log          *Log
	composer     *Composer
	appointments AppointmentsProvider
	navigate     func() // requests a switch to the conversation view
}

// NewController wires the chat core together. navigate may be nil when the
// view layer polls instead of being pushed to.
func NewController(gate *auth.Gate, registry *Registry, log *Log, composer *Composer, appointments AppointmentsProvider, navigate func()) *Controller {
	return &Controller{
		gate:         gate,
		registry:     registry,
		log:          log,
		composer:     composer,
		appointments: appointments,
		navigate:     navigate,
	}
}

// Conversations lists the registry in source order.
func (c *Controller) Conversations() []chat.Session {
	return c.registry.List()
}

// Select opens a conversation by id.
func (c *Controller) Select(id int) (chat.Session, error) {
	return c.registry.Select(id)
}

// Selected returns the open conversation, if any.
func (c *Controller) Selected() (chat.Session, bool) {
	return c.registry.Selected()
}

// History returns the open conversation's transcript, oldest first. With no
// conversation open it returns nothing.
func (c *Controller) History() []chat.Message {
	selected, ok := c.registry.Selected()
	if !ok {
		return nil
	}
	return c.log.History(selected.ID)
}

// Draft returns the composer's current text.
func (c *Controller) Draft() string {
	return c.composer.Draft()
}

// SetDraft replaces the composer's text.
func (c *Controller) SetDraft(text string) {
	c.composer.SetDraft(text)
}

// Send trims and sends the draft into the open conversation. Enter-key and
// button submission both land here; there is no second send path. A
// whitespace-only draft sends nothing and stays as it is.
func (c *Controller) Send() (chat.Message, error) {
	selected, ok := c.registry.Selected()
	if !ok {
		return chat.Message{}, ErrNoSelection
	}
	text, ok := c.composer.SendAndClear()
	if !ok {
		return chat.Message{}, nil
	}
	return c.log.Append(selected.ID, chat.SenderSeeker, text), nil
}

// Deliver appends a provider-sent message to a conversation. Delivery events
// originate outside this core; appending them is in scope.
func (c *Controller) Deliver(conversationID int, text string) chat.Message {
	return c.log.Append(conversationID, chat.SenderProvider, text)
}

// EnterConversation runs once per conversation view activation and applies a
// pending pre-fill to the visible draft, exactly once.
func (c *Controller) EnterConversation() (string, bool) {
	return c.composer.ConsumePrefill()
}

// RequestReschedule is the appointments view's entry into the chat: it seeds
// the composer with a reschedule request and asks for the conversation view.
// This is the only pre-fill producer in the system.
func (c *Controller) RequestReschedule(appt appointment.Appointment) {
	c.composer.RequestPrefill(fmt.Sprintf(
		"I want to reschedule my appointment with %s on %s at %s",
		appt.ProviderName, appt.Date, appt.Time,
	))
	if c.navigate != nil {
		c.navigate()
	}
}

// Upcoming fetches appointments still ahead.
func (c *Controller) Upcoming(ctx context.Context) ([]appointment.Appointment, error) {
	return c.appointments.ListUpcoming(ctx)
}

// Past fetches appointments already held.
func (c *Controller) Past(ctx context.Context) ([]appointment.Appointment, error) {
	return c.appointments.ListPast(ctx)
}

// Logout closes the gate, then clears the selection and the whole message
// log. The log wipe is the safety boundary: an unauthenticated session must
// see no trace of any conversation.
func (c *Controller) Logout() {
	c.gate.Logout()
	c.registry.ClearSelection()
	c.log.Clear()
}
