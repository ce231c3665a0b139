// Package contact holds the contact form state machine and the client that
// delivers submissions to the hosted form relay.
package contact

import (
	"context"
	"errors"
	"regexp"
)

// State is the lifecycle of a single submission attempt.
type State int

const (
	StateUnsent State = iota
	StateSending
	StateSent
)

func (s State) String() string {
	switch s {
	case StateUnsent:
		return "unsent"
	case StateSending:
		return "sending"
	case StateSent:
		return "sent"
	default:
		return "unknown"
	}
}

// Field names a user-editable form field.
type Field string

const (
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Status lines shown to the user.
const (
	MessageInvalid = "Please ensure all of the fields are filled in correctly."
	MessageThanks  = "Thanks for your message! I'll get back to you as soon as I can."
	MessageUnknown = "An unknown error occurred, please try again later."
)

var (
	ErrUnknownField = errors.New("contact: unknown field")
	ErrLocked       = errors.New("contact: form is not editable")
	ErrInvalid      = errors.New("contact: invalid submission")
)

var emailPattern = regexp.MustCompile(`^.+?@.+?\..+?$`)

// Submission is the payload delivered to the relay.
type Submission struct {
	Email   string
	Message string
}

// Sender delivers a submission and reports the relay's verdict.
type Sender interface {
	Send(ctx context.Context, sub Submission) (Reply, error)
}

// Form is the contact form state. The zero value is an empty, unsent form.
// It is not safe for concurrent use; callers mutate it from one UI loop.
type Form struct {
	email   string
	message string

	state  State
	status string
}

// State returns the submission state.
func (f *Form) State() State { return f.state }

// Status returns the feedback line, or "" when there is none.
func (f *Form) Status() string { return f.status }

// Editable reports whether fields accept changes.
func (f *Form) Editable() bool { return f.state == StateUnsent }

// Value returns the current value of key.
func (f *Form) Value(key Field) string {
	switch key {
	case FieldEmail:
		return f.email
	case FieldMessage:
		return f.message
	default:
		return ""
	}
}

// UpdateField stores value under key without validating it.
func (f *Form) UpdateField(key Field, value string) error {
	if !f.Editable() {
		return ErrLocked
	}
	switch key {
	case FieldEmail:
		f.email = value
	case FieldMessage:
		f.message = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Begin validates the fields and, when they pass, moves the form to sending
// and returns the payload to deliver. A failed validation leaves the form
// unsent with an explanatory status.
func (f *Form) Begin() (Submission, error) {
	if f.state != StateUnsent {
		return Submission{}, ErrLocked
	}
	if f.email == "" || f.message == "" || !emailPattern.MatchString(f.email) {
		f.status = MessageInvalid
		return Submission{}, ErrInvalid
	}
	f.state = StateSending
	f.status = ""
	return Submission{Email: f.email, Message: f.message}, nil
}

// Resolve applies the outcome of a delivery started by Begin. It does nothing
// unless a submission is in flight.
func (f *Form) Resolve(reply Reply, err error) {
	if f.state != StateSending {
		return
	}
	if err == nil {
		if reply.OK {
			f.state = StateSent
			f.status = MessageThanks
			return
		}
		f.state = StateUnsent
		f.status = MessageUnknown
		return
	}

	f.state = StateUnsent
	f.status = ""
	var rerr *ResponseError
	if errors.As(err, &rerr) && rerr.Message != "" {
		f.status = rerr.Message
	}
}

// Submit runs Begin, delivers the payload through s and resolves the result.
// It returns the validation or delivery error, if any.
func (f *Form) Submit(ctx context.Context, s Sender) error {
	sub, err := f.Begin()
	if err != nil {
		return err
	}
	reply, err := s.Send(ctx, sub)
	f.Resolve(reply, err)
	return err
}
