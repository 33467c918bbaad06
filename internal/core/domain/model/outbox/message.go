// Package outbox defines messages written in the same transaction as the
// state change they announce and relayed to the broker afterwards.
package outbox

import (
	"encoding/json"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// MaxRetries is the number of failed publish attempts after which a message
// is parked as failed and no longer picked up by the relay.
const MaxRetries = 10

// Status of an outbox message.
type Status string

const (
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
	StatusFailed    Status = "failed"
)

var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")

// Message is a pending integration event.
type Message struct {
	id          kernel.UUID
	eventType   string
	aggregateID kernel.UUID
	payload     json.RawMessage
	status      Status
	retries     int
	lastError   *string
	createdAt   time.Time

	isConstructed bool
}

// NewMessage marshals payload and returns a pending message.
func NewMessage(eventType string, aggregateID kernel.UUID, payload any, at time.Time) (*Message, error) {
	if eventType == "" {
		return nil, errs.NewValueIsRequiredError("eventType")
	}
	if err := aggregateID.Validate(); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}

	return &Message{
		id:            kernel.NewUUID(),
		eventType:     eventType,
		aggregateID:   aggregateID,
		payload:       raw,
		status:        StatusPending,
		createdAt:     at.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreMessage rehydrates a stored message.
func RestoreMessage(
	id kernel.UUID,
	eventType string,
	aggregateID kernel.UUID,
	payload json.RawMessage,
	status Status,
	retries int,
	lastError *string,
	createdAt time.Time,
) (*Message, error) {
	if err := errors.Join(id.Validate(), aggregateID.Validate()); err != nil {
		return nil, err
	}
	if eventType == "" {
		return nil, errs.NewValueIsRequiredError("eventType")
	}

	return &Message{
		id:            id,
		eventType:     eventType,
		aggregateID:   aggregateID,
		payload:       payload,
		status:        status,
		retries:       retries,
		lastError:     lastError,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

func (m *Message) ID() kernel.UUID          { return m.id }
func (m *Message) EventType() string        { return m.eventType }
func (m *Message) AggregateID() kernel.UUID { return m.aggregateID }
func (m *Message) Payload() json.RawMessage { return m.payload }
func (m *Message) Status() Status           { return m.status }
func (m *Message) Retries() int             { return m.retries }
func (m *Message) LastError() *string       { return m.lastError }
func (m *Message) CreatedAt() time.Time     { return m.createdAt }

// MarkFailed records a publish failure. The message is parked as failed once
// MaxRetries is reached.
func (m *Message) MarkFailed(cause error) {
	msg := cause.Error()
	m.retries++
	m.lastError = &msg
	if m.retries >= MaxRetries {
		m.status = StatusFailed
	}
}

// MarkProcessed flags the message as delivered to the broker.
func (m *Message) MarkProcessed() {
	m.status = StatusProcessed
	m.lastError = nil
}
