package http_test

import (
	"context"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/lifecycle"
	"warehouse/internal/core/domain/model/outbox"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockUserDirectory struct{ mock.Mock }

func (m *MockUserDirectory) Get(ctx context.Context, id kernel.UUID) (ports.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.User), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateStatus(ctx context.Context, p *product.Product, expected lifecycle.Status) error {
	return m.Called(ctx, p, expected).Error(0)
}

// ledger accepts every append.
type ledger struct {
	movements []*product.Movement
	entries   []*audit.Entry
	messages  []*outbox.Message
}

func (l *ledger) MovementRepository() ports.MovementRepository { return movementSink{l} }
func (l *ledger) AuditLogRepository() ports.AuditLogRepository { return auditSink{l} }
func (l *ledger) OutboxRepository() ports.OutboxRepository     { return outboxSink{l} }

type movementSink struct{ l *ledger }

func (s movementSink) Add(_ context.Context, m *product.Movement) error {
	s.l.movements = append(s.l.movements, m)
	return nil
}

type auditSink struct{ l *ledger }

func (s auditSink) Add(_ context.Context, e *audit.Entry) error {
	s.l.entries = append(s.l.entries, e)
	return nil
}

type outboxSink struct{ l *ledger }

func (s outboxSink) Add(_ context.Context, m *outbox.Message) error {
	s.l.messages = append(s.l.messages, m)
	return nil
}

func (outboxSink) ListPending(context.Context, int) ([]*outbox.Message, error) { return nil, nil }
func (outboxSink) Update(context.Context, *outbox.Message) error               { return nil }

type fakeUoW struct {
	*ledger
	products *MockProductRepository
	commitFn func() error
}

func (u *fakeUoW) Begin(context.Context) error    { return nil }
func (u *fakeUoW) Rollback(context.Context) error { return nil }
func (u *fakeUoW) Commit(context.Context) error {
	if u.commitFn != nil {
		return u.commitFn()
	}
	return nil
}
func (u *fakeUoW) ProductRepository() ports.ProductRepository { return u.products }

type fakeUoWFactory struct{ uow *fakeUoW }

func (f fakeUoWFactory) Create() commands.ProductUoW { return f.uow }
