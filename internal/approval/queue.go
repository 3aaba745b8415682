// Package approval holds registrations awaiting the manager's decision.
// The queue is process memory only; entries pending across a restart
// are lost and stale buttons get "no longer pending".
package approval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/benuhq/benubot/core/logger"
	"github.com/benuhq/benubot/internal/domain"
	"github.com/benuhq/benubot/internal/sheets"
)

var (
	// ErrNotManager means the approver is not the configured manager.
	ErrNotManager = errors.New("approval: only the manager can decide registrations")
	// ErrNotPending means the id was already decided or never existed.
	ErrNotPending = errors.New("approval: registration no longer pending")
)

// Queue is the in-memory approval holding area.
type Queue struct {
	mu      sync.Mutex
	pending map[string]domain.PendingRegistration

	manager int64
	store   sheets.Store
	now     func() time.Time
}

// New creates a Queue writing approved records to store.
func New(store sheets.Store, managerChatID int64) *Queue {
	return &Queue{
		pending: make(map[string]domain.PendingRegistration),
		manager: managerChatID,
		store:   store,
		now:     time.Now,
	}
}

// Enqueue parks a registration and returns its id. Submitted and ID are
// assigned here if the caller left them empty.
func (q *Queue) Enqueue(reg domain.PendingRegistration) string {
	q.mu.Lock()
	defer q.mu.Unlock()

	if reg.Submitted.IsZero() {
		reg.Submitted = q.now()
	}
	if reg.ID == "" {
		reg.ID = domain.RegistrationID(reg.ChatID, reg.Submitted)
	}
	q.pending[reg.ID] = reg

	logger.SVCApproval.LogAttrs(context.Background(), slog.LevelInfo, "registration.enqueued",
		slog.String("reg_id", reg.ID),
		slog.String("reg_kind", string(reg.Kind)),
		slog.Int("pending_count", len(q.pending)),
	)
	return reg.ID
}

// Approve pops the registration and writes the finalized record with
// status Approved. A second call for the same id returns ErrNotPending
// and performs no further write.
func (q *Queue) Approve(ctx context.Context, id string, approverID int64) (domain.PendingRegistration, error) {
	reg, err := q.pop(id, approverID)
	if err != nil {
		return domain.PendingRegistration{}, err
	}

	if err := q.writeApproved(ctx, reg); err != nil {
		// The entry is already popped; surface the write failure rather
		// than re-queueing and risking a double write on retry.
		return reg, fmt.Errorf("write approved record: %w", err)
	}

	logger.SVCApproval.LogAttrs(ctx, slog.LevelInfo, "registration.approved",
		slog.String("reg_id", id),
		slog.String("reg_kind", string(reg.Kind)),
	)
	return reg, nil
}

// Reject pops the registration without writing anything.
func (q *Queue) Reject(ctx context.Context, id string, approverID int64) (domain.PendingRegistration, error) {
	reg, err := q.pop(id, approverID)
	if err != nil {
		return domain.PendingRegistration{}, err
	}
	logger.SVCApproval.LogAttrs(ctx, slog.LevelInfo, "registration.rejected",
		slog.String("reg_id", id),
		slog.String("reg_kind", string(reg.Kind)),
	)
	return reg, nil
}

// PendingCount reports queue depth for diagnostics.
func (q *Queue) PendingCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func (q *Queue) pop(id string, approverID int64) (domain.PendingRegistration, error) {
	if approverID != q.manager {
		return domain.PendingRegistration{}, ErrNotManager
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	reg, ok := q.pending[id]
	if !ok {
		return domain.PendingRegistration{}, ErrNotPending
	}
	delete(q.pending, id)
	return reg, nil
}

func (q *Queue) writeApproved(ctx context.Context, reg domain.PendingRegistration) error {
	chatID := strconv.FormatInt(reg.ChatID, 10)
	ts := reg.Submitted.UTC().Format(time.RFC3339Nano)

	switch reg.Kind {
	case domain.KindPersonal:
		p := reg.Personal
		return q.store.AppendRow(ctx, sheets.Users, []string{
			chatID, "", p.Name, p.Phone, p.Email, p.Company, p.Description,
			ts, string(domain.StatusApproved),
		})
	case domain.KindCompany:
		c := reg.Company
		return q.store.AppendRow(ctx, sheets.NetworkRegs, []string{
			chatID, c.Company, c.Phone, c.Email, c.Description, c.Manager,
			strings.Join(c.Categories, ","), ts, c.Public,
			string(domain.StatusApproved),
		})
	case domain.KindCategory:
		// Category suggestions update the catalog, not the store.
		return nil
	}
	return fmt.Errorf("approval: unknown registration kind %q", reg.Kind)
}
