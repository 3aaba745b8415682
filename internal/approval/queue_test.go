package approval

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	coreconfig "github.com/benuhq/benubot/core/config"
	"github.com/benuhq/benubot/core/logger"
	"github.com/benuhq/benubot/internal/domain"
	"github.com/benuhq/benubot/internal/sheets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const managerID int64 = 99

func TestMain(m *testing.M) {
	_ = logger.InitLogger(&coreconfig.Config{
		Telegram: coreconfig.TelegramConfig{Token: "test"},
		Logging:  coreconfig.LoggingConfig{Level: "error"},
	})
	os.Exit(m.Run())
}

func personalReg(chatID int64) domain.PendingRegistration {
	return domain.PendingRegistration{
		ChatID:   chatID,
		Kind:     domain.KindPersonal,
		Language: domain.LangEnglish,
		Personal: &domain.PersonalDraft{
			Name:        "Abebe",
			Phone:       "+251911234567",
			Email:       "abebe@example.com",
			Company:     "Benu Foods",
			Description: "Manufacturer",
		},
	}
}

func TestApproveWritesApprovedRecord(t *testing.T) {
	store := sheets.NewMemoryStore()
	q := New(store, managerID)
	ctx := context.Background()

	id := q.Enqueue(personalReg(42))
	require.NotEmpty(t, id)
	assert.Equal(t, 1, q.PendingCount())

	reg, err := q.Approve(ctx, id, managerID)
	require.NoError(t, err)
	assert.Equal(t, "Abebe", reg.DisplayName())
	assert.Equal(t, 0, q.PendingCount())

	_, row, err := store.FindRow(ctx, sheets.Users, "42")
	require.NoError(t, err)
	require.Len(t, row, 9)
	assert.Equal(t, "", row[1])
	assert.Equal(t, "Abebe", row[2])
	assert.Equal(t, "+251911234567", row[3])
	assert.Equal(t, "abebe@example.com", row[4])
	assert.Equal(t, "Benu Foods", row[5])
	assert.Equal(t, "Manufacturer", row[6])
	assert.Equal(t, string(domain.StatusApproved), row[8])

	ts, err := time.Parse(time.RFC3339Nano, row[7])
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestApproveIsIdempotent(t *testing.T) {
	store := sheets.NewMemoryStore()
	q := New(store, managerID)
	ctx := context.Background()

	id := q.Enqueue(personalReg(7))
	_, err := q.Approve(ctx, id, managerID)
	require.NoError(t, err)

	// Replayed button press: no second record.
	_, err = q.Approve(ctx, id, managerID)
	assert.ErrorIs(t, err, ErrNotPending)

	rows, err := store.Rows(ctx, sheets.Users)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestApproveRequiresManager(t *testing.T) {
	store := sheets.NewMemoryStore()
	q := New(store, managerID)
	ctx := context.Background()

	id := q.Enqueue(personalReg(7))

	_, err := q.Approve(ctx, id, managerID+1)
	assert.ErrorIs(t, err, ErrNotManager)
	assert.Equal(t, 1, q.PendingCount(), "entry must stay pending after a denied attempt")

	_, err = q.Reject(ctx, id, managerID+1)
	assert.ErrorIs(t, err, ErrNotManager)
}

func TestRejectWritesNothing(t *testing.T) {
	store := sheets.NewMemoryStore()
	q := New(store, managerID)
	ctx := context.Background()

	id := q.Enqueue(personalReg(13))
	reg, err := q.Reject(ctx, id, managerID)
	require.NoError(t, err)
	assert.Equal(t, "Abebe", reg.DisplayName())

	rows, err := store.Rows(ctx, sheets.Users)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, 0, q.PendingCount())
}

func TestApproveCompanyRowLayout(t *testing.T) {
	store := sheets.NewMemoryStore()
	q := New(store, managerID)
	ctx := context.Background()

	id := q.Enqueue(domain.PendingRegistration{
		ChatID:   21,
		Kind:     domain.KindCompany,
		Language: domain.LangAmharic,
		Company: &domain.CompanyDraft{
			Company:     "Abc Foods",
			Categories:  []string{"Marketing", "Packaging"},
			Phone:       "+251911111111",
			Email:       "a@b.com",
			Description: "Makes snacks",
			Manager:     "Jane",
			Public:      "No",
		},
	})

	_, err := q.Approve(ctx, id, managerID)
	require.NoError(t, err)

	_, row, err := store.FindRow(ctx, sheets.NetworkRegs, "21")
	require.NoError(t, err)
	require.Len(t, row, 10)
	assert.Equal(t, "Abc Foods", row[1])
	assert.Equal(t, "+251911111111", row[2])
	assert.Equal(t, "a@b.com", row[3])
	assert.Equal(t, "Makes snacks", row[4])
	assert.Equal(t, "Jane", row[5])
	assert.Equal(t, "Marketing,Packaging", row[6])
	assert.Equal(t, "No", row[8])
	assert.Equal(t, string(domain.StatusApproved), row[9])
}

func TestApproveCategoryWritesNoRow(t *testing.T) {
	store := sheets.NewMemoryStore()
	q := New(store, managerID)
	ctx := context.Background()

	id := q.Enqueue(domain.PendingRegistration{
		ChatID:   5,
		Kind:     domain.KindCategory,
		Category: "Logistics",
	})
	reg, err := q.Approve(ctx, id, managerID)
	require.NoError(t, err)
	assert.Equal(t, "Logistics", reg.DisplayName())

	for _, col := range []string{sheets.Users, sheets.NetworkRegs} {
		rows, err := store.Rows(ctx, col)
		require.NoError(t, err)
		assert.Empty(t, rows, col)
	}
}

func TestRegistrationIDIsUniquePerSubmission(t *testing.T) {
	q := New(sheets.NewMemoryStore(), managerID)

	first := q.Enqueue(personalReg(3))
	time.Sleep(time.Millisecond)
	second := q.Enqueue(personalReg(3))

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "3_"))
	assert.Equal(t, 2, q.PendingCount())
}
