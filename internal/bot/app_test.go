package bot

import (
	"os"
	"testing"

	coreconfig "github.com/benuhq/benubot/core/config"
	"github.com/benuhq/benubot/core/logger"
	"github.com/benuhq/benubot/internal/config"
	"github.com/benuhq/benubot/internal/sheets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = logger.InitLogger(&coreconfig.Config{
		Telegram: coreconfig.TelegramConfig{Token: "test"},
		Logging:  coreconfig.LoggingConfig{Level: "error"},
	})
	os.Exit(m.Run())
}

func newTestApp() *App {
	cfg := &config.Config{}
	cfg.Manager.ChatID = 99
	return New(cfg, nil, sheets.NewMemoryStore())
}

func TestAdoptCategoryBumpsVersion(t *testing.T) {
	a := newTestApp()
	base := a.catalog().Version()

	cat := a.adoptCategory("Logistics")
	require.True(t, cat.HasCategory("Logistics"))
	assert.Equal(t, base+1, cat.Version())
	assert.Equal(t, cat, a.catalog())
}

func TestCategoryButtonsCarryNamespace(t *testing.T) {
	a := newTestApp()
	btns := a.categoryButtons(cbCat)
	require.NotEmpty(t, btns)
	for _, b := range btns {
		assert.Equal(t, cbCat, b.Unique)
		assert.Equal(t, b.Text, b.Payload)
	}
}

func TestFormatThanksAppliesHouseStyle(t *testing.T) {
	got := formatThanks("Thanks for signing up, %s!", "Abeba")
	assert.Equal(t, "🌟 *Thanks for signing up, Abeba!* 🌟", got)
}
