package i18n

import (
	"testing"

	"github.com/benuhq/benubot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessagesSelectsLanguage(t *testing.T) {
	en := Messages(domain.LangEnglish)
	am := Messages(domain.LangAmharic)
	require.NotNil(t, en)
	require.NotNil(t, am)
	assert.NotEqual(t, en.Welcome, am.Welcome)

	// Unknown languages fall back to English.
	assert.Same(t, en, Messages(domain.Language("fr")))
}

func TestGreetingMessagesPresent(t *testing.T) {
	for _, lang := range []domain.Language{domain.LangEnglish, domain.LangAmharic} {
		b := Messages(lang)
		assert.NotEmpty(t, b.Welcome, "Welcome for %s", lang)
		assert.NotEmpty(t, b.ChooseLanguage, "ChooseLanguage for %s", lang)
		assert.NotContains(t, b.Welcome, "\n", "Welcome is a single bold line")
	}
}

func TestCategoryDecisionMessagesDiffer(t *testing.T) {
	for _, lang := range []domain.Language{domain.LangEnglish, domain.LangAmharic} {
		b := Messages(lang)
		assert.NotEmpty(t, b.CatSubmitted)
		assert.NotEmpty(t, b.CatApproved)
		assert.NotEqual(t, b.CatSubmitted, b.CatApproved, "approval notice for %s", lang)
	}
}
