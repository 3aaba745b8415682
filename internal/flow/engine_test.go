package flow

import (
	"os"
	"testing"

	coreconfig "github.com/benuhq/benubot/core/config"
	"github.com/benuhq/benubot/core/logger"
	"github.com/benuhq/benubot/internal/domain"
	"github.com/benuhq/benubot/internal/i18n"
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

func TestInvalidPhoneRepeatsStep(t *testing.T) {
	e := NewEngine()
	b := i18n.Messages(domain.LangEnglish)

	res, err := e.Start(1, KindPersonal, nil)
	require.NoError(t, err)
	assert.Equal(t, b.SignupPrompt, res.Prompt(b))

	res, err = e.Advance(1, "Abebe")
	require.NoError(t, err)
	assert.Equal(t, b.PhonePrompt, res.Prompt(b))

	res, err = e.Advance(1, "abc")
	require.NoError(t, err)
	assert.True(t, res.Invalid)
	assert.Equal(t, b.InvalidPhone, res.Prompt(b))

	// Still on the phone step; a valid number moves on to email.
	res, err = e.Advance(1, "0911234567")
	require.NoError(t, err)
	assert.False(t, res.Invalid)
	assert.Equal(t, b.EmailPrompt, res.Prompt(b))
}

func TestPersonalFlowCompletion(t *testing.T) {
	e := NewEngine()
	e.SetLanguage(7, domain.LangAmharic)

	_, err := e.Start(7, KindPersonal, nil)
	require.NoError(t, err)

	inputs := []string{"Abebe", "+251911234567", "abebe@example.com", "Benu Foods"}
	for _, in := range inputs {
		res, err := e.Advance(7, in)
		require.NoError(t, err)
		require.Nil(t, res.Done)
	}

	res, err := e.Advance(7, "Manufacturer")
	require.NoError(t, err)
	require.NotNil(t, res.Done)

	done := res.Done
	assert.Equal(t, KindPersonal, done.Kind)
	assert.Equal(t, int64(7), done.ChatID)
	assert.Equal(t, domain.LangAmharic, done.Lang)
	require.NotNil(t, done.Personal)
	assert.Equal(t, "Abebe", done.Personal.Name)
	assert.Equal(t, "+251911234567", done.Personal.Phone)
	assert.Equal(t, "abebe@example.com", done.Personal.Email)
	assert.Equal(t, "Benu Foods", done.Personal.Company)
	assert.Equal(t, "Manufacturer", done.Personal.Description)

	assert.False(t, e.InFlow(7))
}

func TestCompanyFlowCompletion(t *testing.T) {
	e := NewEngine()
	b := i18n.Messages(domain.LangEnglish)

	_, err := e.Start(3, KindCompany, nil)
	require.NoError(t, err)

	for _, in := range []string{"Abc Foods", "+251911111111", "a@b.com", "Makes snacks", "Jane"} {
		res, err := e.Advance(3, in)
		require.NoError(t, err)
		require.Nil(t, res.Done)
	}

	// Categories accumulate without advancing until Done.
	require.NoError(t, e.AddCategory(3, "Marketing"))
	require.NoError(t, e.AddCategory(3, "Packaging"))
	res, err := e.Advance(3, "done")
	require.NoError(t, err)
	assert.Equal(t, b.PublicPrompt, res.Prompt(b))

	res, err = e.Advance(3, "no")
	require.NoError(t, err)
	require.NotNil(t, res.Done)

	co := res.Done.Company
	require.NotNil(t, co)
	assert.Equal(t, "Abc Foods", co.Company)
	assert.Equal(t, "+251911111111", co.Phone)
	assert.Equal(t, "a@b.com", co.Email)
	assert.Equal(t, "Makes snacks", co.Description)
	assert.Equal(t, "Jane", co.Manager)
	assert.Equal(t, []string{"Marketing", "Packaging"}, co.Categories)
	assert.Equal(t, "No", co.Public)
}

func TestCategoriesStepIgnoresTypedText(t *testing.T) {
	e := NewEngine()
	b := i18n.Messages(domain.LangEnglish)

	_, err := e.Start(8, KindCompany, nil)
	require.NoError(t, err)
	for _, in := range []string{"Abc Foods", "+251911111111", "a@b.com", "Makes snacks", "Jane"} {
		_, err := e.Advance(8, in)
		require.NoError(t, err)
	}

	// Free text at the categories step repeats the prompt; only the
	// Done press moves on.
	res, err := e.Advance(8, "Marketing and more")
	require.NoError(t, err)
	assert.True(t, res.Invalid)
	assert.Equal(t, b.CategoriesPrompt, res.Prompt(b))
	assert.Equal(t, KeyboardCategories, res.Keyboard)

	require.NoError(t, e.AddCategory(8, "Marketing"))
	res, err = e.Advance(8, "Done")
	require.NoError(t, err)
	assert.Equal(t, b.PublicPrompt, res.Prompt(b))
}

func TestAddCategoryOutsideCategoriesStep(t *testing.T) {
	e := NewEngine()

	assert.ErrorIs(t, e.AddCategory(4, "Marketing"), ErrNoActiveFlow)

	_, err := e.Start(4, KindCompany, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, e.AddCategory(4, "Marketing"), ErrWrongStep)
}

func TestPrefillSkipsSteps(t *testing.T) {
	e := NewEngine()
	b := i18n.Messages(domain.LangEnglish)

	_, err := e.Start(9, KindPersonal, map[string]string{
		"phone": "0911234567",
		"email": "old@example.com",
	})
	require.NoError(t, err)

	// Name then straight to company: phone and email came from record.
	res, err := e.Advance(9, "Sara")
	require.NoError(t, err)
	assert.Equal(t, b.CompanyPrompt, res.Prompt(b))

	res, err = e.Advance(9, "Sara Injera")
	require.NoError(t, err)
	res, err = e.Advance(9, "Retailer")
	require.NoError(t, err)
	require.NotNil(t, res.Done)
	assert.Equal(t, "0911234567", res.Done.Personal.Phone)
	assert.Equal(t, "old@example.com", res.Done.Personal.Email)
}

func TestCancelKeepsLanguage(t *testing.T) {
	e := NewEngine()
	e.SetLanguage(5, domain.LangAmharic)

	_, err := e.Start(5, KindSignup, nil)
	require.NoError(t, err)
	require.True(t, e.InFlow(5))

	e.Cancel(5)
	assert.False(t, e.InFlow(5))
	assert.Equal(t, domain.LangAmharic, e.Language(5))

	e.Reset(5)
	assert.Equal(t, domain.LangEnglish, e.Language(5))
}

func TestAdvanceWithoutFlow(t *testing.T) {
	e := NewEngine()
	_, err := e.Advance(11, "hello")
	assert.ErrorIs(t, err, ErrNoActiveFlow)
}

func TestStartSurveyCarriesStage(t *testing.T) {
	e := NewEngine()

	_, err := e.StartSurvey(6, SurveyMid)
	require.NoError(t, err)

	res, err := e.Advance(6, "bad")
	require.NoError(t, err)
	assert.True(t, res.Invalid)

	res, err = e.Advance(6, "4")
	require.NoError(t, err)
	require.NotNil(t, res.Done)
	assert.Equal(t, SurveyMid, res.Done.SurveyStage)
	assert.Equal(t, 4, res.Done.SurveyRating)
}

func TestProfileFlowCarriesFieldAndValue(t *testing.T) {
	e := NewEngine()

	_, err := e.Start(8, KindProfile, nil)
	require.NoError(t, err)
	require.NoError(t, e.SelectProfileField(8, ProfilePhone))

	res, err := e.Advance(8, "0712345678")
	require.NoError(t, err)
	require.NotNil(t, res.Done)
	assert.Equal(t, ProfilePhone, res.Done.ProfileField)
	assert.Equal(t, "0712345678", res.Done.ProfileValue)
}
