package flow

import "github.com/benuhq/benubot/internal/i18n"

// Field names double as prefill keys.
const (
	fieldUsername    = "username"
	fieldName        = "name"
	fieldPhone       = "phone"
	fieldEmail       = "email"
	fieldCompany     = "company"
	fieldDescription = "description"
	fieldManager     = "manager"
	fieldCategories  = "categories"
	fieldPublic      = "public"
	fieldTraining    = "training"
	fieldProfile     = "profile_value"
	fieldRating      = "rating"
	fieldQuestion    = "question"
)

// Each flow is an ordered list of step descriptors; Advance walks the
// list generically instead of branching on step names.
var (
	signupSteps = []Step{
		{
			Field:  fieldUsername,
			Prompt: func(b *i18n.Bundle) string { return b.UsernamePrompt },
			Assign: func(c *conversation, v string) { c.signup.Username = v },
		},
		{
			Field:  fieldName,
			Prompt: func(b *i18n.Bundle) string { return b.SignupPrompt },
			Assign: func(c *conversation, v string) { c.signup.Name = v },
		},
		{
			Field:    fieldPhone,
			Prompt:   func(b *i18n.Bundle) string { return b.PhonePrompt },
			Invalid:  func(b *i18n.Bundle) string { return b.InvalidPhone },
			Validate: ValidPhone,
			Assign:   func(c *conversation, v string) { c.signup.Phone = v },
		},
		{
			Field:    fieldTraining,
			Prompt:   func(b *i18n.Bundle) string { return b.SelectTraining },
			Keyboard: KeyboardTrainings,
			Assign:   func(c *conversation, v string) { c.signup.Training = v },
		},
	}

	personalSteps = []Step{
		{
			Field:  fieldName,
			Prompt: func(b *i18n.Bundle) string { return b.SignupPrompt },
			Assign: func(c *conversation, v string) { c.personal.Name = v },
		},
		{
			Field:    fieldPhone,
			Prompt:   func(b *i18n.Bundle) string { return b.PhonePrompt },
			Invalid:  func(b *i18n.Bundle) string { return b.InvalidPhone },
			Validate: ValidPhone,
			Assign:   func(c *conversation, v string) { c.personal.Phone = v },
		},
		{
			Field:    fieldEmail,
			Prompt:   func(b *i18n.Bundle) string { return b.EmailPrompt },
			Invalid:  func(b *i18n.Bundle) string { return b.InvalidEmail },
			Validate: ValidEmail,
			Assign:   func(c *conversation, v string) { c.personal.Email = v },
		},
		{
			Field:  fieldCompany,
			Prompt: func(b *i18n.Bundle) string { return b.CompanyPrompt },
			Assign: func(c *conversation, v string) { c.personal.Company = v },
		},
		{
			Field:    fieldDescription,
			Prompt:   func(b *i18n.Bundle) string { return b.DescriptionSelect },
			Keyboard: KeyboardDescriptions,
			Assign:   func(c *conversation, v string) { c.personal.Description = v },
		},
	}

	companySteps = []Step{
		{
			Field:  fieldCompany,
			Prompt: func(b *i18n.Bundle) string { return b.RegisterPrompt },
			Assign: func(c *conversation, v string) { c.company.Company = v },
		},
		{
			Field:    fieldPhone,
			Prompt:   func(b *i18n.Bundle) string { return b.PhonePrompt },
			Invalid:  func(b *i18n.Bundle) string { return b.InvalidPhone },
			Validate: ValidPhone,
			Assign:   func(c *conversation, v string) { c.company.Phone = v },
		},
		{
			Field:    fieldEmail,
			Prompt:   func(b *i18n.Bundle) string { return b.EmailPrompt },
			Invalid:  func(b *i18n.Bundle) string { return b.InvalidEmail },
			Validate: ValidEmail,
			Assign:   func(c *conversation, v string) { c.company.Email = v },
		},
		{
			Field:  fieldDescription,
			Prompt: func(b *i18n.Bundle) string { return b.DescriptionPrompt },
			Assign: func(c *conversation, v string) { c.company.Description = v },
		},
		{
			Field:  fieldManager,
			Prompt: func(b *i18n.Bundle) string { return b.ManagerPrompt },
			Assign: func(c *conversation, v string) { c.company.Manager = v },
		},
		{
			// The step input is the Done press; categories accumulate
			// through AddCategory while this step repeats.
			Field:    fieldCategories,
			Prompt:   func(b *i18n.Bundle) string { return b.CategoriesPrompt },
			Invalid:  func(b *i18n.Bundle) string { return b.CategoriesPrompt },
			Validate: ValidDone,
			Keyboard: KeyboardCategories,
		},
		{
			Field:    fieldPublic,
			Prompt:   func(b *i18n.Bundle) string { return b.PublicPrompt },
			Invalid:  func(b *i18n.Bundle) string { return b.PublicPrompt },
			Validate: ValidYesNo,
			Assign:   func(c *conversation, v string) { c.company.Public = normalizeYesNo(v) },
		},
	}

	profileSteps = []Step{
		{
			// The picker keyboard narrows the target field through
			// SelectProfileField; the typed text then lands here.
			Field:    fieldProfile,
			Prompt:   func(b *i18n.Bundle) string { return b.ProfilePrompt },
			Keyboard: KeyboardProfileFields,
			Assign:   func(c *conversation, v string) { c.profileValue = v },
		},
	}

	surveySteps = []Step{
		{
			Field:    fieldRating,
			Prompt:   func(b *i18n.Bundle) string { return b.SurveySatisfaction },
			Invalid:  func(b *i18n.Bundle) string { return b.SurveyInvalid },
			Validate: ValidRating,
			Assign:   func(c *conversation, v string) { c.surveyRating = int(v[0] - '0') },
		},
	}

	askSteps = []Step{
		{
			Field:  fieldQuestion,
			Prompt: func(b *i18n.Bundle) string { return b.AskPrompt },
			Assign: func(c *conversation, v string) { c.question = v },
		},
	}

	suggestSteps = []Step{
		{
			Field:  fieldQuestion,
			Prompt: func(b *i18n.Bundle) string { return b.SuggestCatPrompt },
			Assign: func(c *conversation, v string) { c.question = v },
		},
	}
)

func stepsFor(kind Kind) []Step {
	switch kind {
	case KindSignup:
		return signupSteps
	case KindPersonal:
		return personalSteps
	case KindCompany:
		return companySteps
	case KindProfile:
		return profileSteps
	case KindSurvey:
		return surveySteps
	case KindAsk:
		return askSteps
	case KindSuggest:
		return suggestSteps
	}
	return nil
}

func normalizeYesNo(v string) string {
	switch v {
	case "አዎ":
		return "Yes"
	case "አይ":
		return "No"
	}
	if len(v) > 0 && (v[0] == 'y' || v[0] == 'Y') {
		return "Yes"
	}
	return "No"
}
