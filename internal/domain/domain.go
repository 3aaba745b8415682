// Package domain defines the entities shared by the flow engine, the
// approval queue, and the sheet store.
package domain

import (
	"fmt"
	"time"
)

// Language selects the message bundle for a chat.
type Language string

const (
	LangEnglish Language = "en"
	LangAmharic Language = "am"
)

// ParseLanguage maps a raw code to a supported language, defaulting to
// English.
func ParseLanguage(code string) Language {
	if code == string(LangAmharic) {
		return LangAmharic
	}
	return LangEnglish
}

// ApprovalStatus is the lifecycle state of a registrant record.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "Pending"
	StatusApproved ApprovalStatus = "Approved"
	StatusDenied   ApprovalStatus = "Denied"
)

// RegistrationKind discriminates pending registrations.
type RegistrationKind string

const (
	KindPersonal RegistrationKind = "personal"
	KindCompany  RegistrationKind = "company"
	KindCategory RegistrationKind = "category-suggestion"
)

// SignupDraft accumulates a training signup.
type SignupDraft struct {
	Username string
	Name     string
	Phone    string
	Training string
}

// PersonalDraft accumulates a personal registration.
type PersonalDraft struct {
	Name        string
	Phone       string
	Email       string
	Company     string
	Description string
}

// CompanyDraft accumulates a company network registration.
type CompanyDraft struct {
	Company     string
	Categories  []string
	Phone       string
	Email       string
	Description string
	Manager     string
	Public      string
}

// PendingRegistration is one queue entry awaiting a manager decision.
// Exactly one of Personal, Company, or Category is set, per Kind.
type PendingRegistration struct {
	ID        string
	ChatID    int64
	Kind      RegistrationKind
	Language  Language
	Submitted time.Time

	Personal *PersonalDraft
	Company  *CompanyDraft
	Category string
}

// RegistrationID builds the composite queue key for a submission.
func RegistrationID(chatID int64, at time.Time) string {
	return fmt.Sprintf("%d_%s", chatID, at.UTC().Format(time.RFC3339Nano))
}

// DisplayName returns the human identifier used in manager and
// requester notifications.
func (p PendingRegistration) DisplayName() string {
	switch p.Kind {
	case KindPersonal:
		if p.Personal != nil {
			return p.Personal.Name
		}
	case KindCompany:
		if p.Company != nil {
			return p.Company.Company
		}
	case KindCategory:
		return p.Category
	}
	return "Unknown"
}
