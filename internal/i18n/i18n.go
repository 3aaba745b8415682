// Package i18n holds the bilingual message bundles. Messages are fields
// on a struct rather than entries in a string-keyed map, so a missing
// translation is a compile error, not a runtime KeyError.
package i18n

import "github.com/benuhq/benubot/internal/domain"

// Text selects one message from a bundle. Flow step descriptors carry
// Text accessors so prompts stay compiler-checked.
type Text func(*Bundle) string

// Bundle is the complete message set for one language.
type Bundle struct {
	Welcome            string
	ChooseLanguage     string
	Options            string
	Ask                string
	Resources          string
	TrainingEvents     string
	Networking         string
	News               string
	Contact            string
	SubscribeNews      string
	LearnStartupSkills string
	UpdateProfile      string

	AskPrompt string
	AskError  string

	ResourcesTitle    string
	NoResources       string
	TrainingsPast     string
	TrainingsUpcoming string

	UsernamePrompt    string
	SignupPrompt      string
	SelectTraining    string
	SignupThanks      string
	NetworkingTitle   string
	RegisterPrompt    string
	NewsTitle         string
	ContactInfo       string
	Subscribed        string
	RegisterThanks    string
	PhonePrompt       string
	EmailPrompt       string
	CompanyPrompt     string
	DescriptionPrompt string
	DescriptionSelect string
	ManagerPrompt     string
	CategoriesPrompt  string
	PublicPrompt      string
	CatAdded          string
	SuggestCatPrompt  string
	CatSubmitted      string
	CatApproved       string

	InvalidPhone string
	InvalidEmail string

	ModulesTitle string
	ModuleStudy  string
	QuizStart    string
	QuizQuestion string
	QuizCorrect  string
	QuizWrong    string
	QuizDone     string
	PrereqError  string

	ProfilePrompt  string
	ProfileName    string
	ProfilePhone   string
	ProfileEmail   string
	ProfileCompany string
	ProfileUpdated string
	ProfileMissing string

	SurveySatisfaction string
	SurveyThanks       string
	SurveyInvalid      string

	NetworkListTitle string
	NotRegisteredYet string
	RegSubmitted     string
	RegApproved      string
	RegRejected      string
	StaleButton      string
	BackToMenu       string
	CancelButton     string
	DoneButton       string
	NoCompaniesYet   string
}

var english = Bundle{
	Welcome:            "Welcome to Benu’s Startup Support Bot!",
	ChooseLanguage:     "Please select your language to begin registration:",
	Options:            "Choose an option:",
	Ask:                "Ask a question",
	Resources:          "Access resources",
	TrainingEvents:     "Training Events",
	Networking:         "Join the network",
	News:               "Latest updates",
	Contact:            "Reach us",
	SubscribeNews:      "News updates",
	LearnStartupSkills: "Learn Startup Skills",
	UpdateProfile:      "Update Profile",

	AskPrompt: "Please type your question, and I’ll get an answer for you!",
	AskError:  "Sorry, I’m having trouble answering right now. Try again later!",

	ResourcesTitle:    "Available Training Resources:",
	NoResources:       "No resources available yet.",
	TrainingsPast:     "Past Training Events:",
	TrainingsUpcoming: "Upcoming Training Events:",

	UsernamePrompt:    "Please provide your username for training signup:",
	SignupPrompt:      "Please provide your full name:",
	SelectTraining:    "Select a training:",
	SignupThanks:      "Thanks for signing up, %s!",
	NetworkingTitle:   "Network by Category (Biscuit & Agriculture Sector):",
	RegisterPrompt:    "Please provide your company name:",
	NewsTitle:         "Latest Announcements:",
	ContactInfo:       "Contact Us:\nEmail: benu@example.com\nPhone: +251921756683\nAddress: Addis Ababa, Bole Sub city, Woreda 03, H.N. 4/10/A5/FL8",
	Subscribed:        "Subscribed to news updates!",
	RegisterThanks:    "Congratulations, %s! You’ve submitted your network registration, pending approval!",
	PhonePrompt:       "Please provide your phone number:",
	EmailPrompt:       "Please provide your email:",
	CompanyPrompt:     "Please provide your company name:",
	DescriptionPrompt: "Please provide a description of what your company does:",
	DescriptionSelect: "Select what your company does:",
	ManagerPrompt:     "Please provide the manager’s name:",
	CategoriesPrompt:  "Select categories (click Done when finished):",
	PublicPrompt:      "Share email publicly? (Yes/No):",
	CatAdded:          "Added %s. Select more or click Done:",
	SuggestCatPrompt:  "Type the category you’d like to suggest:",
	CatSubmitted:      "Category suggestion submitted for approval!",
	CatApproved:       "Your category suggestion was approved and added to the network!",

	InvalidPhone: "That doesn’t look like a valid phone number. Use +2519XXXXXXXX, +2517XXXXXXXX, 09XXXXXXXX or 07XXXXXXXX:",
	InvalidEmail: "That doesn’t look like a valid email. Please try again:",

	ModulesTitle: "Startup Skills Modules:",
	ModuleStudy:  "Study: %s\n%s",
	QuizStart:    "Test your knowledge for %s:",
	QuizQuestion: "Q%d: %s",
	QuizCorrect:  "Correct!\nExplanation: %s",
	QuizWrong:    "Wrong. The answer was %s.\nExplanation: %s",
	QuizDone:     "Quiz complete! Score: %d/%d. Next module unlocked.",
	PrereqError:  "Please complete the previous module(s) first.",

	ProfilePrompt:  "Select what to update:",
	ProfileName:    "New name:",
	ProfilePhone:   "New phone:",
	ProfileEmail:   "New email:",
	ProfileCompany: "New company:",
	ProfileUpdated: "Profile updated!",
	ProfileMissing: "No profile found. Sign up for a training first.",

	SurveySatisfaction: "How satisfied are you with the training? (1-5):",
	SurveyThanks:       "Thank you for your feedback!",
	SurveyInvalid:      "Please enter a number between 1 and 5.",

	NetworkListTitle: "Registered Companies by Category:",
	NotRegisteredYet: "You haven’t registered yet.",
	RegSubmitted:     "Registration submitted for approval!",
	RegApproved:      "Congratulations! You’re registered with BenuBot!",
	RegRejected:      "Your registration for %s was not approved.\nPlease contact support or try again.",
	StaleButton:      "That button timed out, please try again.",
	BackToMenu:       "🔙 Back to Main Menu",
	CancelButton:     "🔙 Cancel",
	DoneButton:       "Done",
	NoCompaniesYet:   "No companies registered yet.",
}

var amharic = Bundle{
	Welcome:            "እንኳን ወደ ቤኑ ስታርትአፕ ድጋፍ ቦት በደህና መጡ!",
	ChooseLanguage:     "ለመመዝገብ ቋንቋዎን ይምረጡ:",
	Options:            "አማራጭ ይምረጡ:",
	Ask:                "ጥያቄ ይጠይቁ",
	Resources:          "መሣሪያዎችን ይድረሱ",
	TrainingEvents:     "ሥልጠና ዝግጅቶች",
	Networking:         "ኔትወርክ ይቀላቀሉ",
	News:               "የቅርብ ጊዜ ዜናዎች",
	Contact:            "ያግኙን",
	SubscribeNews:      "የዜና ዝመናዎች",
	LearnStartupSkills: "የስታርትአፕ ክህሎቶችን ይማሩ",
	UpdateProfile:      "መገለጫ ያሻሽሉ",

	AskPrompt: "እባክዎ ጥያቄዎን ይፃፉ፣ መልስ እፈልግልዎታለሁ!",
	AskError:  "ይቅርታ፣ አሁን መልስ ለመስጠት ችግር አለብኝ። ቆይተው ይሞክሩ!",

	ResourcesTitle:    "የሚገኙ ሥልጠና መሣሪያዎች:",
	NoResources:       "እስካሁን መሣሪያዎች የሉም።",
	TrainingsPast:     "ያለፉ ሥልጠና ዝግጅቶች:",
	TrainingsUpcoming: "በቅርቡ የሚጀመሩ ስልጠናዎች:",

	UsernamePrompt:    "እባክዎ ለሥልጠና መመዝገቢያ የተጠቃሚ ስምዎን ያስገቡ:",
	SignupPrompt:      "እባክዎ ሙሉ ስምዎን ያስፈልጋል:",
	SelectTraining:    "ሥልጠና ይምረጡ:",
	SignupThanks:      "ለመመዝገብዎ እናመሰግናለን፣ %s!",
	NetworkingTitle:   "በምድብ መልክ ኔትወርክ (ቢስኩት እና ግብርና ዘርፍ):",
	RegisterPrompt:    "እባክዎ የኩባንያዎን ስም ያስፈልጋል:",
	NewsTitle:         "የቅርብ ጊዜ ማስታወቂያዎች:",
	ContactInfo:       "ያግኙን:\nኢሜል: benu@example.com\nስልክ: +251921756683\nአድራሻ: አዲስ አበባ፣ ቦሌ ክፍለ ከተማ፣ ወረዳ 03፣ ቤት ቁ. 4/10/A5/FL8",
	Subscribed:        "ለዜና ዝመናዎች ተመዝግበዋል!",
	RegisterThanks:    "እንኳን ደስ አለዎት፣ %s! የኔትወርክ መመዝገቢያዎን አስገብተዋል፣ ማፈቀድ በተጠባባቂ ነው!",
	PhonePrompt:       "እባክዎ ስልክ ቁጥርዎን ያስፈልጋል:",
	EmailPrompt:       "እባክዎ ኢሜልዎን ያስፈልጋል:",
	CompanyPrompt:     "እባክዎ የኩባንያዎን ስም ያስፈልጋል:",
	DescriptionPrompt: "እባክዎ የኩባንያዎ መግለጫ ያስፈልጋል:",
	DescriptionSelect: "ኩባንያዎ ምን እንደሚሰራ ይምረጡ:",
	ManagerPrompt:     "እባክዎ የሥራ አስኪያጁን ስም ያስፈልጋል:",
	CategoriesPrompt:  "ምድቦችን ይምረጡ (ጨርሰዋል የሚለውን ይጫኑ):",
	PublicPrompt:      "ኢሜልዎን በይፋ ይጋሩ? (አዎ/አይ):",
	CatAdded:          "%s ታክሏል። ተጨማሪ ይምረጡ ወይም ጨርሰዋል ይጫኑ:",
	SuggestCatPrompt:  "መጨመር የሚፈልጉትን ምድብ ይፃፉ:",
	CatSubmitted:      "የምድብ ጥቆማ ለማፅደቅ ገብቷል!",
	CatApproved:       "የምድብ ጥቆማዎ ፀድቆ ወደ ኔትወርኩ ታክሏል!",

	InvalidPhone: "ትክክለኛ ስልክ ቁጥር አይመስልም። +2519XXXXXXXX፣ +2517XXXXXXXX፣ 09XXXXXXXX ወይም 07XXXXXXXX ይጠቀሙ:",
	InvalidEmail: "ትክክለኛ ኢሜል አይመስልም። እባክዎ እንደገና ይሞክሩ:",

	ModulesTitle: "የስታርትአፕ ክህሎት ሞጁሎች:",
	ModuleStudy:  "መማር: %s\n%s",
	QuizStart:    "%s ዕውቀትዎን ይፈትኑ:",
	QuizQuestion: "ጥ%d: %s",
	QuizCorrect:  "ትክክል!\nማብራሪያ: %s",
	QuizWrong:    "ተሳስቷል። መልሱ %s ነበር።\nማብራሪያ: %s",
	QuizDone:     "ፈተና ተጠናቋል! ነጥብ: %d/%d። ቀጣዩ ሞጁል ተከፍቷል።",
	PrereqError:  "እባክዎ ቀደም ሲል ያሉትን ሞጁሎች መጀመሪያ ይጨርሱ።",

	ProfilePrompt:  "ምን ማሻሻል ይፈልጋሉ?:",
	ProfileName:    "አዲስ ስም:",
	ProfilePhone:   "አዲስ ስልክ:",
	ProfileEmail:   "አዲስ ኢሜል:",
	ProfileCompany: "አዲስ ኩባንያ:",
	ProfileUpdated: "መገለጫ ተሻሽሏል!",
	ProfileMissing: "መገለጫ አልተገኘም። መጀመሪያ ለሥልጠና ይመዝገቡ።",

	SurveySatisfaction: "ሥልጠናው ምን ያህል እንደሚያረካዎት? (1-5):",
	SurveyThanks:       "ለአስተያየትዎ እናመሰግናለን!",
	SurveyInvalid:      "እባክዎ ከ1 እስከ 5 ያለ ቁጥር ያስገቡ።",

	NetworkListTitle: "በምድብ የተመዘገቡ ኩባንያዎች:",
	NotRegisteredYet: "እስካሁን አልተመዘገቡም።",
	RegSubmitted:     "ምዝገባ ለማፅደቅ ገብቷል!",
	RegApproved:      "እንኳን ደስ አለዎት! በቤኑቦት ተመዝግበዋል!",
	RegRejected:      "የ%s ምዝገባዎ አልፀደቀም።\nእባክዎ ድጋፍን ያግኙ ወይም እንደገና ይሞክሩ።",
	StaleButton:      "ያ አዝራር ጊዜው አልፏል፣ እባክዎ እንደገና ይሞክሩ።",
	BackToMenu:       "🔙 ወደ ዋና ምናሌ",
	CancelButton:     "🔙 ሰርዝ",
	DoneButton:       "ጨርሰዋል",
	NoCompaniesYet:   "እስካሁን የተመዘገቡ ኩባንያዎች የሉም።",
}

// Messages returns the bundle for a language.
func Messages(lang domain.Language) *Bundle {
	if lang == domain.LangAmharic {
		return &amharic
	}
	return &english
}
