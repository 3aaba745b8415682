// Package catalog holds the training content and networking categories.
// A Catalog is immutable; approving a new category produces a fresh copy
// with a bumped version instead of mutating shared tables.
package catalog

// Training is one event, past or upcoming. Video and Docs are empty for
// upcoming events.
type Training struct {
	Name        string
	Date        string
	Video       string
	Docs        string
	Description string
}

// Question is one quiz entry.
type Question struct {
	Prompt  string
	Options []string
	Answer  string
	Explain string
}

// Module is a skill module with its quiz and prerequisite module ids.
type Module struct {
	ID      int
	Name    string
	Content string
	Prereq  []int
	Quiz    []Question
}

// Catalog is a versioned snapshot of all static content.
type Catalog struct {
	version    int
	upcoming   []Training
	past       []Training
	modules    []Module
	categories []string
}

// Version identifies this snapshot; it increases with every approved
// category.
func (c *Catalog) Version() int { return c.version }

// Upcoming returns the upcoming trainings.
func (c *Catalog) Upcoming() []Training { return c.upcoming }

// Past returns the past trainings with their resources.
func (c *Catalog) Past() []Training { return c.past }

// Modules returns all skill modules in order.
func (c *Catalog) Modules() []Module { return c.modules }

// Module finds a module by id.
func (c *Catalog) Module(id int) (Module, bool) {
	for _, m := range c.modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// Categories returns the networking categories for this version.
func (c *Catalog) Categories() []string { return c.categories }

// HasCategory reports whether a category exists in this version.
func (c *Catalog) HasCategory(name string) bool {
	for _, cat := range c.categories {
		if cat == name {
			return true
		}
	}
	return false
}

// WithCategory returns a new Catalog containing the extra category. The
// receiver is unchanged; adding an existing category returns the
// receiver itself.
func (c *Catalog) WithCategory(name string) *Catalog {
	if name == "" || c.HasCategory(name) {
		return c
	}
	next := &Catalog{
		version:  c.version + 1,
		upcoming: c.upcoming,
		past:     c.past,
		modules:  c.modules,
	}
	next.categories = make([]string, 0, len(c.categories)+1)
	next.categories = append(next.categories, c.categories...)
	next.categories = append(next.categories, name)
	return next
}

// Default builds the seeded catalog.
func Default() *Catalog {
	return &Catalog{
		version: 1,
		upcoming: []Training{
			{Name: "Biscuit Production Basics", Date: "2025-04-15"},
			{Name: "Marketing for Startups", Date: "2025-04-20"},
		},
		past: []Training{
			{
				Name:        "Intro to Fortification",
				Date:        "2025-03-10",
				Video:       "https://youtube.com/example",
				Docs:        "https://drive.google.com/example",
				Description: "Learn the basics of fortifying biscuits with nutrients.",
			},
			{
				Name:        "Biscuit Processing Techniques",
				Date:        "2025-03-20",
				Video:       "https://youtu.be/Q9TCM89oNfU?si=5Aia87X1csYSZ4g6",
				Docs:        "https://drive.google.com/file/d/1HTr62gOcWHEU76-OXDnzJRf11l7nXKPv/view",
				Description: "Techniques for efficient biscuit production.",
			},
			{
				Name:        "Market research",
				Date:        "2025-04-25",
				Docs:        "https://drive.google.com/file/d/1eCXVbDeyQdwSpd91zBmxDTNV5LYpEpZR/view?usp=sharing",
				Description: "Guide to conducting market research for startups.",
			},
		},
		modules: []Module{
			{
				ID:      1,
				Name:    "Biscuit Production Basics",
				Content: "Learn the essentials of biscuit production: ingredients, equipment, and quality control.",
				Quiz: []Question{
					{Prompt: "What’s a key ingredient in biscuits?", Options: []string{"Sugar", "Salt", "Water"}, Answer: "Sugar", Explain: "Sugar is key for flavor and texture in biscuits."},
					{Prompt: "What equipment is vital for mixing?", Options: []string{"Oven", "Mixer", "Scale"}, Answer: "Mixer", Explain: "A mixer ensures uniform dough consistency."},
					{Prompt: "What ensures product consistency?", Options: []string{"Taste", "Quality Control", "Packaging"}, Answer: "Quality Control", Explain: "Quality control checks standards at every step."},
				},
			},
			{
				ID:      2,
				Name:    "Marketing for Startups",
				Content: "Understand branding, target markets, and low-cost promotion strategies.",
				Prereq:  []int{1},
				Quiz: []Question{
					{Prompt: "What defines your brand?", Options: []string{"Logo", "Values", "Price"}, Answer: "Values", Explain: "Values shape your brand’s identity and customer trust."},
					{Prompt: "Who is your target market?", Options: []string{"Everyone", "Specific Group", "Competitors"}, Answer: "Specific Group", Explain: "A specific group helps tailor your marketing effectively."},
					{Prompt: "What’s a low-cost promotion?", Options: []string{"TV Ads", "Social Media", "Billboards"}, Answer: "Social Media", Explain: "Social media reaches wide audiences cheaply."},
				},
			},
			{
				ID:      3,
				Name:    "Financial Planning",
				Content: "Basics of budgeting, cash flow, and securing startup funds.",
				Prereq:  []int{1, 2},
				Quiz: []Question{
					{Prompt: "What tracks income vs. expenses?", Options: []string{"Budget", "Loan", "Sales"}, Answer: "Budget", Explain: "A budget plans your financial resources."},
					{Prompt: "What’s key to cash flow?", Options: []string{"Profit", "Timing", "Debt"}, Answer: "Timing", Explain: "Timing ensures money is available when needed."},
					{Prompt: "Where can startups get funds?", Options: []string{"Friends", "Investors", "Savings"}, Answer: "Investors", Explain: "Investors provide capital for growth."},
				},
			},
		},
		categories: []string{"Biscuit Production", "Agriculture", "Packaging", "Marketing"},
	}
}
