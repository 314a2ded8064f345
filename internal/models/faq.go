package models

// FAQCategory groups FAQ entries under one catalog id. FAQs order is the
// display order.
type FAQCategory struct {
	ID    string     `json:"id" yaml:"id"`
	Title string     `json:"title" yaml:"title"`
	Icon  string     `json:"icon" yaml:"icon"`
	FAQs  []FAQEntry `json:"faqs" yaml:"faqs"`
}

// FAQEntry is one question/answer pair. ID is unique within its category only.
type FAQEntry struct {
	ID       string `json:"id" yaml:"id"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// FlatFAQ is an entry annotated with its owning category, used by admin listings.
type FlatFAQ struct {
	FAQEntry
	Category      string `json:"category" yaml:"category"`
	CategoryTitle string `json:"categoryTitle" yaml:"categoryTitle"`
}

// FAQInput carries the mutable fields of an entry. An empty Slug means none was given.
type FAQInput struct {
	Question string
	Answer   string
	Slug     string
}

/*
|--------------------------------------------------------------------------
| REQUEST
|--------------------------------------------------------------------------
*/
type CreateFAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Slug     string `json:"slug"`
}

type UpdateFAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Slug     string `json:"slug"`
}
