package domain

// DefaultLanguage is assumed for feed rows without a language cell.
const DefaultLanguage = "es"

// DefaultCategoryEmoji is used for feed categories without an emoji cell.
const DefaultCategoryEmoji = "💫"

// FeedQuote is one quote row from the remote feed after mapping.
type FeedQuote struct {
	Text     string
	Author   string
	Category string
	Language string
	Active   bool
	Tags     string
}

// ToQuote converts the feed row into an unsaved, unshown, non-favorite quote.
func (f FeedQuote) ToQuote() Quote {
	return Quote{
		Text:     f.Text,
		Author:   f.Author,
		Category: f.Category,
	}
}

// Category is one row of the remote categories range.
type Category struct {
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	Active      bool   `json:"active"`
}

// SpreadsheetInfo is the best-effort metadata of the remote feed source.
type SpreadsheetInfo struct {
	Title  string   `json:"title"`
	URL    string   `json:"url"`
	Sheets []string `json:"sheets,omitempty"`
}

// CircuitStatus is the state of the breaker guarding the feed.
type CircuitStatus struct {
	State    string `json:"state"`
	Failures int    `json:"failures"`

	// RetryAfterSeconds is the rest of an open circuit's cool-down, rounded up.
	RetryAfterSeconds int `json:"retryAfterSeconds,omitempty"`
}
