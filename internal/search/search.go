package search

// Result is a single search hit returned to the caller.
type Result struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Snippet     string   `json:"snippet"`
	Date        string   `json:"date,omitempty"`
	Tags        []string `json:"tags"`
}

// Query describes a search request.
type Query struct {
	Text      string
	FilterTag string // empty = all tags
	Limit     int
	Offset    int
}

// Response is the envelope returned by the search endpoint.
type Response struct {
	Results []Result `json:"results"`
	Total   int      `json:"total"`
	Query   string   `json:"query"`
}

// LetterRecord is the data we index for a letter.
type LetterRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Tags        []string `json:"tags"`
}

// Searcher can execute a letter search.
type Searcher interface {
	Search(q Query) ([]Result, int, error)
	Healthy() bool
}

// Indexer can push letters into a search index.
type Indexer interface {
	IndexLetter(l LetterRecord) error
	DeleteLetter(id string) error
}
