package search

import (
	"sort"
	"strings"
	"sync"
)

// Memory is a substring matcher over the loaded catalog. It serves as the
// fallback when Meilisearch is not configured or unreachable.
type Memory struct {
	mu      sync.RWMutex
	records []LetterRecord
}

// NewMemory creates an empty in-memory searcher.
func NewMemory() *Memory {
	return &Memory{}
}

// Load replaces the indexed records. Display order is preserved for
// empty queries.
func (m *Memory) Load(records []LetterRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append([]LetterRecord(nil), records...)
}

// Healthy always reports true; the fallback has nothing to fail.
func (m *Memory) Healthy() bool {
	return true
}

// Search matches the query against title, description, and tags,
// case-insensitively. Title matches rank ahead of description and tag
// matches.
func (m *Memory) Search(q Query) ([]Result, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(q.Text))

	type scored struct {
		result Result
		rank   int
		pos    int
	}
	var matches []scored
	for i, rec := range m.records {
		if q.FilterTag != "" && !hasTag(rec.Tags, q.FilterTag) {
			continue
		}
		rank, ok := matchRank(rec, needle)
		if !ok {
			continue
		}
		matches = append(matches, scored{
			result: Result{
				ID:          rec.ID,
				Title:       rec.Title,
				Description: rec.Description,
				Snippet:     rec.Description,
				Date:        rec.Date,
				Tags:        rec.Tags,
			},
			rank: rank,
			pos:  i,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank < matches[j].rank
		}
		return matches[i].pos < matches[j].pos
	})

	total := len(matches)
	limit := q.Limit
	if limit == 0 {
		limit = 20
	}
	if q.Offset >= total {
		return []Result{}, total, nil
	}
	matches = matches[q.Offset:]
	if len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]Result, len(matches))
	for i, sc := range matches {
		results[i] = sc.result
	}
	return results, total, nil
}

func matchRank(rec LetterRecord, needle string) (int, bool) {
	if needle == "" {
		return 0, true
	}
	if strings.Contains(strings.ToLower(rec.Title), needle) {
		return 0, true
	}
	if strings.Contains(strings.ToLower(rec.Description), needle) {
		return 1, true
	}
	for _, tag := range rec.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return 2, true
		}
	}
	return 0, false
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if strings.EqualFold(tag, want) {
			return true
		}
	}
	return false
}
