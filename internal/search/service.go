// Package search finds letters in the catalog by title, description, or
// tag. Meilisearch is used when configured; an in-memory matcher over the
// loaded catalog covers the rest.
package search

import "log"

// Service is the facade that tries Meilisearch first and falls back to
// the in-memory matcher.
type Service struct {
	meili  *Meili
	memory *Memory
}

// NewService creates a search service. meili may be nil if Meilisearch is
// not configured.
func NewService(meili *Meili, memory *Memory) *Service {
	return &Service{meili: meili, memory: memory}
}

// Search tries Meilisearch if healthy, otherwise uses the fallback.
func (s *Service) Search(q Query) Response {
	if s.meili != nil && s.meili.Healthy() {
		results, total, err := s.meili.Search(q)
		if err == nil {
			return Response{Results: nonNil(results), Total: total, Query: q.Text}
		}
		log.Printf("search: meilisearch error, falling back: %v", err)
	}

	results, total, err := s.memory.Search(q)
	if err != nil {
		log.Printf("search: fallback error: %v", err)
		return Response{Results: []Result{}, Total: 0, Query: q.Text}
	}
	return Response{Results: nonNil(results), Total: total, Query: q.Text}
}

// Reindex replaces both backends with the given records. Called at
// startup and whenever the catalog is reloaded.
func (s *Service) Reindex(records []LetterRecord) {
	s.memory.Load(records)
	if s.meili == nil || !s.meili.Healthy() {
		return
	}
	go func() {
		if err := s.meili.IndexLetters(records); err != nil {
			log.Printf("search: reindex letters: %v", err)
		}
	}()
}

// IndexLetter indexes a single letter (fire-and-forget to Meilisearch).
func (s *Service) IndexLetter(l LetterRecord) {
	if s.meili == nil || !s.meili.Healthy() {
		return
	}
	go func() {
		if err := s.meili.IndexLetter(l); err != nil {
			log.Printf("search: index letter %s: %v", l.ID, err)
		}
	}()
}

// DeleteLetter removes a letter from the Meilisearch index.
func (s *Service) DeleteLetter(id string) {
	if s.meili == nil || !s.meili.Healthy() {
		return
	}
	go func() {
		if err := s.meili.DeleteLetter(id); err != nil {
			log.Printf("search: delete letter %s: %v", id, err)
		}
	}()
}

func nonNil(r []Result) []Result {
	if r == nil {
		return []Result{}
	}
	return r
}
