// Package app orchestrates the letter catalog, the single active editing
// session, draft persistence, and email composition behind the HTTP API.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"soapbox/api/internal/catalog"
	"soapbox/api/internal/compose"
	"soapbox/api/internal/config"
	"soapbox/api/internal/content"
	"soapbox/api/internal/debounce"
	"soapbox/api/internal/draft"
	"soapbox/api/internal/export"
	"soapbox/api/internal/letter"
	"soapbox/api/internal/render"
	"soapbox/api/internal/search"
	"soapbox/api/internal/validate"
)

const letterLoadErrorMessage = "Failed to load letter content. Please try again."

type Service struct {
	cfg      config.Config
	catalog  *catalog.Catalog
	source   content.Source
	kv       draft.Store
	search   *search.Service
	exporter *export.Service
	drafts   *debounce.Debouncer
	now      func() time.Time

	mu         sync.Mutex
	current    *letter.Session
	generation int
	lastSubmit time.Time
}

func New(cfg config.Config, cat *catalog.Catalog, source content.Source, kv draft.Store, searchSvc *search.Service, exporter *export.Service) *Service {
	s := &Service{
		cfg:      cfg,
		catalog:  cat,
		source:   source,
		kv:       kv,
		search:   searchSvc,
		exporter: exporter,
		drafts:   debounce.New(cfg.DraftDebounce),
		now:      time.Now,
	}
	if searchSvc != nil {
		searchSvc.Reindex(letterRecords(cat.Letters))
	}
	return s
}

func letterRecords(letters []catalog.LetterTemplate) []search.LetterRecord {
	records := make([]search.LetterRecord, 0, len(letters))
	for _, l := range letters {
		records = append(records, search.LetterRecord{
			ID:          l.ID,
			Title:       l.Title,
			Description: l.Description,
			Date:        l.Date,
			Tags:        l.Tags,
		})
	}
	return records
}

// Ping reports whether the draft store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.kv.Ping(ctx)
}

// Shutdown flushes nothing but stops pending debounced draft writes from
// firing after the process starts to exit.
func (s *Service) Shutdown() {
	s.drafts.Stop()
}

// ── Catalog views ──

func (s *Service) letterSummary(l catalog.LetterTemplate) map[string]any {
	tags := make([]map[string]any, 0, len(l.Tags))
	for _, tag := range l.Tags {
		tags = append(tags, map[string]any{"name": tag, "color": render.TagColor(tag)})
	}
	return map[string]any{
		"id":                l.ID,
		"title":             l.Title,
		"description":       l.Description,
		"date":              l.Date,
		"tags":              tags,
		"defaultRecipients": l.DefaultRecipients,
	}
}

// Catalog returns the official groups in declaration order plus the active
// letters.
func (s *Service) Catalog(ctx context.Context) (map[string]any, error) {
	groups := make([]map[string]any, 0, len(s.catalog.Groups))
	for _, group := range s.catalog.Groups {
		members := make([]map[string]any, 0, len(group.Members))
		for _, official := range group.Members {
			members = append(members, map[string]any{
				"id":    official.ID,
				"name":  official.Name,
				"title": official.Title,
				"email": official.Email,
			})
		}
		groups = append(groups, map[string]any{
			"id":      group.ID,
			"title":   group.Title,
			"members": members,
		})
	}

	letters := make([]map[string]any, 0)
	for _, l := range s.catalog.ActiveLetters(s.now()) {
		letters = append(letters, s.letterSummary(l))
	}

	return map[string]any{"groups": groups, "letters": letters}, nil
}

// Letters lists the active letters, routed through search when a query is
// given. Search hits referencing expired or unknown letters are dropped.
func (s *Service) Letters(ctx context.Context, query string) (map[string]any, error) {
	if strings.TrimSpace(query) == "" || s.search == nil {
		letters := make([]map[string]any, 0)
		for _, l := range s.catalog.ActiveLetters(s.now()) {
			letters = append(letters, s.letterSummary(l))
		}
		return map[string]any{"letters": letters}, nil
	}

	resp := s.search.Search(search.Query{Text: query})
	letters := make([]map[string]any, 0, len(resp.Results))
	for _, hit := range resp.Results {
		l, ok := s.catalog.Letter(hit.ID)
		if !ok || l.Expired(s.now()) {
			continue
		}
		letters = append(letters, s.letterSummary(l))
	}
	return map[string]any{"letters": letters, "query": resp.Query}, nil
}

// Letter returns one template by id, including expired ones so a direct
// link keeps resolving.
func (s *Service) Letter(ctx context.Context, id string) (map[string]any, error) {
	l, ok := s.catalog.Letter(id)
	if !ok {
		return nil, domainError(http.StatusNotFound, "NOT_FOUND", "Letter not found", nil)
	}
	return map[string]any{"letter": s.letterSummary(l)}, nil
}

// ── Session lifecycle ──

// OpenLetter starts a session for the letter, replacing any session already
// open. The body fetch happens inline; if another open supersedes this one
// before the fetch lands, the result is discarded.
func (s *Service) OpenLetter(ctx context.Context, id string) (map[string]any, error) {
	template, ok := s.catalog.Letter(id)
	if !ok {
		return nil, domainError(http.StatusNotFound, "NOT_FOUND", "Letter not found", nil)
	}

	s.mu.Lock()
	s.generation++
	generation := s.generation
	session := letter.New(id, template)
	s.current = session
	s.mu.Unlock()

	original, fetchErr := s.source.Fetch(ctx, id)
	savedDraft, hasDraft, draftErr := s.kv.Get(ctx, draft.ContentKey(id))
	if draftErr != nil {
		// A broken draft store should not block reading the letter.
		log.Printf("app: read draft for %s: %v", id, draftErr)
		savedDraft, hasDraft = "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != generation {
		// Superseded while fetching. The newer session owns the state now.
		return nil, domainError(http.StatusConflict, "SESSION_SUPERSEDED", "Another letter was opened", nil)
	}
	if fetchErr != nil {
		log.Printf("app: fetch letter %s: %v", id, fetchErr)
		session.Fail(letterLoadErrorMessage)
	} else {
		session.Install(original, savedDraft, hasDraft)
	}
	return s.sessionViewLocked(ctx)
}

// Session returns the current session view.
func (s *Service) Session(ctx context.Context) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionViewLocked(ctx)
}

func (s *Service) requireSessionLocked() (*letter.Session, error) {
	if s.current == nil {
		return nil, domainError(http.StatusNotFound, "NO_SESSION", "No letter is open", nil)
	}
	return s.current, nil
}

func (s *Service) requireReadyLocked() (*letter.Session, error) {
	session, err := s.requireSessionLocked()
	if err != nil {
		return nil, err
	}
	if session.State != letter.StateReady {
		return nil, domainError(http.StatusConflict, "SESSION_NOT_READY", "The letter is not ready for editing", nil)
	}
	return session, nil
}

func (s *Service) sessionViewLocked(ctx context.Context) (map[string]any, error) {
	session, err := s.requireSessionLocked()
	if err != nil {
		return nil, err
	}

	identity, err := s.loadIdentity(ctx)
	if err != nil {
		return nil, err
	}

	view := map[string]any{
		"letter":             s.letterSummary(session.Template),
		"state":              string(session.State),
		"content":            session.CurrentContent,
		"isDirty":            session.IsDirty(),
		"selectedRecipients": append([]string{}, session.Selected...),
		"recipientList":      s.catalog.FormatRecipientList(session.Selected),
		"identity":           identity,
	}
	if session.State == letter.StateError {
		view["message"] = session.Message
	}
	return view, nil
}

// SetContent replaces the editable body and schedules the debounced draft
// write. Each keystroke burst collapses into one store write carrying the
// final content.
func (s *Service) SetContent(ctx context.Context, body string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.requireReadyLocked()
	if err != nil {
		return nil, err
	}

	session.SetContent(body)
	key := draft.ContentKey(session.ID)
	s.drafts.Trigger(key, func() {
		if err := s.kv.Set(context.Background(), key, body); err != nil {
			log.Printf("app: save draft %s: %v", key, err)
		}
	})
	return s.sessionViewLocked(ctx)
}

// ToggleRecipient adds or removes one official from the selection.
func (s *Service) ToggleRecipient(ctx context.Context, officialID string, selected bool) (map[string]any, error) {
	if _, ok := s.catalog.Resolve(officialID); !ok {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Unknown recipient", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.requireReadyLocked()
	if err != nil {
		return nil, err
	}
	session.ToggleRecipient(officialID, selected)
	return s.sessionViewLocked(ctx)
}

// ResetContent reverts the body to the original template text and deletes
// the persisted draft.
func (s *Service) ResetContent(ctx context.Context) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.requireReadyLocked()
	if err != nil {
		return nil, err
	}

	key := draft.ContentKey(session.ID)
	s.drafts.Cancel(key)
	if err := s.kv.Delete(ctx, key); err != nil {
		return nil, fmt.Errorf("delete draft %s: %w", key, err)
	}
	session.Reset()
	return s.sessionViewLocked(ctx)
}

// CloseSession discards the current session. A pending debounced draft
// write is left to land; only the in-memory working state goes away.
func (s *Service) CloseSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.generation++
	return nil
}

// ── Derived output ──

// Preview renders the letter as it will read: header, body, and signature
// footer, each converted from markdown to HTML.
func (s *Service) Preview(ctx context.Context) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.requireReadyLocked()
	if err != nil {
		return nil, err
	}

	identity, err := s.loadIdentity(ctx)
	if err != nil {
		return nil, err
	}

	salutation := s.catalog.FormatRecipientList(session.Selected)
	header := compose.BuildHeader(session.Template.Title, session.Template.Date, salutation)
	footer := compose.BuildFooter(identity, s.sentToLines(session.Selected), s.catalog.CCEmails(session.Selected))

	headerHTML, err := render.Markdown(header)
	if err != nil {
		return nil, err
	}
	bodyHTML, err := render.Markdown(session.CurrentContent)
	if err != nil {
		return nil, err
	}
	footerHTML, err := render.Markdown(footer)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"headerHtml": headerHTML,
		"bodyHtml":   bodyHTML,
		"footerHtml": footerHTML,
	}, nil
}

// Compose validates the identity and selection, applies the submit
// cooldown, and returns the outbound email payload with its mailto link.
func (s *Service) Compose(ctx context.Context) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.requireReadyLocked()
	if err != nil {
		return nil, err
	}

	identity, err := s.loadIdentity(ctx)
	if err != nil {
		return nil, err
	}

	to := s.catalog.RecipientEmails(session.Selected)
	if fieldErrors := validate.Compose(identity.Signature, identity.Email, len(to)); len(fieldErrors) > 0 {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Please fix the highlighted fields", fieldErrors)
	}

	now := s.now()
	if !s.lastSubmit.IsZero() && now.Sub(s.lastSubmit) < s.cfg.SubmitCooldown {
		return nil, domainError(http.StatusTooManyRequests, "COOLDOWN", "Please wait a moment before sending again", nil)
	}
	s.lastSubmit = now

	email := compose.BuildEmail(compose.EmailInput{
		Subject:    session.Template.Title,
		Salutation: s.catalog.FormatRecipientList(session.Selected),
		Content:    strings.TrimSpace(session.CurrentContent),
		Identity:   identity,
		To:         to,
		CC:         s.catalog.CCEmails(session.Selected),
		SentTo:     s.sentToLines(session.Selected),
	})
	return map[string]any{"email": email}, nil
}

// Export renders the letter to a downloadable PDF or DOCX.
func (s *Service) Export(ctx context.Context, format export.Format) (*export.Result, error) {
	s.mu.Lock()
	session, err := s.requireReadyLocked()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	identity, loadErr := s.loadIdentity(ctx)
	if loadErr != nil {
		s.mu.Unlock()
		return nil, loadErr
	}

	req := export.Request{
		LetterID:   session.ID,
		Title:      session.Template.Title,
		Date:       session.Template.Date,
		Salutation: s.catalog.FormatRecipientList(session.Selected),
		Signature:  identity.Signature,
		Address:    compose.FormatAddress(identity.Address, "\n"),
		Recipients: s.recipientNames(session.Selected),
		Format:     format,
	}
	bodyHTML, renderErr := render.Markdown(session.CurrentContent)
	s.mu.Unlock()
	if renderErr != nil {
		return nil, renderErr
	}
	req.BodyHTML = bodyHTML

	result, err := s.exporter.Export(ctx, req)
	if err != nil {
		if errors.Is(err, export.ErrPDFDependencyMissing) || errors.Is(err, export.ErrDOCXDependencyMissing) {
			return nil, domainError(http.StatusServiceUnavailable, "EXPORT_UNAVAILABLE", "Export is not available on this server", nil)
		}
		return nil, err
	}
	return result, nil
}

func (s *Service) recipientNames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if official, ok := s.catalog.Resolve(id); ok {
			names = append(names, catalog.DisplayName(official))
		}
	}
	return names
}

// sentToLines formats each resolvable selected official as "Name <email>"
// for the closing manifest.
func (s *Service) sentToLines(ids []string) []string {
	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		if official, ok := s.catalog.Resolve(id); ok {
			lines = append(lines, fmt.Sprintf("%s <%s>", catalog.DisplayName(official), official.Email))
		}
	}
	return lines
}

// ── Identity ──

func (s *Service) loadIdentity(ctx context.Context) (compose.Identity, error) {
	var identity compose.Identity
	for _, field := range []struct {
		key    string
		target *string
	}{
		{draft.KeySignature, &identity.Signature},
		{draft.KeyEmail, &identity.Email},
		{draft.KeyAddress, &identity.Address},
	} {
		value, ok, err := s.kv.Get(ctx, field.key)
		if err != nil {
			return compose.Identity{}, fmt.Errorf("read %s: %w", field.key, err)
		}
		if ok {
			*field.target = value
		}
	}
	return identity, nil
}

// Identity returns the stored sender fields. Missing keys come back as
// empty strings.
func (s *Service) Identity(ctx context.Context) (map[string]any, error) {
	identity, err := s.loadIdentity(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{"identity": identity}, nil
}

// UpdateIdentity writes the provided fields. Nil means leave the field
// alone; an empty string clears it. The signature is title-cased the way
// the letter footer has always rendered names.
func (s *Service) UpdateIdentity(ctx context.Context, signature, email, address *string) (map[string]any, error) {
	if signature != nil {
		cased := compose.TitleCaseName(strings.TrimSpace(*signature))
		if err := s.setOrClear(ctx, draft.KeySignature, cased); err != nil {
			return nil, err
		}
	}
	if email != nil {
		if err := s.setOrClear(ctx, draft.KeyEmail, strings.TrimSpace(*email)); err != nil {
			return nil, err
		}
	}
	if address != nil {
		if err := s.setOrClear(ctx, draft.KeyAddress, strings.TrimSpace(*address)); err != nil {
			return nil, err
		}
	}
	return s.Identity(ctx)
}

func (s *Service) setOrClear(ctx context.Context, key, value string) error {
	if value == "" {
		if err := s.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
		return nil
	}
	if err := s.kv.Set(ctx, key, value); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
