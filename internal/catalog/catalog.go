// Package catalog loads and indexes the static letter catalog: official
// groups, their members, and letter templates. The catalog is immutable
// after load.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"
)

type Official struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Title string   `json:"title,omitempty"`
	Email string   `json:"email"`
	CC    []string `json:"cc,omitempty"`
}

type OfficialGroup struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Members []Official `json:"members"`
}

type LetterTemplate struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Date              string   `json:"date"`
	ExpiresAt         string   `json:"expiresAt"`
	Tags              []string `json:"tags"`
	DefaultRecipients []string `json:"defaultRecipients"`
}

// Expired reports whether the template's expiry date is in the past. An
// absent or unparseable date means the letter never expires, matching how
// the catalog has always been authored.
func (t LetterTemplate) Expired(now time.Time) bool {
	expiry, err := parseDate(t.ExpiresAt)
	if err != nil {
		return false
	}
	return expiry.Before(now)
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

// Catalog holds the parsed configuration document. Group, member, and letter
// order follows declaration order in the source file since it is the
// display order.
type Catalog struct {
	Groups  []OfficialGroup
	Letters []LetterTemplate

	officials map[string]Official
	letters   map[string]LetterTemplate
}

// Load reads and parses the catalog file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes the catalog document:
//
//	{"officials": {groupId: {"title": ..., "members": {officialId: {...}}}},
//	 "letters": {letterId: {"title": ..., "default_recipients": [...]}}}
//
// Object key order is preserved.
func Parse(data []byte) (*Catalog, error) {
	var top struct {
		Officials json.RawMessage `json:"officials"`
		Letters   json.RawMessage `json:"letters"`
	}
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		officials: make(map[string]Official),
		letters:   make(map[string]LetterTemplate),
	}

	groupIDs, groupValues, err := orderedObject(top.Officials)
	if err != nil {
		return nil, fmt.Errorf("parse officials: %w", err)
	}
	for _, groupID := range groupIDs {
		var rawGroup struct {
			Title   string          `json:"title"`
			Members json.RawMessage `json:"members"`
		}
		if err := json.Unmarshal(groupValues[groupID], &rawGroup); err != nil {
			return nil, fmt.Errorf("parse group %s: %w", groupID, err)
		}
		group := OfficialGroup{ID: groupID, Title: rawGroup.Title}

		memberIDs, memberValues, err := orderedObject(rawGroup.Members)
		if err != nil {
			return nil, fmt.Errorf("parse group %s members: %w", groupID, err)
		}
		for _, memberID := range memberIDs {
			var official Official
			if err := json.Unmarshal(memberValues[memberID], &official); err != nil {
				return nil, fmt.Errorf("parse official %s: %w", memberID, err)
			}
			official.ID = memberID
			group.Members = append(group.Members, official)

			if _, exists := c.officials[memberID]; exists {
				// Lookup by id must be unambiguous. Keep the first
				// occurrence so resolution stays deterministic.
				log.Printf("catalog: official %s declared in more than one group, keeping first", memberID)
				continue
			}
			c.officials[memberID] = official
		}
		c.Groups = append(c.Groups, group)
	}

	letterIDs, letterValues, err := orderedObject(top.Letters)
	if err != nil {
		return nil, fmt.Errorf("parse letters: %w", err)
	}
	for _, letterID := range letterIDs {
		var rawLetter struct {
			Title             string   `json:"title"`
			Description       string   `json:"description"`
			Date              string   `json:"date"`
			ExpiresAt         string   `json:"expires_at"`
			Tags              []string `json:"tags"`
			DefaultRecipients []string `json:"default_recipients"`
		}
		if err := json.Unmarshal(letterValues[letterID], &rawLetter); err != nil {
			return nil, fmt.Errorf("parse letter %s: %w", letterID, err)
		}
		letter := LetterTemplate{
			ID:                letterID,
			Title:             rawLetter.Title,
			Description:       rawLetter.Description,
			Date:              rawLetter.Date,
			ExpiresAt:         rawLetter.ExpiresAt,
			Tags:              rawLetter.Tags,
			DefaultRecipients: rawLetter.DefaultRecipients,
		}
		for _, recipientID := range letter.DefaultRecipients {
			if _, ok := c.officials[recipientID]; !ok {
				// A bad reference is a catalog authoring mistake, not a
				// user error. The id is dropped from derived views later.
				log.Printf("catalog: letter %s references unknown recipient %s", letterID, recipientID)
			}
		}
		c.Letters = append(c.Letters, letter)
		c.letters[letterID] = letter
	}

	return c, nil
}

// Letter returns the template for id, including expired letters so a direct
// open by id keeps working after the letter leaves the list.
func (c *Catalog) Letter(id string) (LetterTemplate, bool) {
	letter, ok := c.letters[id]
	return letter, ok
}

// ActiveLetters returns the letters whose expiry has not passed, in
// declaration order.
func (c *Catalog) ActiveLetters(now time.Time) []LetterTemplate {
	active := make([]LetterTemplate, 0, len(c.Letters))
	for _, letter := range c.Letters {
		if letter.Expired(now) {
			continue
		}
		active = append(active, letter)
	}
	return active
}

// orderedObject decodes a JSON object while recording its key order.
func orderedObject(raw json.RawMessage) ([]string, map[string]json.RawMessage, error) {
	if len(raw) == 0 {
		return nil, nil, nil
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))

	token, err := decoder.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected object, got %v", token)
	}

	var keys []string
	values := make(map[string]json.RawMessage)
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := token.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected object key, got %v", token)
		}
		var value json.RawMessage
		if err := decoder.Decode(&value); err != nil {
			return nil, nil, fmt.Errorf("decode value for %s: %w", key, err)
		}
		keys = append(keys, key)
		values[key] = value
	}
	return keys, values, nil
}
