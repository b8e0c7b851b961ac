package catalog

import "strings"

// RecipientPlaceholder stands in for the salutation when nothing resolves.
const RecipientPlaceholder = "[Recipients]"

// Resolve looks up an official by id across all groups. Absence is benign;
// callers skip ids that do not resolve.
func (c *Catalog) Resolve(id string) (Official, bool) {
	official, ok := c.officials[id]
	return official, ok
}

// RecipientEmails returns the emails of the resolvable ids, preserving the
// order of ids.
func (c *Catalog) RecipientEmails(ids []string) []string {
	emails := make([]string, 0, len(ids))
	for _, id := range ids {
		if official, ok := c.officials[id]; ok {
			emails = append(emails, official.Email)
		}
	}
	return emails
}

// CCEmails returns the union of the CC lists of the resolvable ids.
// Duplicates collapse to the first occurrence, so iteration order is stable
// first-seen order.
func (c *Catalog) CCEmails(ids []string) []string {
	seen := make(map[string]struct{})
	emails := make([]string, 0, len(ids))
	for _, id := range ids {
		official, ok := c.officials[id]
		if !ok {
			continue
		}
		for _, email := range official.CC {
			if _, dup := seen[email]; dup {
				continue
			}
			seen[email] = struct{}{}
			emails = append(emails, email)
		}
	}
	return emails
}

// DisplayName formats an official as "{title} {name}", omitting an absent
// title.
func DisplayName(official Official) string {
	if official.Title == "" {
		return official.Name
	}
	return official.Title + " " + official.Name
}

// FormatRecipientList joins the display names of the resolvable ids using
// English list conjunction rules: none yields the placeholder, two are
// joined with "and", three or more take an Oxford comma before the final
// name. Unresolvable ids are filtered out before formatting.
func (c *Catalog) FormatRecipientList(ids []string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if official, ok := c.officials[id]; ok {
			names = append(names, DisplayName(official))
		}
	}
	switch len(names) {
	case 0:
		return RecipientPlaceholder
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}
