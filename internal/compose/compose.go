// Package compose assembles the letter's derived text: the preview header
// and footer, the outbound email body, and the mail-client link.
package compose

import (
	"fmt"
	"net/url"
	"strings"
)

// Identity is the sender's process-wide identity fields. Empty fields fall
// back to placeholders in previews and are omitted from the email body.
type Identity struct {
	Signature string `json:"signature"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}

// Email is the composed outbound payload handed to the user's mail client.
// Nothing is transmitted by the service itself.
type Email struct {
	To      string `json:"to"`
	CC      string `json:"cc"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Mailto  string `json:"mailto"`
}

// EmailInput carries everything BuildEmail needs, already resolved: emails
// in selection order, CC addresses deduplicated, and manifest lines naming
// each recipient.
type EmailInput struct {
	Subject    string
	Salutation string
	Content    string
	Identity   Identity
	To         []string
	CC         []string
	SentTo     []string
}

// FormatAddress splits an address on commas, trims each segment, and
// rejoins with the given separator. The same routine backs both the
// newline-separated preview and the comma-separated email body so the two
// can never drift apart.
func FormatAddress(address, separator string) string {
	if strings.TrimSpace(address) == "" {
		return ""
	}
	segments := strings.Split(address, ",")
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, separator)
}

// BuildHeader produces the preview header markdown: title, date, and
// salutation.
func BuildHeader(title, date, salutation string) string {
	return fmt.Sprintf("# %s\n%s\n\nDear %s:", title, date, salutation)
}

// BuildFooter produces the preview footer markdown: the signature block
// with placeholders for unset identity fields, then the Sent To / CC
// manifest.
func BuildFooter(identity Identity, sentTo, cc []string) string {
	signature := identity.Signature
	if signature == "" {
		signature = "[Your Name]"
	}
	email := identity.Email
	if email == "" {
		email = "[Your Email]"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Sincerely,\n\n%s\n\n%s\n", signature, email)
	if address := FormatAddress(identity.Address, "\n"); address != "" {
		fmt.Fprintf(&b, "\n%s\n", address)
	}
	writeManifest(&b, sentTo, cc)
	return b.String()
}

// BuildEmail assembles the outbound email and its mailto link.
func BuildEmail(in EmailInput) Email {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s:\n\n%s\n\nSincerely,\n\n%s\n", in.Salutation, in.Content, in.Identity.Signature)
	if in.Identity.Email != "" {
		fmt.Fprintf(&b, "\n%s\n", in.Identity.Email)
	}
	if address := FormatAddress(in.Identity.Address, ", "); address != "" {
		fmt.Fprintf(&b, "\nResident of %s\n", address)
	}
	writeManifest(&b, in.SentTo, in.CC)

	email := Email{
		To:      strings.Join(in.To, ","),
		CC:      strings.Join(in.CC, ","),
		Subject: in.Subject,
		Body:    b.String(),
	}
	email.Mailto = mailtoLink(email)
	return email
}

// writeManifest appends the Sent To list and, when present, the CC list.
func writeManifest(b *strings.Builder, sentTo, cc []string) {
	b.WriteString("\nSent To:\n")
	for _, line := range sentTo {
		fmt.Fprintf(b, "- %s\n", line)
	}
	if len(cc) > 0 {
		b.WriteString("\nCC:\n")
		for _, email := range cc {
			fmt.Fprintf(b, "- %s\n", email)
		}
	}
}

// mailtoLink builds the mail-client link. The cc parameter leads when
// present, which is how every deployed letter page has built these links.
func mailtoLink(email Email) string {
	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(email.To)
	if email.CC != "" {
		b.WriteString("?cc=")
		b.WriteString(escapeMailto(email.CC))
		b.WriteString("&subject=")
	} else {
		b.WriteString("?subject=")
	}
	b.WriteString(escapeMailto(email.Subject))
	b.WriteString("&body=")
	b.WriteString(escapeMailto(email.Body))
	return b.String()
}

// escapeMailto percent-encodes a mailto parameter. url.QueryEscape encodes
// spaces as +, which some mail clients render literally, so spaces become
// %20 instead.
func escapeMailto(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}
