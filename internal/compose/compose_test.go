package compose

import (
	"strings"
	"testing"
)

func TestFormatAddress(t *testing.T) {
	tests := []struct {
		name      string
		address   string
		separator string
		want      string
	}{
		{"empty", "", "\n", ""},
		{"whitespace only", "   ", "\n", ""},
		{"single segment", "12 Elm St", "\n", "12 Elm St"},
		{"newline join", "12 Elm St, Springfield, IL", "\n", "12 Elm St\nSpringfield\nIL"},
		{"comma join", "12 Elm St, Springfield, IL", ", ", "12 Elm St, Springfield, IL"},
		{"ragged spacing", " 12 Elm St ,  Springfield,IL ", "\n", "12 Elm St\nSpringfield\nIL"},
		{"empty segments dropped", "12 Elm St,,IL", "\n", "12 Elm St\nIL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAddress(tt.address, tt.separator); got != tt.want {
				t.Errorf("FormatAddress(%q, %q) = %q, want %q", tt.address, tt.separator, got, tt.want)
			}
		})
	}
}

func TestBuildHeader(t *testing.T) {
	got := BuildHeader("Safer Crosswalks Now", "2026-01-15", "Mayor Pat Winters and Jordan Lee")
	want := "# Safer Crosswalks Now\n2026-01-15\n\nDear Mayor Pat Winters and Jordan Lee:"
	if got != want {
		t.Errorf("BuildHeader = %q, want %q", got, want)
	}
}

func TestBuildFooterPlaceholders(t *testing.T) {
	footer := BuildFooter(Identity{}, []string{"Mayor Pat Winters <mayor@city.example.gov>"}, nil)

	if !strings.Contains(footer, "[Your Name]") {
		t.Error("expected name placeholder for empty signature")
	}
	if !strings.Contains(footer, "[Your Email]") {
		t.Error("expected email placeholder for empty email")
	}
	if strings.Contains(footer, "CC:") {
		t.Error("expected no CC section without CC addresses")
	}
	if !strings.Contains(footer, "Sent To:\n- Mayor Pat Winters <mayor@city.example.gov>") {
		t.Errorf("expected sent-to manifest, got %q", footer)
	}
}

func TestBuildFooterAddressUsesNewlines(t *testing.T) {
	identity := Identity{Signature: "Ada", Email: "ada@example.com", Address: "12 Elm St, Springfield"}
	footer := BuildFooter(identity, nil, nil)

	if !strings.Contains(footer, "12 Elm St\nSpringfield") {
		t.Errorf("expected newline-joined address, got %q", footer)
	}
}

func TestBuildEmail(t *testing.T) {
	email := BuildEmail(EmailInput{
		Subject:    "Safer Crosswalks Now",
		Salutation: "Mayor Pat Winters and Jordan Lee",
		Content:    "Please fund the crosswalk program.",
		Identity: Identity{
			Signature: "Ada Lovelace",
			Email:     "ada@example.com",
			Address:   "12 Elm St, Springfield",
		},
		To:     []string{"mayor@city.example.gov", "jlee@city.example.gov"},
		CC:     []string{"clerk@city.example.gov", "aide@city.example.gov"},
		SentTo: []string{"Mayor Pat Winters <mayor@city.example.gov>", "Jordan Lee <jlee@city.example.gov>"},
	})

	if email.To != "mayor@city.example.gov,jlee@city.example.gov" {
		t.Errorf("unexpected to: %q", email.To)
	}
	if email.CC != "clerk@city.example.gov,aide@city.example.gov" {
		t.Errorf("unexpected cc: %q", email.CC)
	}
	if email.Subject != "Safer Crosswalks Now" {
		t.Errorf("unexpected subject: %q", email.Subject)
	}

	for _, fragment := range []string{
		"Dear Mayor Pat Winters and Jordan Lee:",
		"Please fund the crosswalk program.",
		"Sincerely,\n\nAda Lovelace",
		"ada@example.com",
		"Resident of 12 Elm St, Springfield",
		"Sent To:\n- Mayor Pat Winters <mayor@city.example.gov>",
		"CC:\n- clerk@city.example.gov",
	} {
		if !strings.Contains(email.Body, fragment) {
			t.Errorf("body missing %q:\n%s", fragment, email.Body)
		}
	}
}

func TestBuildEmailOmitsEmptyIdentityLines(t *testing.T) {
	email := BuildEmail(EmailInput{
		Subject:    "S",
		Salutation: "A",
		Content:    "body",
		Identity:   Identity{Signature: "Ada"},
		To:         []string{"a@b.example"},
		SentTo:     []string{"A <a@b.example>"},
	})

	if strings.Contains(email.Body, "Resident of") {
		t.Error("expected no address line when address is empty")
	}
	if strings.Contains(email.Body, "[Your Email]") {
		t.Error("email body must not contain preview placeholders")
	}
}

func TestMailtoWithCC(t *testing.T) {
	email := BuildEmail(EmailInput{
		Subject:    "Hello World",
		Salutation: "A",
		Content:    "body",
		Identity:   Identity{Signature: "Ada"},
		To:         []string{"a@b.example"},
		CC:         []string{"c@d.example"},
		SentTo:     []string{"A <a@b.example>"},
	})

	if !strings.HasPrefix(email.Mailto, "mailto:a@b.example?cc=c%40d.example&subject=Hello%20World&body=") {
		t.Errorf("unexpected mailto prefix: %q", email.Mailto)
	}
	if strings.Contains(email.Mailto, "+") {
		t.Errorf("mailto must use %%20 for spaces, got %q", email.Mailto)
	}
}

func TestMailtoWithoutCC(t *testing.T) {
	email := BuildEmail(EmailInput{
		Subject:    "Hi",
		Salutation: "A",
		Content:    "body",
		Identity:   Identity{Signature: "Ada"},
		To:         []string{"a@b.example"},
		SentTo:     []string{"A <a@b.example>"},
	})

	if !strings.HasPrefix(email.Mailto, "mailto:a@b.example?subject=Hi&body=") {
		t.Errorf("unexpected mailto prefix: %q", email.Mailto)
	}
	if strings.Contains(email.Mailto, "cc=") {
		t.Errorf("expected no cc parameter, got %q", email.Mailto)
	}
}

func TestTitleCaseName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ada lovelace", "Ada Lovelace"},
		{"ADA LOVELACE", "Ada Lovelace"},
		{"sarah mcdonald", "Sarah McDonald"},
		{"ian macgregor", "Ian MacGregor"},
		{"anne-marie smith", "Anne-Marie Smith"},
		{"mc", "Mc"},
		{"mac", "Mac"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := TitleCaseName(tt.in); got != tt.want {
				t.Errorf("TitleCaseName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
