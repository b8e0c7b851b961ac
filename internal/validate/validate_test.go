package validate

import "testing"

func TestEmailOK(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"first.last@sub.domain.org", true},
		{"a+tag@b.co", true},
		{"a@b", false},
		{"", false},
		{"plain", false},
		{"a b@c.com", false},
		{"a@b c.com", false},
		{"@b.com", false},
		{"a@.com", false},
		{"a@b.", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := EmailOK(tt.email); got != tt.want {
				t.Errorf("EmailOK(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestComposeAllValid(t *testing.T) {
	if errs := Compose("Ada Lovelace", "ada@example.com", 2); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestComposeMissingSignature(t *testing.T) {
	errs := Compose("   ", "ada@example.com", 1)
	if len(errs) != 1 || errs[0].Field != "signature" {
		t.Errorf("expected a signature error, got %v", errs)
	}
}

func TestComposeBadEmail(t *testing.T) {
	errs := Compose("Ada", "a@b", 1)
	if len(errs) != 1 || errs[0].Field != "email" {
		t.Errorf("expected an email error, got %v", errs)
	}
}

func TestComposeMissingEmail(t *testing.T) {
	errs := Compose("Ada", "", 1)
	if len(errs) != 1 || errs[0].Field != "email" {
		t.Errorf("expected an email error, got %v", errs)
	}
	if errs[0].Message != "Email is required" {
		t.Errorf("expected required message, got %q", errs[0].Message)
	}
}

func TestComposeNoRecipients(t *testing.T) {
	errs := Compose("Ada", "ada@example.com", 0)
	if len(errs) != 1 || errs[0].Field != "recipients" {
		t.Errorf("expected a recipients error, got %v", errs)
	}
}

func TestComposeEverythingWrong(t *testing.T) {
	errs := Compose("", "nope", 0)
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(errs), errs)
	}
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, field := range []string{"signature", "email", "recipients"} {
		if !fields[field] {
			t.Errorf("missing error for field %s", field)
		}
	}
}
