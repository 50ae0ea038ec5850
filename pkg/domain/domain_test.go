package domain

import "testing"

func TestGetDomain(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"https://www.example.com/path":  "example.com",
		"http://Example.com:8080/a?b=c": "example.com",
		"https://sub.example.com":       "sub.example.com",
	}
	for in, want := range tests {
		got, err := GetDomain(in)
		if err != nil {
			t.Fatalf("GetDomain(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Fatalf("GetDomain(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := GetDomain("/relative/only"); err == nil {
		t.Fatal("expected error for URL without host")
	}
}

func TestIsSameDomain(t *testing.T) {
	t.Parallel()

	if !IsSameDomain("example.com", "https://www.example.com/about") {
		t.Fatal("expected www host to match bare domain")
	}
	if IsSameDomain("example.com", "https://other.test/") {
		t.Fatal("expected different host not to match")
	}
}

func TestValidateBaseURL(t *testing.T) {
	t.Parallel()

	valid := []string{"http://example.com", "https://127.0.0.1:8443"}
	for _, u := range valid {
		if err := ValidateBaseURL(u); err != nil {
			t.Fatalf("ValidateBaseURL(%q) returned error: %v", u, err)
		}
	}

	invalid := []string{"", "ftp://example.com", "example.com", "http://"}
	for _, u := range invalid {
		if err := ValidateBaseURL(u); err == nil {
			t.Fatalf("ValidateBaseURL(%q) expected error", u)
		}
	}
}

func TestTrimBase(t *testing.T) {
	t.Parallel()

	if got := TrimBase(" https://example.com// "); got != "https://example.com" {
		t.Fatalf("unexpected trimmed base %q", got)
	}
}
