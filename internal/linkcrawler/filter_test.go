package linkcrawler

import "testing"

func TestShouldVerifyURLExemptions(t *testing.T) {
	t.Parallel()

	const base = "http://example.com"
	exempt := []string{
		base + "javascript:void(0)",
		base + "javascript:x",
		base + "ftp://files.example.com/x",
		base + "irc://irc.example.com/x",
		base + "/",
		base + "#",
	}
	for _, u := range exempt {
		if ShouldVerifyURL(u, base) {
			t.Errorf("expected %q to be exempt", u)
		}
	}

	verify := []string{
		base + "/about",
		base + "path",
		base + "/#top",
		"https://other.test/",
		base,
	}
	for _, u := range verify {
		if !ShouldVerifyURL(u, base) {
			t.Errorf("expected %q to be verified", u)
		}
	}
}

// Exemptions compare raw prefixes of the base-prefixed link, not the URL scheme.
func TestShouldVerifyURLUsesLiteralPrefixes(t *testing.T) {
	t.Parallel()

	const base = "http://example.com"
	if ShouldVerifyURL(base+"javascriptless-page", base) {
		t.Fatal("any base+\"javascript\" prefix is exempt, including paths that merely start with it")
	}
	if !ShouldVerifyURL("javascript:alert(1)", base) {
		t.Fatal("a javascript: link without the base prefix is not exempt")
	}
	if !ShouldVerifyURL("ftp://files.example.com/", base) {
		t.Fatal("an ftp link without the base prefix is not exempt")
	}
}

func TestShouldVerifyURLIsPure(t *testing.T) {
	t.Parallel()

	const base = "https://example.com"
	urls := []string{base + "/", base + "/a", base + "irc://x", "https://x.test"}
	for _, u := range urls {
		first := ShouldVerifyURL(u, base)
		for i := 0; i < 10; i++ {
			if got := ShouldVerifyURL(u, base); got != first {
				t.Fatalf("ShouldVerifyURL(%q) changed from %v to %v", u, first, got)
			}
		}
	}
}

func TestCrawlerShouldVerifyUsesTrimmedBase(t *testing.T) {
	t.Parallel()

	c, err := New(DefaultOptions("https://example.com/"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if c.ShouldVerify("https://example.com/") {
		t.Fatal("expected base root to be exempt")
	}
	if !c.ShouldVerify("https://example.com/docs") {
		t.Fatal("expected ordinary path to be verified")
	}
}
