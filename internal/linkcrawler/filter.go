package linkcrawler

import "strings"

// ShouldVerify reports whether url needs a status check against the crawler's base URL.
func (c *LinkCrawler) ShouldVerify(url string) bool {
	return ShouldVerifyURL(url, c.baseURL)
}

// ShouldVerifyURL reports whether url needs a status check. Links that CollectLinks
// turned into base-prefixed javascript, ftp or irc references are exempt, as are the
// bare base URL with a trailing "/" or "#". Prefixes are compared as raw strings.
func ShouldVerifyURL(url, baseURL string) bool {
	for _, prefix := range []string{"javascript", "ftp://", "irc://"} {
		if strings.HasPrefix(url, baseURL+prefix) {
			return false
		}
	}
	return url != baseURL+"/" && url != baseURL+"#"
}
