package linkcrawler

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Selector restricts link collection to the first element matching a tag name and attributes.
// The zero value selects the whole document.
type Selector struct {
	Tag   string            // Element name, empty matches any element
	Attrs map[string]string // Attribute filters, e.g. {"id": "main"} or {"class": "container row"}
}

// IsZero reports whether the selector selects the whole document.
func (s Selector) IsZero() bool {
	return s.Tag == "" && len(s.Attrs) == 0
}

func (s Selector) String() string {
	if s.IsZero() {
		return "document"
	}
	var b strings.Builder
	b.WriteString(s.Tag)
	keys := make([]string, 0, len(s.Attrs))
	for k := range s.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "[%s=%q]", k, s.Attrs[k])
	}
	return b.String()
}

// Matches reports whether n is an element satisfying the tag and every attribute filter.
// A class filter matches the element's full class list in order, or any one of its classes.
func (s Selector) Matches(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	if s.Tag != "" && !strings.EqualFold(n.Data, s.Tag) {
		return false
	}
	for key, want := range s.Attrs {
		got, ok := attr(n, key)
		if !ok {
			return false
		}
		if strings.EqualFold(key, "class") {
			if !hasClasses(got, want) {
				return false
			}
			continue
		}
		if got != want {
			return false
		}
	}
	return true
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

// hasClasses matches the whole class attribute, or a single class token.
func hasClasses(got, want string) bool {
	have := strings.Fields(got)
	wanted := strings.Fields(want)
	if strings.Join(have, " ") == strings.Join(wanted, " ") {
		return true
	}
	if len(wanted) != 1 {
		return false
	}
	for _, c := range have {
		if c == wanted[0] {
			return true
		}
	}
	return false
}

func (s *Selector) set(key, value string) {
	if s.Attrs == nil {
		s.Attrs = make(map[string]string)
	}
	s.Attrs[key] = value
}

func (s *Selector) addClass(class string) {
	if existing, ok := s.Attrs["class"]; ok && existing != "" {
		class = existing + " " + class
	}
	s.set("class", class)
}

// ParseSelector parses a compact selector such as `div#main.container[role=navigation]`.
func ParseSelector(raw string) (Selector, error) {
	raw = strings.TrimSpace(raw)
	var sel Selector
	i := 0
	for i < len(raw) && isNameChar(raw[i]) {
		i++
	}
	sel.Tag = strings.ToLower(raw[:i])

	for i < len(raw) {
		switch c := raw[i]; c {
		case '#', '.':
			i++
			start := i
			for i < len(raw) && isNameChar(raw[i]) {
				i++
			}
			if start == i {
				return Selector{}, fmt.Errorf("selector %q: missing name after %q", raw, c)
			}
			if c == '#' {
				sel.set("id", raw[start:i])
			} else {
				sel.addClass(raw[start:i])
			}
		case '[':
			end := strings.IndexByte(raw[i:], ']')
			if end < 0 {
				return Selector{}, fmt.Errorf("selector %q: unterminated attribute filter", raw)
			}
			key, value, ok := strings.Cut(raw[i+1:i+end], "=")
			key = strings.ToLower(strings.TrimSpace(key))
			if !ok || key == "" {
				return Selector{}, fmt.Errorf("selector %q: attribute filter must be key=value", raw)
			}
			value = strings.Trim(strings.TrimSpace(value), `"'`)
			if key == "class" {
				for _, class := range strings.Fields(value) {
					sel.addClass(class)
				}
			} else {
				sel.set(key, value)
			}
			i += end + 1
		default:
			return Selector{}, fmt.Errorf("selector %q: unexpected character %q", raw, c)
		}
	}
	return sel, nil
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-' || c == '_' || c == ':'
}
