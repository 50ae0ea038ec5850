package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// GetProtocol returns the protocol of a given URL
func GetProtocol(u string) (string, error) {
	parsedUrl, err := url.Parse(u)
	if err != nil {
		return "", errors.New("error parsing URL")
	}
	return parsedUrl.Scheme, nil
}

// GetDomain returns the host of a given URL without the "www." prefix and port
func GetDomain(u string) (string, error) {
	parsedUrl, err := url.Parse(u)
	if err != nil {
		return "", errors.New("error parsing URL")
	}
	hostname := strings.ToLower(parsedUrl.Hostname())
	if hostname == "" {
		return "", errors.New("URL has no host")
	}
	return strings.TrimPrefix(hostname, "www."), nil
}

func IsSameDomain(domain string, u string) bool {
	d, err := GetDomain(u)
	return err == nil && domain == d
}

// TrimBase strips trailing slashes so that path concatenation yields a single separator.
func TrimBase(base string) string {
	return strings.TrimRight(strings.TrimSpace(base), "/")
}

// ValidateBaseURL checks that base is an absolute http(s) URL with a host.
func ValidateBaseURL(base string) error {
	if base == "" {
		return errors.New("base URL is required")
	}
	protocol, err := GetProtocol(base)
	if err != nil {
		return err
	}
	if protocol != "http" && protocol != "https" {
		return fmt.Errorf("unsupported scheme %q", protocol)
	}
	if _, err := GetDomain(base); err != nil {
		return fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	return nil
}
