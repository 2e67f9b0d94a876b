// Package netx holds small networking helpers shared by client and server.
package netx

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeBaseURL turns a configured backend address into a base URL that
// request paths can be appended to. Bare "host:port" values get an http
// scheme and trailing slashes are removed. An empty address stays empty.
func NormalizeBaseURL(addr string) (string, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "", nil
	}

	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}

	u, err := url.Parse(addr)
	if err != nil {
		return "", fmt.Errorf("invalid backend address %q: %w", addr, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid backend address %q: unsupported scheme %q", addr, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid backend address %q: missing host", addr)
	}

	return strings.TrimRight(u.String(), "/"), nil
}
