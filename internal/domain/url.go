package domain

import (
	"fmt"
	"strings"
)

// Parts is a URL decomposed into its components.
// The components are substrings of the original input; nothing is decoded or
// re-encoded, which keeps Recompose(Decompose(u)) == u.
type Parts struct {
	Scheme    string
	Authority string
	Path      string
	RawQuery  string
	Fragment  string

	// ForceQuery records a '?' with an empty query.
	ForceQuery bool

	// HasFragment records a '#', even when the fragment is empty.
	HasFragment bool
}

// Decompose splits raw into its components.
// It only requires a scheme followed by "://" and a non-empty authority;
// everything else is accepted as-is.
func Decompose(raw string) (Parts, error) {
	var p Parts

	i := strings.IndexByte(raw, ':')
	if i <= 0 || !validScheme(raw[:i]) {
		return Parts{}, fmt.Errorf("%w: %q: missing scheme", ErrMalformedURL, raw)
	}
	p.Scheme = raw[:i]
	rest := raw[i+1:]

	if !strings.HasPrefix(rest, "//") {
		return Parts{}, fmt.Errorf("%w: %q: missing authority", ErrMalformedURL, raw)
	}
	rest = rest[2:]

	end := strings.IndexAny(rest, "/?#")
	if end < 0 {
		end = len(rest)
	}
	p.Authority = rest[:end]
	if p.Authority == "" {
		return Parts{}, fmt.Errorf("%w: %q: empty authority", ErrMalformedURL, raw)
	}
	rest = rest[end:]

	if j := strings.IndexByte(rest, '#'); j >= 0 {
		p.Fragment = rest[j+1:]
		p.HasFragment = true
		rest = rest[:j]
	}
	if j := strings.IndexByte(rest, '?'); j >= 0 {
		p.RawQuery = rest[j+1:]
		p.ForceQuery = p.RawQuery == ""
		rest = rest[:j]
	}
	p.Path = rest

	return p, nil
}

// Recompose reassembles the components into a URL string.
func Recompose(p Parts) string {
	var b strings.Builder
	b.Grow(len(p.Scheme) + len(p.Authority) + len(p.Path) + len(p.RawQuery) + len(p.Fragment) + 5)

	b.WriteString(p.Scheme)
	b.WriteString("://")
	b.WriteString(p.Authority)
	b.WriteString(p.Path)
	if p.RawQuery != "" || p.ForceQuery {
		b.WriteByte('?')
		b.WriteString(p.RawQuery)
	}
	if p.HasFragment {
		b.WriteByte('#')
		b.WriteString(p.Fragment)
	}
	return b.String()
}

// String implements fmt.Stringer.
func (p Parts) String() string {
	return Recompose(p)
}

// Segments splits the path on '/'. A path starting with '/' yields an empty
// first segment, so the resource-type segment of "/resource/X" is at index 1.
func (p Parts) Segments() []string {
	return strings.Split(p.Path, "/")
}

// LastSegment returns the last path segment, still percent-encoded.
func (p Parts) LastSegment() string {
	if i := strings.LastIndexByte(p.Path, '/'); i >= 0 {
		return p.Path[i+1:]
	}
	return p.Path
}

// Host returns the authority without userinfo and port.
func (p Parts) Host() string {
	_, host, _ := splitAuthority(p.Authority)
	return host
}

// Labels returns the dot-separated labels of the host.
func (p Parts) Labels() []string {
	return strings.Split(p.Host(), ".")
}

// Language returns the leading host label when the host has exactly three
// labels (en.wikipedia.org), and "" otherwise.
func (p Parts) Language() string {
	labels := p.Labels()
	if len(labels) != 3 {
		return ""
	}
	return labels[0]
}

// WithAuthority returns a copy of p with a different authority.
func (p Parts) WithAuthority(authority string) Parts {
	p.Authority = authority
	return p
}

// WithLanguage returns a copy of p whose host is prefixed by lang + ".".
func (p Parts) WithLanguage(lang string) Parts {
	userinfo, host, port := splitAuthority(p.Authority)
	p.Authority = userinfo + lang + "." + host + port
	return p
}

// ReplaceInAuthority returns a copy of p with every occurrence of from in the
// authority replaced by to. The path is never touched.
func (p Parts) ReplaceInAuthority(from, to string) Parts {
	p.Authority = strings.ReplaceAll(p.Authority, from, to)
	return p
}

// splitAuthority splits "user@host:port" into "user@", "host", ":port".
func splitAuthority(authority string) (userinfo, host, port string) {
	host = authority
	if i := strings.LastIndexByte(host, '@'); i >= 0 {
		userinfo, host = host[:i+1], host[i+1:]
	}
	// An IPv6 literal keeps its colons inside brackets.
	search := host
	offset := 0
	if j := strings.LastIndexByte(host, ']'); j >= 0 {
		search, offset = host[j:], j
	}
	if i := strings.LastIndexByte(search, ':'); i >= 0 {
		i += offset
		host, port = host[:i], host[i:]
	}
	return userinfo, host, port
}

func validScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9', c == '+', c == '-', c == '.':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return s != ""
}
