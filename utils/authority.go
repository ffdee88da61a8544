package utils

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

/*
   URI parlance (see https://www.rfc-editor.org/rfc/rfc3986.html#section-3.2):

       sftp://user@example.com:2222/inbound/daily
       \__/   \__________________/\_____________/
        |              |                 |
     scheme        authority           path

   Where:
     authority   = [ userinfo "@" ] host [ ":" port ]
     userinfo    = *( unreserved / pct-encoded / sub-delims / ":" )
*/

// Default control ports per scheme.
const (
	DefaultFTPPort          = 21
	DefaultFTPSImplicitPort = 990
	DefaultSFTPPort         = 22
)

// Authority represents host, port and userinfo (user/pass) of a remote endpoint
type Authority struct {
	host string
	port uint16
	user *url.Userinfo
}

// Username returns the username of the authority. May be an empty string.
func (a Authority) Username() string {
	if a.user == nil {
		return ""
	}
	return a.user.Username()
}

// Password returns the password of the authority. May be an empty string.
func (a Authority) Password() string {
	if a.user == nil {
		return ""
	}
	p, _ := a.user.Password()
	return p
}

// Host returns the host portion of an authority, without brackets for IPv6 literals
func (a Authority) Host() string {
	return a.host
}

// Port returns the port portion of an authority, 0 when absent
func (a Authority) Port() uint16 {
	return a.port
}

// String returns user@host:port. The password is never rendered, per
// https://tools.ietf.org/html/rfc3986#section-3.2.1
func (a Authority) String() string {
	hostPort := a.host
	if strings.Contains(hostPort, ":") {
		hostPort = "[" + hostPort + "]"
	}
	if a.port != 0 {
		hostPort = fmt.Sprintf("%s:%d", hostPort, a.port)
	}
	if a.Username() != "" {
		return a.Username() + "@" + hostPort
	}
	return hostPort
}

var schemeRE = regexp.MustCompile("^[A-Za-z][A-Za-z0-9+.-]*://")

// NewAuthority initializes Authority struct by parsing authority string, ie: "user:pass@host.com:2222".
func NewAuthority(authority string) (Authority, error) {
	if authority == "" {
		return Authority{}, errors.New("authority string may not be empty")
	}
	if !schemeRE.MatchString(authority) {
		authority = "scheme://" + authority
	}

	u, err := url.Parse(authority)
	if err != nil {
		return Authority{}, err
	}
	return authorityFromURL(u)
}

func authorityFromURL(u *url.URL) (Authority, error) {
	if u.Hostname() == "" {
		return Authority{}, errors.New("host may not be empty")
	}

	var port uint16
	if p := u.Port(); p != "" {
		val, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return Authority{}, fmt.Errorf("invalid port %q: %w", p, err)
		}
		port = uint16(val)
	}

	return Authority{
		host: u.Hostname(),
		port: port,
		user: u.User,
	}, nil
}

// Endpoint is a parsed remote URI: scheme, authority and remote path.
type Endpoint struct {
	Scheme    string
	Authority Authority
	Path      string
}

// ParseEndpoint parses a URI such as "ftps://user@host:990/dir/file.txt". The scheme must be one of ftp, ftps
// or sftp. A URI without a path yields "/".
func ParseEndpoint(uri string) (Endpoint, error) {
	if !schemeRE.MatchString(uri) {
		return Endpoint{}, fmt.Errorf("%q is not a remote uri", uri)
	}

	u, err := url.Parse(uri)
	if err != nil {
		return Endpoint{}, err
	}

	scheme := strings.ToLower(u.Scheme)
	switch scheme {
	case "ftp", "ftps", "sftp":
	default:
		return Endpoint{}, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	a, err := authorityFromURL(u)
	if err != nil {
		return Endpoint{}, err
	}

	return Endpoint{
		Scheme:    scheme,
		Authority: a,
		Path:      EnsureLeadingSlash(u.Path),
	}, nil
}

// IsRemoteURI reports whether s looks like scheme://...
func IsRemoteURI(s string) bool {
	return schemeRE.MatchString(s)
}

// DefaultPort returns the well known control port for scheme. Implicit FTPS listens on 990.
func DefaultPort(scheme string, implicitTLS bool) int {
	switch strings.ToLower(scheme) {
	case "sftp":
		return DefaultSFTPPort
	case "ftps":
		if implicitTLS {
			return DefaultFTPSImplicitPort
		}
	}
	return DefaultFTPPort
}

// EncodeURI ensure that a uri is properly percent-encoded. The password is never included.
func EncodeURI(scheme, username, hostport, path string) string {
	u := &url.URL{
		Scheme: scheme,
		Host:   hostport,
		Path:   path,
	}
	if username != "" {
		u.User = url.User(username)
	}

	return u.String()
}
