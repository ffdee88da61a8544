package xfer

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

const (
	// StrictHostKeyCheckingNo disables SFTP host key verification. It is the default.
	StrictHostKeyCheckingNo = "no"
	// StrictHostKeyCheckingYes verifies SFTP host keys against known_hosts.
	StrictHostKeyCheckingYes = "yes"
)

// DefaultRetryBackoffDurations is the schedule used when a ConnectionModel doesn't set one: a single immediate
// retry after the initial attempt.
var DefaultRetryBackoffDurations = []time.Duration{0}

var (
	errHostRequired        = errors.New("non-empty host is required")
	errPortOutOfRange      = errors.New("port must be between 1 and 65535")
	errSFTPAuthRequired    = errors.New("sftp requires a password or a private key")
	errNegativeBackoff     = errors.New("retry backoff durations must not be negative")
	errInvalidHostKeyCheck = errors.New(`strict host key checking must be "yes" or "no"`)
)

// ConnectionModel describes how to reach and authenticate to a remote server, and how hard to try.
//
// A ConnectionModel is a value: it is passed by value, and nothing in this module modifies it or the slice it
// holds. Zero values of the optional fields select the documented defaults.
type ConnectionModel struct {
	// ConnectionName is an optional label. It only shows up in log attributes.
	ConnectionName string

	ConnectionType ConnectionType
	Host           string
	Port           int
	Username       string

	// Password is optional for SFTP when PrivateKey is set.
	Password string

	// PrivateKey is PEM encoded private key material used as an SFTP identity.
	PrivateKey string

	// PrivateKeyPassphrase decrypts PrivateKey, if it is encrypted.
	PrivateKeyPassphrase string

	// Variant selects implicit or explicit TLS for FTPS. Defaults to Explicit.
	Variant Variant

	// ConnectionMode selects the FTP/FTPS data channel mode. Defaults to Passive.
	ConnectionMode ConnectionMode

	// ConnectionTimeout bounds the dial and handshake. Zero leaves it to the protocol library.
	ConnectionTimeout time.Duration

	// StrictHostKeyChecking is the SFTP host key verification policy, "no" (default) or "yes".
	StrictHostKeyChecking string

	// RetryBackoffDurations lists the waits between connection attempts. A schedule of length N allows up to
	// N+1 attempts. Empty means DefaultRetryBackoffDurations.
	RetryBackoffDurations []time.Duration
}

// Address returns host:port, suitable for net.Dial.
func (m ConnectionModel) Address() string {
	return net.JoinHostPort(m.Host, strconv.Itoa(m.Port))
}

// Backoff returns a copy of the effective retry schedule.
func (m ConnectionModel) Backoff() []time.Duration {
	if len(m.RetryBackoffDurations) == 0 {
		return append([]time.Duration(nil), DefaultRetryBackoffDurations...)
	}
	return append([]time.Duration(nil), m.RetryBackoffDurations...)
}

// HostKeyChecking returns the effective strict host key checking flag.
func (m ConnectionModel) HostKeyChecking() string {
	if m.StrictHostKeyChecking == "" {
		return StrictHostKeyCheckingNo
	}
	return m.StrictHostKeyChecking
}

// Validate checks the model's invariants. The returned error matches ErrConfiguration.
func (m ConnectionModel) Validate() error {
	switch m.ConnectionType {
	case FTP, FTPS, SFTP:
	default:
		return NewConfigurationError(fmt.Errorf("unsupported connection type %s", m.ConnectionType))
	}

	if m.Host == "" {
		return NewConfigurationError(errHostRequired)
	}
	if m.Port < 1 || m.Port > 65535 {
		return NewConfigurationError(fmt.Errorf("%w, got %d", errPortOutOfRange, m.Port))
	}

	switch m.Variant {
	case Explicit, Implicit:
	default:
		return NewConfigurationError(fmt.Errorf("unsupported tls variant %s", m.Variant))
	}

	switch m.ConnectionMode {
	case Passive, Active:
	default:
		return NewConfigurationError(fmt.Errorf("unsupported connection mode %s", m.ConnectionMode))
	}

	switch m.HostKeyChecking() {
	case StrictHostKeyCheckingNo, StrictHostKeyCheckingYes:
	default:
		return NewConfigurationError(errInvalidHostKeyCheck)
	}

	if m.ConnectionType == SFTP && m.Password == "" && m.PrivateKey == "" {
		return NewConfigurationError(errSFTPAuthRequired)
	}

	for _, d := range m.RetryBackoffDurations {
		if d < 0 {
			return NewConfigurationError(errNegativeBackoff)
		}
	}

	return nil
}

// String returns a printable description of the model. The password and private key are never included.
func (m ConnectionModel) String() string {
	s := fmt.Sprintf("%s://%s@%s", m.ConnectionType, m.Username, m.Address())
	if m.ConnectionName != "" {
		s = m.ConnectionName + " (" + s + ")"
	}
	return s
}
