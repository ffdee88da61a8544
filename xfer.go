package xfer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// Client represents a single session against a remote FTP, FTPS or SFTP server.
//
// A Client is stateful and owns exactly one underlying session. It is not safe for concurrent use by multiple
// callers. Clients are created unconnected by backend.NewClient and connected by AuthAndConnect (or by calling
// ConnectToServer directly, without retries).
type Client interface {
	// Name returns the human readable protocol name, ie: "Secure File Transfer Protocol".
	Name() string

	// ConnectionType returns the protocol spoken by the client.
	ConnectionType() ConnectionType

	// ConnectToServer performs the raw handshake described by model: transport connect, authentication and
	// protocol setup (binary transfer mode for FTP/FTPS, sftp subsystem for SFTP).
	//
	// Errors match ErrAuthentication when the server rejects the credentials, ErrConfiguration when the model
	// can not be used by this client, and ErrTransport for any other connection-level fault.
	ConnectToServer(ctx context.Context, model ConnectionModel) error

	// ListFilesInfo returns the regular files found at path mapped to their size in bytes. Directories are
	// excluded.
	ListFilesInfo(path string) (map[string]int64, error)

	// ListDirectoryInfo returns the directories found at path mapped to their reported size. The "." and ".."
	// entries are excluded.
	ListDirectoryInfo(path string) (map[string]int64, error)

	// ListDirectories returns a FileInfo for each directory found at path, excluding "." and "..".
	ListDirectories(path string) ([]FileInfo, error)

	// RetrieveFileStream opens the remote file for reading. The caller must close the returned stream. An error
	// matching ErrNotFound is returned if the file does not exist.
	RetrieveFileStream(remoteName string) (io.ReadCloser, error)

	// StoreFile writes everything read from r to the remote file, replacing any previous content. An error
	// matching ErrTransfer is returned on I/O faults.
	StoreFile(remoteName string, r io.Reader) (bool, error)

	// DeleteFile removes the remote file. Deleting a file that does not exist returns an error matching
	// ErrNotFound.
	DeleteFile(remoteName string) (bool, error)

	// MakeDirectory creates every missing segment of path (mkdir -p). Segments that already exist as
	// directories are left alone; a segment that exists as a regular file returns an error matching
	// ErrConfiguration.
	MakeDirectory(path string) error

	// IsConnected reports whether the underlying session is established.
	IsConnected() bool

	// Disconnect releases the underlying session. It is safe to call on a client that never connected.
	Disconnect() error
}

// FileInfo describes a remote directory entry returned by Client.ListDirectories.
type FileInfo struct {
	Name    string
	Size    int64
	ModTime time.Time
	IsDir   bool
}

// ConnectionType identifies the protocol spoken by a Client.
type ConnectionType int

const (
	_ ConnectionType = iota
	// FTP is plain File Transfer Protocol.
	FTP
	// FTPS is FTP over TLS, either implicit or explicit (see Variant).
	FTPS
	// SFTP is the SSH File Transfer Protocol.
	SFTP
)

// String returns the lower case protocol name, ie: "ftp", "ftps" or "sftp".
func (t ConnectionType) String() string {
	switch t {
	case FTP:
		return "ftp"
	case FTPS:
		return "ftps"
	case SFTP:
		return "sftp"
	default:
		return fmt.Sprintf("ConnectionType(%d)", int(t))
	}
}

// ParseConnectionType returns the ConnectionType named by s (case-insensitive).
func ParseConnectionType(s string) (ConnectionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ftp":
		return FTP, nil
	case "ftps":
		return FTPS, nil
	case "sftp":
		return SFTP, nil
	}
	return 0, NewConfigurationError(fmt.Errorf("unknown connection type %q", s))
}

// Variant is the TLS negotiation mode of an FTPS connection.
type Variant int

const (
	// Explicit upgrades a plaintext control channel with AUTH TLS. It is the default.
	Explicit Variant = iota
	// Implicit wraps the whole session in TLS from the first byte.
	Implicit
)

// String returns "explicit" or "implicit".
func (v Variant) String() string {
	switch v {
	case Explicit:
		return "explicit"
	case Implicit:
		return "implicit"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant returns the Variant named by s. An empty string is Explicit.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "explicit":
		return Explicit, nil
	case "implicit":
		return Implicit, nil
	}
	return 0, NewConfigurationError(fmt.Errorf("unknown tls variant %q", s))
}

// ConnectionMode is the FTP data channel mode.
type ConnectionMode int

const (
	// Passive lets the client open the data connection. It is the default.
	Passive ConnectionMode = iota
	// Active asks the server to connect back to the client.
	Active
)

// String returns "passive" or "active".
func (m ConnectionMode) String() string {
	switch m {
	case Passive:
		return "passive"
	case Active:
		return "active"
	default:
		return fmt.Sprintf("ConnectionMode(%d)", int(m))
	}
}

// ParseConnectionMode returns the ConnectionMode named by s. An empty string is Passive.
func ParseConnectionMode(s string) (ConnectionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "passive":
		return Passive, nil
	case "active":
		return Active, nil
	}
	return 0, NewConfigurationError(fmt.Errorf("unknown connection mode %q", s))
}
