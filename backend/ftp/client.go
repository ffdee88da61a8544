package ftp

import (
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"sync"

	_ftp "github.com/jlaffaye/ftp"
	"golang.org/x/net/proxy"

	"github.com/valensas/xfer"
	"github.com/valensas/xfer/backend"
	"github.com/valensas/xfer/backend/ftp/types"
	"github.com/valensas/xfer/options"
	"github.com/valensas/xfer/utils"
)

const name = "File Transfer Protocol"

var defaultServerConnGetter func(addr string, opts ..._ftp.DialOption) (types.ServerConn, error)

// Client implements xfer.Client for FTP. With WithTLS it speaks FTPS, see the ftps package.
type Client struct {
	mu      sync.Mutex
	conn    types.ServerConn
	options Options
	dialer  proxy.Dialer
	secure  bool
	variant xfer.Variant
}

// NewClient initializer for Client struct. The returned client is not connected.
func NewClient(opts ...options.NewClientOption[Client]) *Client {
	c := &Client{
		options: Options{},
	}

	// apply options
	options.ApplyOptions(c, opts...)

	return c
}

// Name returns "File Transfer Protocol"
func (c *Client) Name() string {
	return name
}

// ConnectionType returns xfer.FTPS when TLS is enabled and xfer.FTP otherwise.
func (c *Client) ConnectionType() xfer.ConnectionType {
	if c.secure {
		return xfer.FTPS
	}
	return xfer.FTP
}

// Variant returns the TLS variant used for FTPS connections.
func (c *Client) Variant() xfer.Variant {
	return c.variant
}

// ConnectToServer dials model.Address(), logs in and switches to binary transfers. A previous session, if any, is
// closed first. An empty username logs in as "anonymous".
//
// In xfer.Active mode the server connects back to the client for every transfer. Active sessions can't use a
// proxy dialer and only honor ctx through model.ConnectionTimeout.
func (c *Client) ConnectToServer(ctx context.Context, model xfer.ConnectionModel) error {
	if err := model.Validate(); err != nil {
		return err
	}
	if model.ConnectionType != c.ConnectionType() {
		return xfer.NewConfigurationError(
			fmt.Errorf("%s client can not connect to a %s server", c.ConnectionType(), model.ConnectionType),
		)
	}
	if c.secure && model.Variant != c.variant {
		return xfer.NewConfigurationError(
			fmt.Errorf("ftps client negotiates %s tls but the model asks for %s tls", c.variant, model.Variant),
		)
	}
	if model.ConnectionMode == xfer.Active && c.dialer != nil {
		return xfer.NewConfigurationError(errActiveProxy)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		_ = c.conn.Quit()
		c.conn = nil
	}

	var conn types.ServerConn
	var err error
	if model.ConnectionMode == xfer.Active {
		conn, err = defaultActiveConnGetter(model.Address(), c.activeConfig(model))
	} else {
		conn, err = defaultServerConnGetter(model.Address(), c.dialOptions(ctx, model)...)
	}
	if err != nil {
		return xfer.NewTransportError(err)
	}

	if err := conn.Login(username(model), model.Password); err != nil {
		_ = conn.Quit()
		return loginError(err)
	}

	if err := conn.Type(_ftp.TransferTypeBinary); err != nil {
		_ = conn.Quit()
		return xfer.NewTransportError(err)
	}

	c.conn = conn
	return nil
}

// IsConnected reports whether a logged in session is held.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// Disconnect sends QUIT and drops the session. It is a no-op on a client that isn't connected.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Quit()
	c.conn = nil
	if err != nil {
		return utils.WrapDisconnectError(err)
	}
	return nil
}

func (c *Client) serverConn() (types.ServerConn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil, xfer.NewTransportError(errNotConnected)
	}
	return c.conn, nil
}

func (c *Client) list(p string) ([]*_ftp.Entry, error) {
	conn, err := c.serverConn()
	if err != nil {
		return nil, err
	}
	entries, err := conn.List(p)
	if err != nil {
		return nil, notFoundError(err)
	}
	return entries, nil
}

// ListFilesInfo maps the name of every regular file at p to its size.
func (c *Client) ListFilesInfo(p string) (map[string]int64, error) {
	entries, err := c.list(p)
	if err != nil {
		return nil, utils.WrapListError(err)
	}

	files := make(map[string]int64)
	for _, entry := range entries {
		if entry.Type == _ftp.EntryTypeFile {
			files[path.Base(entry.Name)] = int64(entry.Size)
		}
	}
	return files, nil
}

// ListDirectoryInfo maps the name of every directory at p to its reported size, skipping "." and "..".
func (c *Client) ListDirectoryInfo(p string) (map[string]int64, error) {
	entries, err := c.list(p)
	if err != nil {
		return nil, utils.WrapListError(err)
	}

	dirs := make(map[string]int64)
	for _, entry := range entries {
		n := path.Base(entry.Name)
		if entry.Type == _ftp.EntryTypeFolder && !utils.IsDotEntry(n) {
			dirs[n] = int64(entry.Size)
		}
	}
	return dirs, nil
}

// ListDirectories returns the directories at p sorted by name, skipping "." and "..".
func (c *Client) ListDirectories(p string) ([]xfer.FileInfo, error) {
	entries, err := c.list(p)
	if err != nil {
		return nil, utils.WrapListError(err)
	}

	var dirs []xfer.FileInfo
	for _, entry := range entries {
		n := path.Base(entry.Name)
		if entry.Type != _ftp.EntryTypeFolder || utils.IsDotEntry(n) {
			continue
		}
		dirs = append(dirs, xfer.FileInfo{
			Name:    n,
			Size:    int64(entry.Size),
			ModTime: entry.Time,
			IsDir:   true,
		})
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name < dirs[j].Name })
	return dirs, nil
}

// RetrieveFileStream opens remoteName for reading. The stream must be closed before the client is used again.
func (c *Client) RetrieveFileStream(remoteName string) (io.ReadCloser, error) {
	conn, err := c.serverConn()
	if err != nil {
		return nil, err
	}

	r, err := conn.Retr(remoteName)
	if err != nil {
		if hasStatus(err, _ftp.StatusFileUnavailable) {
			return nil, utils.WrapRetrieveError(xfer.NewNotFoundError(err))
		}
		return nil, utils.WrapRetrieveError(xfer.NewTransferError(err))
	}
	return &dataConn{r: r}, nil
}

// StoreFile uploads everything read from r to remoteName, replacing it if present.
func (c *Client) StoreFile(remoteName string, r io.Reader) (bool, error) {
	conn, err := c.serverConn()
	if err != nil {
		return false, err
	}

	if err := conn.Stor(remoteName, r); err != nil {
		return false, utils.WrapStoreError(xfer.NewTransferError(err))
	}
	return true, nil
}

// DeleteFile removes remoteName. A 550 reply is reported as xfer.ErrNotFound.
func (c *Client) DeleteFile(remoteName string) (bool, error) {
	conn, err := c.serverConn()
	if err != nil {
		return false, err
	}

	if err := conn.Delete(remoteName); err != nil {
		return false, utils.WrapDeleteError(notFoundError(err))
	}
	return true, nil
}

// MakeDirectory creates each missing segment of p, listing the parent first so existing directories are left
// alone.
func (c *Client) MakeDirectory(p string) error {
	conn, err := c.serverConn()
	if err != nil {
		return err
	}

	for _, segment := range utils.PathSegments(p) {
		exists, err := c.directoryExists(segment)
		if err != nil {
			return utils.WrapMkdirError(err)
		}
		if exists {
			continue
		}
		if err := conn.MakeDir(segment); err != nil {
			return utils.WrapMkdirError(err)
		}
	}
	return nil
}

// directoryExists looks segment up in its parent's listing. A non-directory entry of the same name is a
// configuration error: the path can never be created.
func (c *Client) directoryExists(segment string) (bool, error) {
	entries, err := c.list(path.Dir(segment))
	if err != nil {
		return false, err
	}

	base := path.Base(segment)
	for _, entry := range entries {
		if path.Base(entry.Name) != base {
			continue
		}
		switch entry.Type {
		case _ftp.EntryTypeFolder, _ftp.EntryTypeLink:
			return true, nil
		default:
			return false, xfer.NewConfigurationError(fmt.Errorf("%s exists and is not a directory", segment))
		}
	}
	return false, nil
}

func init() {
	defaultServerConnGetter = dialServerConn
	defaultActiveConnGetter = newActiveConn

	// registers a default client constructor
	backend.Register(xfer.FTP, func(xfer.Variant) xfer.Client {
		return NewClient()
	})
}

var _ xfer.Client = (*Client)(nil)
