package sftp

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"golang.org/x/crypto/ssh"
	"golang.org/x/net/proxy"

	"github.com/valensas/xfer"
	"github.com/valensas/xfer/backend"
	"github.com/valensas/xfer/backend/sftp/types"
	"github.com/valensas/xfer/options"
	"github.com/valensas/xfer/utils"
)

const name = "Secure File Transfer Protocol"

var defaultClientGetter func(ctx context.Context, addr string, config *ssh.ClientConfig, dialer proxy.Dialer) (types.SFTPClient, error)

// Client implements xfer.Client for SFTP.
type Client struct {
	mu      sync.Mutex
	conn    types.SFTPClient
	options Options
	dialer  proxy.Dialer
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

// Name returns "Secure File Transfer Protocol"
func (c *Client) Name() string {
	return name
}

// ConnectionType returns xfer.SFTP
func (c *Client) ConnectionType() xfer.ConnectionType {
	return xfer.SFTP
}

// ConnectToServer dials model.Address(), authenticates with the model's private key and/or password and opens
// the sftp subsystem. A previous session, if any, is closed first.
//
// Host keys are only verified when model.StrictHostKeyChecking is "yes". See Options for how known hosts are
// found.
func (c *Client) ConnectToServer(ctx context.Context, model xfer.ConnectionModel) error {
	if err := model.Validate(); err != nil {
		return err
	}
	if model.ConnectionType != xfer.SFTP {
		return xfer.NewConfigurationError(
			fmt.Errorf("%s client can not connect to a %s server", xfer.SFTP, model.ConnectionType),
		)
	}

	config, err := c.clientConfig(model)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}

	conn, err := defaultClientGetter(ctx, model.Address(), config, c.dialer)
	if err != nil {
		return connectError(err)
	}

	c.conn = conn
	return nil
}

// IsConnected reports whether an sftp session is held.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// Disconnect closes the sftp session and the ssh connection. It is a no-op on a client that isn't connected.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	if err != nil {
		return utils.WrapDisconnectError(err)
	}
	return nil
}

func (c *Client) sftpClient() (types.SFTPClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil, xfer.NewTransportError(errNotConnected)
	}
	return c.conn, nil
}

func (c *Client) readDir(p string) ([]os.FileInfo, error) {
	conn, err := c.sftpClient()
	if err != nil {
		return nil, err
	}
	entries, err := conn.ReadDir(p)
	if err != nil {
		return nil, notFoundError(err)
	}
	return entries, nil
}

// ListFilesInfo maps the name of every regular file at p to its size.
func (c *Client) ListFilesInfo(p string) (map[string]int64, error) {
	entries, err := c.readDir(p)
	if err != nil {
		return nil, utils.WrapListError(err)
	}

	files := make(map[string]int64)
	for _, entry := range entries {
		if entry.Mode().IsRegular() {
			files[entry.Name()] = entry.Size()
		}
	}
	return files, nil
}

// ListDirectoryInfo maps the name of every directory at p to its reported size, skipping "." and "..".
func (c *Client) ListDirectoryInfo(p string) (map[string]int64, error) {
	entries, err := c.readDir(p)
	if err != nil {
		return nil, utils.WrapListError(err)
	}

	dirs := make(map[string]int64)
	for _, entry := range entries {
		if entry.IsDir() && !utils.IsDotEntry(entry.Name()) {
			dirs[entry.Name()] = entry.Size()
		}
	}
	return dirs, nil
}

// ListDirectories returns the directories at p sorted by name, skipping "." and "..".
func (c *Client) ListDirectories(p string) ([]xfer.FileInfo, error) {
	entries, err := c.readDir(p)
	if err != nil {
		return nil, utils.WrapListError(err)
	}

	var dirs []xfer.FileInfo
	for _, entry := range entries {
		if !entry.IsDir() || utils.IsDotEntry(entry.Name()) {
			continue
		}
		dirs = append(dirs, xfer.FileInfo{
			Name:    entry.Name(),
			Size:    entry.Size(),
			ModTime: entry.ModTime(),
			IsDir:   true,
		})
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name < dirs[j].Name })
	return dirs, nil
}

// RetrieveFileStream opens remoteName for reading.
func (c *Client) RetrieveFileStream(remoteName string) (io.ReadCloser, error) {
	conn, err := c.sftpClient()
	if err != nil {
		return nil, err
	}

	r, err := conn.Open(remoteName)
	if err != nil {
		if isNotExist(err) {
			return nil, utils.WrapRetrieveError(xfer.NewNotFoundError(err))
		}
		return nil, utils.WrapRetrieveError(xfer.NewTransferError(err))
	}
	return r, nil
}

// StoreFile uploads everything read from r to remoteName, replacing it if present.
func (c *Client) StoreFile(remoteName string, r io.Reader) (bool, error) {
	conn, err := c.sftpClient()
	if err != nil {
		return false, err
	}

	w, err := conn.Create(remoteName)
	if err != nil {
		return false, utils.WrapStoreError(xfer.NewTransferError(err))
	}

	if _, err := utils.TouchCopyBuffered(w, r, 0); err != nil {
		_ = w.Close()
		return false, utils.WrapStoreError(xfer.NewTransferError(err))
	}
	if err := w.Close(); err != nil {
		return false, utils.WrapStoreError(xfer.NewTransferError(err))
	}
	return true, nil
}

// DeleteFile removes remoteName. A missing file is reported as xfer.ErrNotFound.
func (c *Client) DeleteFile(remoteName string) (bool, error) {
	conn, err := c.sftpClient()
	if err != nil {
		return false, err
	}

	if err := conn.Remove(remoteName); err != nil {
		return false, utils.WrapDeleteError(notFoundError(err))
	}
	return true, nil
}

// MakeDirectory creates each missing segment of p. Existing directories are left alone.
func (c *Client) MakeDirectory(p string) error {
	conn, err := c.sftpClient()
	if err != nil {
		return err
	}

	for _, segment := range utils.PathSegments(p) {
		info, err := conn.Stat(segment)
		switch {
		case err == nil && info.IsDir():
			continue
		case err == nil:
			return utils.WrapMkdirError(
				xfer.NewConfigurationError(fmt.Errorf("%s exists and is not a directory", segment)),
			)
		case !isNotExist(err):
			return utils.WrapMkdirError(err)
		}

		if err := conn.Mkdir(segment); err != nil {
			return utils.WrapMkdirError(err)
		}
	}
	return nil
}

func init() {
	defaultClientGetter = dialSFTP

	// registers a default client constructor
	backend.Register(xfer.SFTP, func(xfer.Variant) xfer.Client {
		return NewClient()
	})
}

var _ xfer.Client = (*Client)(nil)
