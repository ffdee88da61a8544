package ftp

import (
	"io"
	"os"
	"sync"

	_ftp "github.com/jlaffaye/ftp"
	"github.com/secsy/goftp"

	"github.com/valensas/xfer/backend/ftp/types"
)

var defaultActiveConnGetter func(addr string, config goftp.Config) (types.ServerConn, error)

// activeConn adapts *goftp.Client to types.ServerConn. The server opens the data connections back to the client
// (PORT/EPRT). Nothing is dialed until Login.
type activeConn struct {
	addr   string
	config goftp.Config
	client *goftp.Client
}

func newActiveConn(addr string, config goftp.Config) (types.ServerConn, error) {
	config.ActiveTransfers = true
	return &activeConn{addr: addr, config: config}, nil
}

// Login dials the server and opens a first, logged in, control connection. goftp is lazy otherwise and a wrong
// password would only surface on the first command.
func (c *activeConn) Login(user, password string) error {
	config := c.config
	config.User = user
	config.Password = password

	client, err := goftp.DialConfig(config, c.addr)
	if err != nil {
		return err
	}

	raw, err := client.OpenRawConn()
	if err != nil {
		_ = client.Close()
		return err
	}
	_ = raw.Close()

	c.client = client
	return nil
}

// Type is a no-op: goftp always transfers in binary mode.
func (c *activeConn) Type(_ftp.TransferType) error {
	return nil
}

func (c *activeConn) List(p string) ([]*_ftp.Entry, error) {
	infos, err := c.client.ReadDir(p)
	if err != nil {
		return nil, err
	}

	entries := make([]*_ftp.Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, entry(info))
	}
	return entries, nil
}

func entry(info os.FileInfo) *_ftp.Entry {
	e := &_ftp.Entry{
		Name: info.Name(),
		Size: uint64(info.Size()), //nolint:gosec
		Time: info.ModTime(),
		Type: _ftp.EntryTypeFile,
	}
	switch {
	case info.IsDir():
		e.Type = _ftp.EntryTypeFolder
	case info.Mode()&os.ModeSymlink != 0:
		e.Type = _ftp.EntryTypeLink
	}
	return e
}

// Retr streams path through a pipe. It returns once the first byte arrived or the transfer ended, so a missing
// file is reported here and not on the first Read.
func (c *activeConn) Retr(p string) (io.ReadCloser, error) {
	pr, pw := io.Pipe()
	w := &startWriter{w: pw, started: make(chan struct{})}
	done := make(chan error, 1)

	go func() {
		err := c.client.Retrieve(p, w)
		_ = pw.CloseWithError(err)
		done <- err
	}()

	select {
	case <-w.started:
		return pr, nil
	case err := <-done:
		if err != nil {
			_ = pr.Close()
			return nil, err
		}
		return pr, nil
	}
}

func (c *activeConn) Stor(p string, r io.Reader) error {
	return c.client.Store(p, r)
}

func (c *activeConn) Delete(p string) error {
	return c.client.Delete(p)
}

func (c *activeConn) MakeDir(p string) error {
	_, err := c.client.Mkdir(p)
	return err
}

// Quit closes every pooled control connection.
func (c *activeConn) Quit() error {
	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	return err
}

// startWriter closes started on the first Write.
type startWriter struct {
	w       io.Writer
	once    sync.Once
	started chan struct{}
}

func (w *startWriter) Write(p []byte) (int, error) {
	w.once.Do(func() { close(w.started) })
	return w.w.Write(p)
}
