package ftp

import (
	"errors"
	"io"

	_ftp "github.com/jlaffaye/ftp"

	"github.com/valensas/xfer"
	"github.com/valensas/xfer/backend/ftp/types"
)

// serverConn adapts *ftp.ServerConn to types.ServerConn.
type serverConn struct {
	*_ftp.ServerConn
}

// Retr opens a data connection for path. The caller must close the returned reader before issuing another command.
func (c *serverConn) Retr(path string) (io.ReadCloser, error) {
	resp, err := c.ServerConn.Retr(path)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func dialServerConn(addr string, opts ..._ftp.DialOption) (types.ServerConn, error) {
	c, err := _ftp.Dial(addr, opts...)
	if err != nil {
		return nil, err
	}
	return &serverConn{ServerConn: c}, nil
}

// dataConn is the stream handed out by RetrieveFileStream. Read faults are reported as xfer.ErrTransfer and Close
// may be called more than once.
type dataConn struct {
	r      io.ReadCloser
	closed bool
}

func (dc *dataConn) Read(buf []byte) (int, error) {
	if dc.closed {
		return 0, errDataConnClosed
	}
	n, err := dc.r.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, xfer.NewTransferError(err)
	}
	return n, err
}

func (dc *dataConn) Close() error {
	if dc.closed {
		return nil
	}
	dc.closed = true
	if err := dc.r.Close(); err != nil {
		return xfer.NewTransferError(err)
	}
	return nil
}
