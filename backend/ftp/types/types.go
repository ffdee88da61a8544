package types

import (
	"io"

	_ftp "github.com/jlaffaye/ftp"
)

// ServerConn is the subset of *ftp.ServerConn used by the client, as an interface to make it easier to test.
//
// Retr returns the data channel as a plain io.ReadCloser so fakes don't have to build an *ftp.Response.
type ServerConn interface {
	Login(user, password string) error
	Type(transferType _ftp.TransferType) error
	List(path string) ([]*_ftp.Entry, error)
	Retr(path string) (io.ReadCloser, error)
	Stor(path string, r io.Reader) error
	Delete(path string) error
	MakeDir(path string) error
	Quit() error
}
