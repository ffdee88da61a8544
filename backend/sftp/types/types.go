package types

import (
	"io"
	"os"
)

// SFTPClient is the subset of *sftp.Client used by the client, as an interface to make it easier to test.
//
// Close also closes the underlying ssh connection.
type SFTPClient interface {
	ReadDir(path string) ([]os.FileInfo, error)
	Stat(path string) (os.FileInfo, error)
	Open(path string) (io.ReadCloser, error)
	Create(path string) (io.WriteCloser, error)
	Remove(path string) error
	Mkdir(path string) error
	Close() error
}
