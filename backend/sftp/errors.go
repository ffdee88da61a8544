package sftp

import (
	"errors"
	"os"
	"strings"

	_sftp "github.com/pkg/sftp"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/valensas/xfer"
)

type sftpErr string

func (e sftpErr) Error() string {
	return string(e)
}

const (
	errNotConnected    = sftpErr("sftp client is not connected")
	errParsePrivateKey = sftpErr("unable to parse private key")
	errNoKnownHosts    = sftpErr("strict host key checking requires a known_hosts file, none was found")
)

const unableToAuthenticate = "unable to authenticate"

// connectError classifies a failure to set up the ssh session. The ssh package only reports rejected credentials
// as text, so the check is on the message.
func connectError(err error) error {
	var keyErr *knownhosts.KeyError
	switch {
	case errors.As(err, &keyErr):
		return xfer.NewConfigurationError(err)
	case strings.Contains(err.Error(), unableToAuthenticate):
		return xfer.NewAuthenticationError(err)
	default:
		return xfer.NewTransportError(err)
	}
}

func isNotExist(err error) bool {
	if errors.Is(err, os.ErrNotExist) {
		return true
	}
	var status *_sftp.StatusError
	return errors.As(err, &status) && status.FxCode() == _sftp.ErrSSHFxNoSuchFile
}

// notFoundError marks missing paths with xfer.ErrNotFound and leaves other errors untouched.
func notFoundError(err error) error {
	if isNotExist(err) {
		return xfer.NewNotFoundError(err)
	}
	return err
}
