package ftp

import (
	"errors"
	"net/textproto"
	"strconv"
	"strings"

	_ftp "github.com/jlaffaye/ftp"
	"github.com/secsy/goftp"

	"github.com/valensas/xfer"
)

type ftpErr string

func (e ftpErr) Error() string { return string(e) }

const (
	errNotConnected   = ftpErr("ftp client is not connected")
	errDataConnClosed = ftpErr("data connection is closed")
	errActiveProxy    = ftpErr("active data connections can not be routed through a proxy dialer")
)

// hasStatus reports whether err is a server reply carrying code.
func hasStatus(err error, code int) bool {
	if err == nil {
		return false
	}
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		return tpErr.Code == code
	}
	var activeErr goftp.Error
	if errors.As(err, &activeErr) {
		return activeErr.Code() == code
	}
	return strings.HasPrefix(err.Error(), strconv.Itoa(code))
}

// loginError classifies a Login failure. A 530 reply is a credential rejection, anything else happened on the wire.
func loginError(err error) error {
	if hasStatus(err, _ftp.StatusNotLoggedIn) {
		return xfer.NewAuthenticationError(err)
	}
	return xfer.NewTransportError(err)
}

// notFoundError marks a 550 reply as xfer.ErrNotFound and returns any other error unchanged.
func notFoundError(err error) error {
	if hasStatus(err, _ftp.StatusFileUnavailable) {
		return xfer.NewNotFoundError(err)
	}
	return err
}
