package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/urfave/cli"
	"golang.org/x/net/proxy"

	"github.com/valensas/xfer"
	"github.com/valensas/xfer/backend"
	"github.com/valensas/xfer/backend/ftp"
	"github.com/valensas/xfer/backend/ftps"
	"github.com/valensas/xfer/backend/sftp"
	"github.com/valensas/xfer/options"
	"github.com/valensas/xfer/xfersimple"
)

// settings are the client side knobs that a uri can't carry.
type settings struct {
	password       string
	privateKeyFile string
	passphrase     string
	backoff        string
	strict         string
	knownHostsFile string
	proxy          string
	disableEPSV    bool
}

func settingsFromContext(c *cli.Context) settings {
	return settings{
		password:       c.GlobalString(flagPassword),
		privateKeyFile: c.GlobalString(flagPrivateKeyFile),
		passphrase:     c.GlobalString(flagPassphrase),
		backoff:        c.GlobalString(flagBackoff),
		strict:         c.GlobalString(flagStrict),
		knownHostsFile: c.GlobalString(flagKnownHostsFile),
		proxy:          c.GlobalString(flagProxy),
		disableEPSV:    c.GlobalBool(flagDisableEPSV),
	}
}

// model builds the connection model for uri and applies s on top of it. It returns the uri's path too.
func (s settings) model(uri string, c *cli.Context) (xfer.ConnectionModel, string, error) {
	model, p, err := xfersimple.NewModel(uri)
	if err != nil {
		return xfer.ConnectionModel{}, "", err
	}

	if model.Password == "" {
		model.Password = s.password
	}
	if s.privateKeyFile != "" {
		key, err := os.ReadFile(s.privateKeyFile)
		if err != nil {
			return xfer.ConnectionModel{}, "", xfer.NewConfigurationError(err)
		}
		model.PrivateKey = string(key)
		model.PrivateKeyPassphrase = s.passphrase
	}
	if c != nil && c.GlobalIsSet(flagTimeout) {
		model.ConnectionTimeout = c.GlobalDuration(flagTimeout)
	}
	if s.backoff != "" {
		if model.RetryBackoffDurations, err = xfersimple.ParseBackoff(s.backoff); err != nil {
			return xfer.ConnectionModel{}, "", xfer.NewConfigurationError(err)
		}
	}
	if s.strict != "" {
		model.StrictHostKeyChecking = strings.ToLower(s.strict)
	}

	return model, p, model.Validate()
}

func (s settings) dialer() (proxy.Dialer, error) {
	if s.proxy == "" {
		return nil, nil
	}
	u, err := url.Parse(s.proxy)
	if err != nil {
		return nil, xfer.NewConfigurationError(fmt.Errorf("invalid proxy url: %w", err))
	}
	d, err := proxy.FromURL(u, proxy.Direct)
	if err != nil {
		return nil, xfer.NewConfigurationError(err)
	}
	return d, nil
}

// newClient returns the registered client for the model's type, or one configured with s when s asks for anything
// the defaults don't cover.
func (s settings) newClient(model xfer.ConnectionModel) (xfer.Client, error) {
	d, err := s.dialer()
	if err != nil {
		return nil, err
	}
	if d == nil && s.knownHostsFile == "" && !s.disableEPSV {
		return backend.NewClient(model.ConnectionType, model.Variant)
	}

	switch model.ConnectionType {
	case xfer.SFTP:
		opts := []options.NewClientOption[sftp.Client]{
			sftp.WithOptions(sftp.Options{KnownHostsFile: s.knownHostsFile}),
		}
		if d != nil {
			opts = append(opts, sftp.WithDialer(d))
		}
		return sftp.NewClient(opts...), nil
	case xfer.FTP, xfer.FTPS:
		opts := []options.NewClientOption[ftp.Client]{
			ftp.WithOptions(ftp.Options{DisableEPSV: s.disableEPSV}),
		}
		if d != nil {
			opts = append(opts, ftp.WithDialer(d))
		}
		if model.ConnectionType == xfer.FTPS {
			return ftps.NewClient(model.Variant, opts...), nil
		}
		return ftp.NewClient(opts...), nil
	}
	return backend.NewClient(model.ConnectionType, model.Variant)
}

// connect resolves uri into a connected client. The caller disconnects it.
func (cmd *command) connect(c *cli.Context, uri string) (xfer.Client, string, error) {
	s := settingsFromContext(c)
	model, p, err := s.model(uri, c)
	if err != nil {
		return nil, "", err
	}

	client, err := s.newClient(model)
	if err != nil {
		return nil, "", err
	}

	log := clog.FromContext(cmd.ctx).With("connection", model.String())
	log.DebugContext(cmd.ctx, "connecting", "client", client.Name(), "backoff", model.Backoff())

	result, err := xfer.AuthAndConnect(cmd.ctx, client, model)
	if err != nil {
		return nil, "", err
	}
	if !result.Connected {
		return nil, "", connectionFailed(model, result)
	}
	if result.RetryCount > 0 {
		log.InfoContext(cmd.ctx, "connected", "retries", result.RetryCount)
	}
	return client, p, nil
}

func connectionFailed(model xfer.ConnectionModel, result xfer.ConnectionResult) error {
	errs := make([]error, 0, len(result.Errors))
	for _, e := range result.Errors {
		errs = append(errs, fmt.Errorf("%s (x%d)", e.Description, e.Count))
	}
	return xfer.NewTransportError(fmt.Errorf("unable to connect to %s after %d retries: %w",
		model, result.RetryCount, errors.Join(errs...)))
}
