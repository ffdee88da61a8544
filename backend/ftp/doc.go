/*
Package ftp - FTP implementation of xfer.Client, also used by the ftps package for FTP over TLS.

# Usage

Rely on github.com/valensas/xfer/backend

	import(
		"github.com/valensas/xfer"
		"github.com/valensas/xfer/backend"
	)

	func UseClient(ctx context.Context, model xfer.ConnectionModel) error {
		client, err := backend.NewClient(xfer.FTP, xfer.Explicit)
		...
	}

Or call directly:

	import "github.com/valensas/xfer/backend/ftp"

	func DoSomething(ctx context.Context) {
		client := ftp.NewClient()

		result, err := xfer.AuthAndConnect(ctx, client, xfer.ConnectionModel{
			ConnectionType: xfer.FTP,
			Host:           "ftp.acme.com",
			Port:           21,
			Username:       "bob",
			Password:       "s3cr3t",
		})
		#handle error
		defer client.Disconnect()

		files, err := client.ListFilesInfo("/some/path")
		#handle error
		...
	}

A Client holds a single control connection, so it can not read and write at the same time: the stream returned by
RetrieveFileStream must be closed before the next call.

# Authentication

The username and password come from the ConnectionModel. An empty username logs in as "anonymous". A 530 reply to
USER/PASS is reported as xfer.ErrAuthentication and is never retried by xfer.AuthAndConnect.

# Data connections

Passive data connections (EPSV, falling back to PASV) are the default. With xfer.Active the server connects back to
the client (EPRT/PORT) for every listing and transfer; those sessions are driven by github.com/secsy/goftp. Active
mode can't be combined with WithDialer: the model is rejected with xfer.ErrConfiguration before anything is dialed.

# Options

Pass Options with WithOptions:

	client := ftp.NewClient(
		ftp.WithOptions(
			ftp.Options{
				DisableEPSV: true,
				DebugWriter: os.Stdout,
				IncludeInsecureCiphers: true,
			},
		),
		ftp.WithDialer(socksDialer),
	)

DebugWriter *io.Writer* - captures FTP command details to any writer.

DisableEPSV bool - Extended Passive mode (EPSV) is attempted by default. Set to true to use regular Passive mode (PASV).

TLSConfig *tls.Config - FTPS only. By default FTPS uses the following TLS configuration, which can be overridden
(recommended) with Options.TLSConfig or WithTLSConfig:

	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: true,
		ClientSessionCache: tls.NewLRUClientSessionCache(0),
		ServerName:         hostname,
	}

IncludeInsecureCiphers bool - If set to true, includes insecure cipher suites in the TLS configuration.
*/
package ftp
