/*
Package ftps - FTP over TLS implementation of xfer.Client.

A Client is an ftp.Client with TLS turned on. The Variant given to NewClient picks how TLS is negotiated:

  - xfer.Explicit - connect in plain text on the control port (usually 21) and upgrade with AUTH TLS.
  - xfer.Implicit - the whole session is TLS from the first byte (usually port 990).

Failures to connect or disconnect are logged at error level through the clog logger found on the context passed to
ConnectToServer, then returned unchanged.

	client := ftps.NewClient(xfer.Implicit,
		ftp.WithTLSConfig(&tls.Config{RootCAs: pool}),
	)
	result, err := xfer.AuthAndConnect(ctx, client, model)
*/
package ftps
