/*
Package backend provides a means of allowing xfer clients to self-register on load via an init() call to
backend.Register(xfer.FTP, constructor).

In this way, a caller can simply load the client implementations (and ONLY those needed) and build clients from a
ConnectionModel:

	package main

	// import backend and each client you intend to use
	import (
		"github.com/valensas/xfer"
		"github.com/valensas/xfer/backend"
		_ "github.com/valensas/xfer/backend/ftps"
		_ "github.com/valensas/xfer/backend/sftp"
	)

	func main() {
		client, result, err := backend.Connect(ctx, model)
		if err != nil {
			panic(err)
		}
		if !result.Connected {
			panic(fmt.Sprintf("gave up after %d retries: %v", result.RetryCount, result.Errors))
		}
		defer client.Disconnect()

		err = backend.Upload(client, "/inbox/report.csv", f)
		...
	}

Import github.com/valensas/xfer/backend/all to register every implementation at once.

NewClient does no I/O. Asking it for a connection type nobody registered is the only way it fails, with an error
matching xfer.ErrConfiguration.

Development

To add a client, implement xfer.Client and register a constructor on load:

	func init() {
		backend.Register(xfer.FTP, func(xfer.Variant) xfer.Client {
			return NewClient()
		})
	}

Then run the testsuite package against it.
*/
package backend
