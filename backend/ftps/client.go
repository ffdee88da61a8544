package ftps

import (
	"context"
	"sync"

	"github.com/chainguard-dev/clog"

	"github.com/valensas/xfer"
	"github.com/valensas/xfer/backend"
	"github.com/valensas/xfer/backend/ftp"
	"github.com/valensas/xfer/options"
)

const name = "File Transfer Protocol over TLS"

// Client implements xfer.Client for FTPS by wrapping an ftp.Client.
type Client struct {
	*ftp.Client

	mu         sync.Mutex
	log        *clog.Logger
	connection string
}

// NewClient initializer for Client struct. opts are ftp.Client options, ie: ftp.WithTLSConfig or ftp.WithDialer.
func NewClient(variant xfer.Variant, opts ...options.NewClientOption[ftp.Client]) *Client {
	all := make([]options.NewClientOption[ftp.Client], 0, len(opts)+1)
	all = append(all, ftp.WithTLS(variant))
	all = append(all, opts...)

	return &Client{
		Client: ftp.NewClient(all...),
	}
}

// Name returns "File Transfer Protocol over TLS"
func (c *Client) Name() string {
	return name
}

// ConnectToServer connects and logs in over TLS. Errors are logged before being returned.
func (c *Client) ConnectToServer(ctx context.Context, model xfer.ConnectionModel) error {
	log := clog.FromContext(ctx).With("connection", model.String(), "variant", c.Variant().String())

	c.mu.Lock()
	c.log = log
	c.connection = model.String()
	c.mu.Unlock()

	if err := c.Client.ConnectToServer(ctx, model); err != nil {
		log.ErrorContext(ctx, "an error occurred while connecting to ftps server", "error", err)
		return err
	}
	return nil
}

// Disconnect closes the session. Errors are logged before being returned.
func (c *Client) Disconnect() error {
	if err := c.Client.Disconnect(); err != nil {
		c.logger().Error("an error occurred while disconnecting from ftps server", "error", err)
		return err
	}
	return nil
}

func (c *Client) logger() *clog.Logger {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.log == nil {
		return clog.FromContext(context.Background())
	}
	return c.log
}

func init() {
	// registers a default client constructor
	backend.Register(xfer.FTPS, func(v xfer.Variant) xfer.Client {
		return NewClient(v)
	})
}

var _ xfer.Client = (*Client)(nil)
