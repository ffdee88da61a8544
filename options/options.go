// Package options holds the generic functional option plumbing shared by the connector and every backend client.
package options

// NewClientOption interface contains functions that should be implemented by any option used to configure a
// client (or connector) of type T at construction time.
// Example:
// ```
//
//	type timeoutOpt struct{ d time.Duration }
//	func (o *timeoutOpt) Apply(c *Client) {
//		c.timeout = o.d
//	}
//	func (o *timeoutOpt) NewClientOptionName() string {
//		return "timeout"
//	}
//
// ```
type NewClientOption[T any] interface {
	// Apply applies the option to the value under construction.
	Apply(*T)

	// NewClientOptionName returns the name of the option.
	NewClientOptionName() string
}

// ApplyOptions applies opts, in order, to t. Nil options are skipped.
func ApplyOptions[T any](t *T, opts ...NewClientOption[T]) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.Apply(t)
	}
}
