package xfer

import (
	"github.com/valensas/xfer/options"
)

const optionNameWaitFunc = "waitFunc"

// WithWaitFunc returns waitFuncOpt implementation of NewClientOption
//
// WithWaitFunc replaces the function used to wait between connection attempts. The default waits on a timer and
// returns early when the context is done.
func WithWaitFunc(fn WaitFunc) options.NewClientOption[Connector] {
	return &waitFuncOpt{
		wait: fn,
	}
}

type waitFuncOpt struct {
	wait WaitFunc
}

func (w *waitFuncOpt) Apply(c *Connector) {
	if w.wait != nil {
		c.wait = w.wait
	}
}

func (w *waitFuncOpt) NewClientOptionName() string {
	return optionNameWaitFunc
}
