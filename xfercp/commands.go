package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/valensas/xfer"
	"github.com/valensas/xfer/backend"
)

var (
	errArgs = errors.New("wrong number of arguments")

	dirColor  = color.New(color.FgBlue, color.Bold)
	doneColor = color.New(color.FgGreen)
)

func checkArgs(c *cli.Context, minimum, maximum int) error {
	if n := c.NArg(); n < minimum || n > maximum {
		return fmt.Errorf("%w: %s %s", errArgs, c.Command.Name, c.Command.ArgsUsage)
	}
	for _, a := range c.Args() {
		if a == "" {
			return fmt.Errorf("%w: %s requires non-empty arguments", errArgs, c.Command.Name)
		}
	}
	return nil
}

func (cmd *command) put(c *cli.Context) error {
	if err := checkArgs(c, 2, 2); err != nil {
		return err
	}
	local := c.Args().Get(0)

	f, err := os.Open(local)
	if err != nil {
		return err
	}
	defer f.Close()

	client, remote, err := cmd.connect(c, c.Args().Get(1))
	if err != nil {
		return err
	}
	defer disconnect(cmd, client)

	if strings.HasSuffix(remote, "/") {
		remote = path.Join(remote, filepath.Base(local))
	}

	clog.FromContext(cmd.ctx).DebugContext(cmd.ctx, "uploading", "local", local, "remote", remote)
	if err := backend.Upload(client, remote, f); err != nil {
		return err
	}
	doneColor.Fprintf(cmd.out, "copied %s to %s\n", local, remote)
	return nil
}

func (cmd *command) get(c *cli.Context) error {
	if err := checkArgs(c, 1, 2); err != nil {
		return err
	}

	client, remote, err := cmd.connect(c, c.Args().Get(0))
	if err != nil {
		return err
	}
	defer disconnect(cmd, client)

	local := c.Args().Get(1)
	if local == "" {
		local = path.Base(remote)
	}

	var w io.Writer = cmd.out
	if local != "-" {
		f, err := os.Create(local)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	n, err := backend.Download(client, remote, w)
	if err != nil {
		if local != "-" {
			_ = os.Remove(local)
		}
		return err
	}
	if local != "-" {
		doneColor.Fprintf(cmd.out, "copied %s to %s (%d bytes)\n", remote, local, n)
	}
	return nil
}

func (cmd *command) ls(c *cli.Context) error {
	if err := checkArgs(c, 1, 1); err != nil {
		return err
	}

	client, remote, err := cmd.connect(c, c.Args().Get(0))
	if err != nil {
		return err
	}
	defer disconnect(cmd, client)

	dirs, err := client.ListDirectories(remote)
	if err != nil {
		return err
	}
	files, err := client.ListFilesInfo(remote)
	if err != nil {
		return err
	}

	for _, d := range dirs {
		dirColor.Fprintf(cmd.out, "%s/", d.Name)
		fmt.Fprintf(cmd.out, "\t%s\n", d.ModTime.Format("2006-01-02 15:04"))
	}
	for _, name := range slices.Sorted(maps.Keys(files)) {
		fmt.Fprintf(cmd.out, "%s\t%d\n", name, files[name])
	}
	return nil
}

func (cmd *command) mkdir(c *cli.Context) error {
	if err := checkArgs(c, 1, 1); err != nil {
		return err
	}

	client, remote, err := cmd.connect(c, c.Args().Get(0))
	if err != nil {
		return err
	}
	defer disconnect(cmd, client)

	if err := client.MakeDirectory(remote); err != nil {
		return err
	}
	doneColor.Fprintf(cmd.out, "created %s\n", remote)
	return nil
}

func (cmd *command) rm(c *cli.Context) error {
	if err := checkArgs(c, 1, 1); err != nil {
		return err
	}

	client, remote, err := cmd.connect(c, c.Args().Get(0))
	if err != nil {
		return err
	}
	defer disconnect(cmd, client)

	if _, err := client.DeleteFile(remote); err != nil {
		return err
	}
	doneColor.Fprintf(cmd.out, "deleted %s\n", remote)
	return nil
}

func disconnect(cmd *command, client xfer.Client) {
	if err := client.Disconnect(); err != nil {
		clog.FromContext(cmd.ctx).WarnContext(cmd.ctx, "disconnect failed", "error", err)
	}
}
