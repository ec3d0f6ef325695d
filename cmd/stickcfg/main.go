//go:build !tinygo

// Command stickcfg inspects and edits the host settings file read by the emulator.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"stickv/stickos/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var path string

	root := &cobra.Command{
		Use:          "stickcfg",
		Short:        "show or change stickv settings",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&path, "config", "", "settings file (default $XDG_CONFIG_HOME/stickv/config.toml)")

	resolve := func() string {
		if path != "" {
			return path
		}
		return config.DefaultPath()
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "print the settings file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(out, resolve())
			return err
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "print the effective settings as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.Load(resolve())
			if err != nil {
				return err
			}
			data, err := store.Config().Marshal()
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <setting>",
		Short: "print one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] != "brightness" {
				return fmt.Errorf("unknown setting %q", args[0])
			}
			store, err := config.Load(resolve())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, store.Brightness())
			return err
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <setting> <value>",
		Short: fmt.Sprintf("change one setting (brightness %d..%d)", config.MinBrightness, config.MaxBrightness),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] != "brightness" {
				return fmt.Errorf("unknown setting %q", args[0])
			}
			level, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("brightness %q: not a number", args[1])
			}
			store, err := config.Load(resolve())
			if err != nil {
				return err
			}
			if err := store.SetBrightness(level); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "brightness = %d (%s)\n", level, store.Path())
			return err
		},
	}

	root.AddCommand(pathCmd, showCmd, getCmd, setCmd)
	return root
}
