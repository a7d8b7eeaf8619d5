package main

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wirekit/wirebuf"
	"github.com/wirekit/wirebuf/savedump"
)

var raw bool

func dump(file string) (*savedump.File, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	if fi.Size() < savedump.MinFileLength {
		return nil, errors.Wrapf(savedump.ErrTruncated, "%v is only %d bytes", file, fi.Size())
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, errors.Wrap(err, "cannot map file")
	}
	defer m.Unmap()

	return savedump.Dump(m)
}

func run(cmd *cobra.Command, args []string) error {
	file := args[0]

	d, err := dump(file)
	if err != nil {
		return err
	}

	if raw {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), d.Payload)
		return err
	}

	return savedump.Fprint(cmd.OutOrStdout(), file, d)
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "savedump <file>",
		Short:        "print the contents of a wirebuf save file",
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
		Version:      wirebuf.Version,
	}
	rootCmd.Flags().BoolVar(&raw, "raw", false, "print only the payload as a single hex string")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "savedump", wirebuf.Version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
