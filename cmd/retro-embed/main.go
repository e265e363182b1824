// Command retro-embed prints an Nga memory image as a source code array
// literal.
//
// Usage:
//
//	retro-embed > image.inc
//
// With no flags it reads ./ngaImage as little-endian 32-bit cells.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"retroembed/internal/config"
	"retroembed/internal/embed"
	"retroembed/internal/image"
	"retroembed/internal/logging"
)

const (
	exitOK     = 0
	exitError  = 1
	exitFormat = 2
)

type options struct {
	configPath string
	imagePath  string
	byteOrder  string
	verbose    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "retro-embed",
		Short: "Print an Nga memory image as an array literal",
		Long: `Reads a memory image (a flat file of 32-bit signed cells) and prints
the cell count, then the cells as a bracketed, comma separated list
wrapped at 65 characters.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", config.DefaultPath, "YAML config file (ignored if missing)")
	flags.StringVar(&opts.imagePath, "image", image.DefaultPath, "memory image to read")
	flags.StringVar(&opts.byteOrder, "byte-order", string(image.LittleEndian), "cell byte order: little, big or native")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")

	return cmd
}

func run(cmd *cobra.Command, opts *options, stdout, stderr io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("image") {
		cfg.Image = opts.imagePath
	}
	if flags.Changed("byte-order") {
		cfg.ByteOrder = opts.byteOrder
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(stderr, cfg.Verbose)
	defer func() { _ = logger.Sync() }()

	logger.Debug("configuration",
		zap.String("config", opts.configPath),
		zap.String("image", cfg.Image),
		zap.String("byte_order", cfg.ByteOrder))

	return embed.Run(embed.Config{
		ImagePath:    cfg.Image,
		ByteOrder:    cfg.Order(),
		OutputWriter: stdout,
		Logger:       logger,
	})
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, image.ErrFormat):
		return exitFormat
	default:
		return exitError
	}
}

func main() {
	err := newRootCmd(os.Stdout, os.Stderr).Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "retro-embed: %v\n", err)
	}
	os.Exit(exitCode(err))
}
