package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	argon2 "github.com/opd-ai/go-argon2"
)

type hashOptions struct {
	variant     string
	timeCost    uint32
	memoryKiB   uint32
	parallelism uint32
	length      uint32
	encodedOnly bool
	hexOnly     bool
}

func newHashCmd(in io.Reader, out io.Writer) *cobra.Command {
	opts := &hashOptions{}

	cmd := &cobra.Command{
		Use:   "hash [salt]",
		Short: "Hash a password read from stdin",
		Long: "Reads a password from stdin and prints its Argon2 hash.\n" +
			"The salt argument is used verbatim; without it a random 16-byte\n" +
			"salt is generated.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var salt []byte
			if len(args) == 1 {
				salt = []byte(args[0])
			}
			return runHash(in, out, salt, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.variant, "variant", "y", "id", "variant: d, i or id")
	flags.Uint32VarP(&opts.timeCost, "time", "t", 3, "number of passes over memory")
	flags.Uint32VarP(&opts.memoryKiB, "memory", "m", 64*1024, "memory cost in KiB")
	flags.Uint32VarP(&opts.parallelism, "parallelism", "p", 4, "number of lanes")
	flags.Uint32VarP(&opts.length, "length", "l", 32, "digest length in bytes")
	flags.BoolVarP(&opts.encodedOnly, "encoded", "e", false, "print only the encoded hash")
	flags.BoolVarP(&opts.hexOnly, "hex", "x", false, "print only the hex digest")

	return cmd
}

func runHash(in io.Reader, out io.Writer, salt []byte, opts *hashOptions) error {
	if opts.encodedOnly && opts.hexOnly {
		return fmt.Errorf("--encoded and --hex are mutually exclusive")
	}

	variant, err := parseVariantFlag(opts.variant)
	if err != nil {
		return err
	}

	password, err := readPassword(in)
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}

	result, err := argon2.Hash(password, salt, argon2.Params{
		TimeCost:     opts.timeCost,
		MemoryKiB:    opts.memoryKiB,
		Parallelism:  opts.parallelism,
		OutputLength: opts.length,
		Variant:      variant,
	})
	if err != nil {
		return err
	}

	switch {
	case opts.encodedOnly:
		fmt.Fprintln(out, result.Encoded)
	case opts.hexOnly:
		fmt.Fprintln(out, result.Hex)
	default:
		fmt.Fprintf(out, "Hash:\t\t%s\n", result.Hex)
		fmt.Fprintf(out, "Encoded:\t%s\n", result.Encoded)
	}
	return nil
}

// parseVariantFlag accepts both the short CLI spellings (d, i, id) and
// the full tags (argon2d, argon2i, argon2id).
func parseVariantFlag(s string) (argon2.Variant, error) {
	switch s {
	case "d":
		return argon2.Argon2d, nil
	case "i":
		return argon2.Argon2i, nil
	case "id":
		return argon2.Argon2id, nil
	}
	return argon2.ParseVariant(s)
}
