package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	argon2 "github.com/opd-ai/go-argon2"
)

func newVerifyCmd(in io.Reader, out io.Writer) *cobra.Command {
	var variantOverride string

	cmd := &cobra.Command{
		Use:   "verify <encoded-hash>",
		Short: "Verify a password read from stdin against an encoded hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(in, out, args[0], variantOverride)
		},
	}

	cmd.Flags().StringVarP(&variantOverride, "variant", "y", "",
		"recompute with this variant instead of the one in the hash")

	return cmd
}

func runVerify(in io.Reader, out io.Writer, encoded, variantOverride string) error {
	password, err := readPassword(in)
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}

	if variantOverride != "" {
		variant, err := parseVariantFlag(variantOverride)
		if err != nil {
			return err
		}
		err = argon2.VerifyWithVariant(password, encoded, variant)
		if err != nil {
			return err
		}
	} else if err := argon2.Verify(password, encoded); err != nil {
		return err
	}

	fmt.Fprintln(out, "OK")
	return nil
}
