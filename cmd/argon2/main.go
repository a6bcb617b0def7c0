// Command argon2 hashes and verifies passwords with the Argon2 key
// derivation function, mirroring the reference distribution's CLI.
//
// The password is read from stdin so it never appears in the process
// argument list:
//
//	echo -n "password" | argon2 hash somesalt -m 65536 -t 2 -p 1
//	echo -n "password" | argon2 verify '$argon2id$v=19$m=65536,...'
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "argon2",
		Short: "Argon2 password hashing and verification",
		Long: "Hashes and verifies passwords with the Argon2 key derivation function\n" +
			"(Argon2d, Argon2i, Argon2id). The password is always read from stdin.",
		SilenceUsage: true,
	}
	cmd.SetIn(in)
	cmd.SetOut(out)

	cmd.AddCommand(newHashCmd(in, out))
	cmd.AddCommand(newVerifyCmd(in, out))
	return cmd
}

// readPassword consumes stdin and strips a single trailing newline, so
// both `echo password |` and `printf '%s' password |` behave the same.
func readPassword(in io.Reader) ([]byte, error) {
	password, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	if n := len(password); n > 0 && password[n-1] == '\n' {
		password = password[:n-1]
		if n := len(password); n > 0 && password[n-1] == '\r' {
			password = password[:n-1]
		}
	}
	return password, nil
}
