package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	argon2 "github.com/opd-ai/go-argon2"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	in := strings.NewReader(stdin)
	var out bytes.Buffer

	cmd := newRootCmd(in, &out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestHashCmd_ReferenceVector(t *testing.T) {
	out, err := runCommand(t, "password\n",
		"hash", "somesalt", "-y", "id", "-t", "2", "-m", "65536", "-p", "1", "--encoded")
	require.NoError(t, err)

	assert.Equal(t,
		"$argon2id$v=19$m=65536,t=2,p=1$c29tZXNhbHQ$CTFhFdXPJO1aFaMaO6Mm5c8y7cJHAph8ArZWb2GRPPc\n",
		out)
}

func TestHashCmd_DefaultOutputHasBothForms(t *testing.T) {
	out, err := runCommand(t, "password",
		"hash", "somesalt", "-t", "1", "-m", "64", "-p", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Hash:")
	assert.Contains(t, out, "Encoded:\t$argon2id$v=19$m=64,t=1,p=1$")
}

func TestHashThenVerifyCmd(t *testing.T) {
	out, err := runCommand(t, "hunter2",
		"hash", "somesalt", "-y", "i", "-t", "1", "-m", "64", "-p", "1", "--encoded")
	require.NoError(t, err)
	encoded := strings.TrimSpace(out)

	out, err = runCommand(t, "hunter2", "verify", encoded)
	require.NoError(t, err)
	assert.Equal(t, "OK\n", out)

	_, err = runCommand(t, "wrong password", "verify", encoded)
	require.Error(t, err)
	assert.ErrorIs(t, err, argon2.ErrMismatchedHashAndPassword)
}

func TestVerifyCmd_MalformedHash(t *testing.T) {
	_, err := runCommand(t, "password", "verify", "$argon2id$v=19$broken")
	require.Error(t, err)
	assert.ErrorIs(t, err, argon2.ErrInvalidHash)
}

func TestHashCmd_RandomSaltWhenOmitted(t *testing.T) {
	first, err := runCommand(t, "password",
		"hash", "-t", "1", "-m", "64", "-p", "1", "--encoded")
	require.NoError(t, err)

	second, err := runCommand(t, "password",
		"hash", "-t", "1", "-m", "64", "-p", "1", "--encoded")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "random salts must differ between runs")
}

func TestHashCmd_RejectsBadParams(t *testing.T) {
	_, err := runCommand(t, "password",
		"hash", "somesalt", "-t", "0", "-m", "64", "-p", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, argon2.ErrTimeTooSmall)

	_, err = runCommand(t, "password",
		"hash", "somesalt", "-y", "argon3")
	require.Error(t, err)
	assert.ErrorIs(t, err, argon2.ErrUnknownVariant)
}

func TestHashCmd_ExclusiveOutputFlags(t *testing.T) {
	_, err := runCommand(t, "password",
		"hash", "somesalt", "--encoded", "--hex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestReadPassword_TrailingNewline(t *testing.T) {
	for input, want := range map[string]string{
		"password\n":   "password",
		"password\r\n": "password",
		"password":     "password",
		"pass\nword":   "pass\nword",
		"\n":           "",
		"":             "",
	} {
		got, err := readPassword(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, want, string(got), "input %q", input)
	}
}
