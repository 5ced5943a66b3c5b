package cli

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultpass/pwgen-go/internal/crypto"
)

func runForTest(args ...string) (stdout, stderr string, code int) {
	var out, errOut bytes.Buffer
	code = Run(append([]string{"pwgen"}, args...), &out, &errOut)
	return out.String(), errOut.String(), code
}

// parseOutput extracts the password and the reported length line.
func parseOutput(t *testing.T, stdout string) (password, lengthLine string) {
	t.Helper()

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 2, "expected two lines of output, got %q", stdout)

	password, found := strings.CutPrefix(lines[0], "Generated password: ")
	require.True(t, found, "unexpected first line %q", lines[0])
	return password, lines[1]
}

func TestRun_Lengths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "no flags", args: nil, want: 12},
		{name: "short flag", args: []string{"-l", "16"}, want: 16},
		{name: "long flag", args: []string{"--length", "8"}, want: 8},
		{name: "boundary", args: []string{"-l", "4"}, want: 4},
		{name: "equals form", args: []string{"--length=20"}, want: 20},
		{name: "debug flag", args: []string{"--debug", "-l", "6"}, want: 6},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, code := runForTest(tt.args...)
			require.Equal(t, 0, code)

			password, lengthLine := parseOutput(t, stdout)
			assert.Len(t, password, tt.want)
			assert.Equal(t, "Length: "+strconv.Itoa(tt.want)+" characters", lengthLine)
			for _, ch := range password {
				assert.True(t, strings.ContainsRune(crypto.Alphabet, ch), "unexpected character %q", ch)
			}
		})
	}
}

func TestRun_LengthTooShort(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"3", "0", "-1"} {
		stdout, stderr, code := runForTest("-l", arg)

		assert.Equal(t, 1, code, "length %s", arg)
		assert.Empty(t, stdout, "no password may be printed for length %s", arg)
		assert.True(t, strings.HasPrefix(stderr, "Error: "), "stderr %q", stderr)
		assert.Contains(t, stderr, "at least 4")
	}
}

func TestRun_InvalidNumber(t *testing.T) {
	t.Parallel()

	stdout, stderr, code := runForTest("-l", "abc")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, "Unexpected error: "), "stderr %q", stderr)
}

func TestRun_StrayArguments(t *testing.T) {
	t.Parallel()

	tests := [][]string{
		{"16"},
		{"-l", "5", "junk"},
		{"help"},
	}

	for _, args := range tests {
		stdout, stderr, code := runForTest(args...)

		assert.Equal(t, 1, code, "args %q", args)
		assert.Empty(t, stdout, "no password may be printed for args %q", args)
		assert.True(t, strings.HasPrefix(stderr, "Unexpected error: "), "stderr %q", stderr)
		assert.Contains(t, stderr, "unexpected arguments: "+args[len(args)-1])
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	t.Parallel()

	stdout, stderr, code := runForTest("--this-is-not-a-valid-flag")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Unexpected error: ")
	assert.Contains(t, stderr, "flag provided but not defined")
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"-h", "--help"} {
		stdout, stderr, code := runForTest(arg)

		require.Equal(t, 0, code)
		assert.Empty(t, stderr)
		assert.NotContains(t, stdout, "Generated password:")
		assert.Contains(t, stdout, "--length value, -l value")
		assert.Contains(t, stdout, "pwgen -l 16")
		assert.Contains(t, stdout, "pwgen --length 8")
	}
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	stdout, _, code := runForTest("--version")

	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "pwgen version "+Version)
	assert.NotContains(t, stdout, "Generated password:")
}

func TestRun_PasswordsDiffer(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		stdout, _, code := runForTest()
		require.Equal(t, 0, code)

		password, _ := parseOutput(t, stdout)
		require.False(t, seen[password], "duplicate password %q", password)
		seen[password] = true
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newLogger(false, &buf).Debug("hidden")
	assert.Empty(t, buf.String())

	newLogger(true, &buf).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
