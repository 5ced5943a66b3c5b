package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/vaultpass/pwgen-go/internal/crypto"
	"github.com/vaultpass/pwgen-go/internal/model"
	"github.com/vaultpass/pwgen-go/internal/service"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

const description = `Generates a random password from lowercase letters, uppercase letters and digits.

Examples:
  pwgen               # 12-character password
  pwgen -l 16         # 16-character password
  pwgen --length 8    # 8-character password`

// Run executes the command line in args (args[0] is the program name) and
// returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	app := NewApp(service.NewGeneratorService(), stdout, stderr)
	if err := app.Run(args); err != nil {
		if crypto.IsValidationError(err) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		} else {
			fmt.Fprintf(stderr, "Unexpected error: %v\n", err)
		}
		return 1
	}
	return 0
}

// NewApp builds the pwgen application. Errors are returned from Run rather
// than printed, so callers decide how they are reported.
func NewApp(svc *service.GeneratorService, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:            "pwgen",
		Usage:           "generate a random alphanumeric password",
		UsageText:       "pwgen [-l LENGTH]",
		Description:     description,
		Version:         Version,
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "length",
				Aliases: []string{"l"},
				Usage:   fmt.Sprintf("password length, at least %d", crypto.MinLength),
				Value:   crypto.DefaultLength,
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging on stderr",
			},
		},
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return err
		},
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				return fmt.Errorf("unexpected arguments: %s", strings.Join(c.Args().Slice(), " "))
			}

			logger := newLogger(c.Bool("debug"), c.App.ErrWriter)

			length := c.Int("length")
			logger.Debug("generating password", "length", length)

			resp, err := svc.Generate(model.GenerateRequest{Length: &length})
			if err != nil {
				logger.Debug("generation failed", "length", length, "error", err)
				return err
			}

			fmt.Fprintf(c.App.Writer, "Generated password: %s\n", resp.Password)
			fmt.Fprintf(c.App.Writer, "Length: %d characters\n", resp.Length)
			return nil
		},
	}
}

// newLogger returns a text logger on w. Only warnings and errors are shown
// unless debug is set.
func newLogger(debug bool, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
