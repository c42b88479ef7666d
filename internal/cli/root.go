// Package cli wires configuration, logging and the inventory store into the
// stockpile command tree.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/stockpile/internal/config"
	"github.com/idilsaglam/stockpile/internal/inventory"
	"github.com/idilsaglam/stockpile/internal/logging"
	"github.com/idilsaglam/stockpile/internal/shell"
	"github.com/idilsaglam/stockpile/internal/store/jsonstore"
	"github.com/idilsaglam/stockpile/internal/ui"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Exit codes: 0 ok, 1 error, 2 usage or rejected request.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks failures caused by the request rather than the system.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// rejected turns a store rejection into a usage failure carrying its notice.
func rejected(res inventory.Result) error {
	return &usageError{msg: res.Notice}
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return usagef("%v", err)
		}
		return nil
	}
}

// app is the state shared by all commands once PersistentPreRunE ran.
type app struct {
	flags struct {
		config string
		file   string
		theme  string
	}
	cfg    *config.Config
	logger *zap.Logger
	store  *inventory.Store
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.flags.config)
	if err != nil {
		return err
	}
	if a.flags.file != "" {
		cfg.DataFile = a.flags.file
	}
	if a.flags.theme != "" {
		cfg.Theme = a.flags.theme
	}
	if err := cfg.Validate(); err != nil {
		return usagef("%v", err)
	}
	a.cfg = cfg

	a.logger, err = logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	ui.SetTheme(cfg.Theme)

	path, err := jsonstore.Resolve(cfg.DataFile)
	if err != nil {
		return err
	}
	a.store, err = inventory.New(path, inventory.WithLogger(a.logger))
	if err != nil {
		return err
	}
	a.logger.Debug("store ready", zap.String("path", path), zap.Int("items", a.store.Len()))
	return nil
}

func (a *app) teardown() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// NewRootCmd builds the command tree. Without a subcommand it runs the
// interactive menu.
func NewRootCmd() *cobra.Command {
	root, _ := newRoot()
	return root
}

func newRoot() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:   "stockpile",
		Short: "Single-user inventory tracker",
		Long: "stockpile keeps a list of stock items (name, unit price, quantity)\n" +
			"in a JSON snapshot that is rewritten after every change.\n" +
			"Run without a subcommand for the interactive menu.",
		Version:           Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		Args:              usageArgs(cobra.NoArgs),
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return shell.Run(a.store, shell.Options{
				Currency: a.cfg.Currency,
				In:       cmd.InOrStdin(),
				Out:      cmd.OutOrStdout(),
			})
		},
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.flags.config, "config", "", "YAML config file")
	f.StringVarP(&a.flags.file, "file", "f", "", "inventory snapshot (default inventory.json)")
	f.StringVar(&a.flags.theme, "theme", "", "output theme: classic, neon, mono")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usagef("%v", err)
	})

	root.AddCommand(
		newAddCmd(a),
		newAdjustCmd(a),
		newListCmd(a),
		newFindCmd(a),
	)
	return root, a
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root, a := newRoot()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	a.teardown()
	if err == nil {
		return ExitOK
	}
	ui.Fail(stderr, err.Error())
	var ue *usageError
	if errors.As(err, &ue) || errors.Is(err, inventory.ErrInvalidNumber) {
		return ExitUsage
	}
	return ExitError
}
