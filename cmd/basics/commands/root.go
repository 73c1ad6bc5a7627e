package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/marcodamonte/basics/internal/catalog"
	"github.com/marcodamonte/basics/internal/config"
	"github.com/marcodamonte/basics/internal/logging"
	"github.com/marcodamonte/basics/internal/runner"
	"github.com/marcodamonte/basics/internal/tui"
)

// Version is set at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

// app is the state shared by subcommands once flags are parsed.
type app struct {
	configPath string
	cfg        config.Config
	logger     *slog.Logger
}

// Execute runs the CLI against the process arguments.
func Execute() error {
	return NewRootCmd(os.Stdout, logging.New).Execute()
}

// NewRootCmd builds the command tree writing demo output to out. newLogger
// builds the logger once the configured level is known.
func NewRootCmd(out io.Writer, newLogger func(slog.Level) *slog.Logger) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "basics",
		Short:        "Run small demos of Go language basics",
		Long:         `basics prints a banner and runs each demo in a fixed order: bindings, conversion, custom types and expressions.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath, overrides(cmd))
			if err != nil {
				return err
			}
			lvl, _ := cfg.Level()
			a.cfg = cfg
			a.logger = newLogger(lvl)
			a.logger.Debug("config loaded", "path", a.configPath, "banner", cfg.Banner, "color", cfg.Color)
			return nil
		},
		// Bare basics always runs everything; configured topics apply to run.
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.OutOrStdout(), nil)
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "basics.yaml", "config file (missing file is ignored)")
	pf.String("banner", "", "banner style: hash or rule")
	pf.String("color", "", "color output: auto, always or never")
	pf.String("log-level", "", "log level: debug, info, warn or error")
	pf.String("group-headings", "", "print group headings: auto, always or never")
	pf.Bool("groups", false, "always print group headings (same as --group-headings always)")

	root.AddCommand(runCmd(a), listCmd(a), versionCmd())
	return root
}

// overrides collects the persistent flags the user actually set, keyed like
// the config file.
func overrides(cmd *cobra.Command) map[string]any {
	keys := map[string]string{
		"banner":         "banner",
		"color":          "color",
		"log-level":      "log_level",
		"group-headings": "group_headings",
	}
	out := map[string]any{}
	for flag, key := range keys {
		f := cmd.Flags().Lookup(flag)
		if f != nil && f.Changed {
			out[key] = f.Value.String()
		}
	}
	if f := cmd.Flags().Lookup("groups"); f != nil && f.Changed && f.Value.String() == "true" {
		out["group_headings"] = "always"
	}
	return out
}

func (a *app) run(out io.Writer, topics []string) error {
	groups, err := catalog.Select(topics)
	if err != nil {
		return err
	}

	style, _ := runner.ParseStyle(a.cfg.Banner)
	r := runner.New(out,
		runner.WithStyle(style),
		runner.WithPainter(tui.NewPainter(a.profile(out))),
		runner.WithHeadings(a.cfg.Headings()),
		runner.WithLogger(a.logger),
	)
	r.Run(groups...)
	return nil
}

func (a *app) profile(out io.Writer) termenv.Profile {
	fd := ^uintptr(0)
	if f, ok := out.(*os.File); ok {
		fd = f.Fd()
	}
	return tui.ProfileFor(a.cfg.Color, fd)
}
