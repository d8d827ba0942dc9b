package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"observe/internal/config"
	"observe/internal/demo"
)

// options collects flag values; zero values mean "not set" so a config file
// can fill them.
type options struct {
	configPath  string
	name        string
	renameTo    string
	logLevel    string
	logFormat   string
	serveAddr   string
	watch       bool
	corsOrigins []string
}

func (o options) asConfig() config.Config {
	return config.Config{
		Name:        o.name,
		RenameTo:    o.renameTo,
		LogLevel:    o.logLevel,
		LogFormat:   o.logFormat,
		ServeAddr:   o.serveAddr,
		CORSOrigins: o.corsOrigins,
	}
}

// buildRootCmd constructs the observe command. stdout receives the demo
// output only; logs go to stderr.
func buildRootCmd(stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) *cobra.Command {
	var o options
	root := &cobra.Command{
		Use:   "observe",
		Short: "Shared, lock-protected observable entity walkthrough",
		Long: "observe constructs a shared entity, clones a handle, reports the holder count,\n" +
			"prints a debug snapshot, renames the entity under exclusive access and prints\n" +
			"the snapshot again. --serve keeps the entity alive behind an introspection API.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyEnv(cmd.Flags(), lookupEnv)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Config{Name: demo.DefaultName, RenameTo: demo.DefaultRenameTo, LogLevel: "info", LogFormat: "console"}
			if o.configPath != "" {
				fileCfg, err := config.Load(o.configPath)
				if err != nil {
					return fmt.Errorf("config: %w", err)
				}
				cfg = config.Merge(cfg, fileCfg)
			}
			cfg = config.Merge(cfg, o.asConfig())
			if o.watch && o.configPath == "" {
				return fmt.Errorf("--watch requires --config")
			}
			return run(cmd.Context(), stdout, stderr, cfg, o.configPath, o.watch)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	f := root.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "Config file (.yaml|.yml|.json|.toml)")
	f.StringVar(&o.name, "name", "", "Entity name at construction (default \"z\")")
	f.StringVar(&o.renameTo, "rename-to", "", "Name applied under exclusive access (default \"newZ3Name\")")
	f.StringVar(&o.logLevel, "log-level", "", "Log level: trace|debug|info|warn|error (default info)")
	f.StringVar(&o.logFormat, "log-format", "", "Log format: console|json (default console)")
	f.StringVar(&o.serveAddr, "serve", "", "Serve the introspection API on this address after the walkthrough, e.g. :8080")
	f.BoolVar(&o.watch, "watch", false, "Watch --config and apply rename_to changes while serving")
	f.StringSliceVar(&o.corsOrigins, "cors-origin", nil, "Allowed CORS origins for the introspection API (repeatable)")

	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(stdout, true) }})
	root.AddCommand(completionCmd)

	return root
}
