// internal/app/config.go
package app

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"labnotex/internal/config"
)

func newConfigCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write or inspect the settings file",
		Args:  cobra.NoArgs,
		// Replaces the root hook so a broken settings file can still be
		// inspected or overwritten.
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := "warn"
			if cmd.Flags().Changed("log-level") {
				level = r.logLevel
			}
			return r.initLogger(cmd, level)
		},
	}
	cmd.AddCommand(newConfigInitCmd(r), newConfigShowCmd(r))
	return cmd
}

func newConfigInitCmd(r *runner) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Write the default settings to the config file",
		Example: "  labnotex config init\n  labnotex --config ./lab.yaml config init --force",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := r.configPathOrDefault()
			if path == "" {
				return usageError{errors.New("no config path: pass --config or set $" + config.EnvConfig)}
			}
			if _, err := os.Stat(path); err == nil && !force {
				return usageError{errors.Errorf("%s already exists (use --force to overwrite)", path)}
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return writeError{err}
			}
			r.log.Info("config written", zap.String("path", path))
			if _, err := fmt.Fprintln(r.stdout, path); err != nil {
				return writeError{err}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newConfigShowCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings as YAML",
		Long: `Print the settings every other command would run with: the config file
over the defaults, then LABNOTEX_* environment variables, then -o, --log-level
and --no-header. Invalid values are printed as found and reported on stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, path, err := r.loadConfig(cmd)
			if err != nil {
				return err
			}
			for _, verr := range []error{cfg.Validate(), cfg.Stats.Validate(), cfg.Serial.Validate()} {
				if verr != nil {
					r.log.Warn("invalid setting", zap.String("path", path), zap.Error(verr))
				}
			}
			enc := yaml.NewEncoder(r.stdout)
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return writeError{errors.Wrap(err, "encode config")}
			}
			if err := enc.Close(); err != nil {
				return writeError{err}
			}
			return nil
		},
	}
}
