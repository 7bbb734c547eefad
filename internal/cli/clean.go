package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/macropower/mdclean/pkg/config"
	"github.com/macropower/mdclean/pkg/log"
	"github.com/macropower/mdclean/pkg/pipeline"
	"github.com/macropower/mdclean/pkg/walker"
)

const (
	cmdExamples = `  # Clean the Markdown files in ./notes:
  mdclean ./notes

  # Same, using the flag form:
  mdclean --directory notes

  # Resolve the directory against a project root:
  mdclean --root ~/blog --directory posts

  # Show what would change without writing:
  mdclean ./notes --dry-run

  # Keep cleaning files as they are saved:
  mdclean ./notes --watch

  # Clean .markdown files instead:
  mdclean ./notes --ext .markdown`
)

type CleanArgs struct {
	*RootArgs

	Directory   string
	Root        string
	Extension   string
	ConfigPath  string
	DryRun      bool
	Watch       bool
	WriteConfig bool
	ShowConfig  bool
}

func NewCleanArgs(rootArgs *RootArgs) *CleanArgs {
	return &CleanArgs{
		RootArgs: rootArgs,
	}
}

func (ca *CleanArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&ca.Directory, "directory", "d", "", "Directory containing the Markdown files")
	cmd.Flags().StringVar(&ca.Root, "root", "", "Project root that a relative directory is resolved against")
	cmd.Flags().StringVar(&ca.Extension, "ext", "", "Extension of the files to clean (default from config)")
	cmd.Flags().StringVar(&ca.ConfigPath, "config", "", "Path to the mdclean configuration file")
	cmd.Flags().BoolVarP(&ca.DryRun, "dry-run", "n", false, "Print a diff for each changed file instead of writing")
	cmd.Flags().BoolVarP(&ca.Watch, "watch", "w", false, "Keep running and clean files when they change")
	cmd.Flags().BoolVar(&ca.WriteConfig, "write-config", false, "Write the default configuration file and exit")
	cmd.Flags().BoolVar(&ca.ShowConfig, "show-config", false, "Print the active configuration and exit")

	cmd.MarkFlagsMutuallyExclusive("dry-run", "watch")

	must(cmd.MarkFlagDirname("directory"))
	must(cmd.MarkFlagDirname("root"))
	must(cmd.MarkFlagFilename("config", "yaml", "yml"))
}

func NewCleanCmd(ca *CleanArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "clean [directory]",
		Short:             "Default command, can be used explicitly if the directory is ambiguous",
		Example:           cmdExamples,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: cleanCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				ca.Directory = args[0]
			}

			return clean(cmd, ca)
		},
	}
	ca.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}

func cleanCompletion(_ *cobra.Command, args []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return nil, cobra.ShellCompDirectiveFilterDirs
	}

	return nil, cobra.ShellCompDirectiveNoFileComp
}

// resolveDir joins a relative dir onto root, if one is set.
func resolveDir(root, dir string) string {
	if root == "" || filepath.IsAbs(dir) {
		return dir
	}

	return filepath.Join(root, dir)
}

// loadConfig returns the active configuration. A missing config file means
// the built-in defaults; nothing is written unless --write-config is set.
func loadConfig(logger *slog.Logger, configPath string) (*config.Config, error) {
	if configPath == "" {
		return config.NewConfig(), nil
	}

	cl, err := config.NewConfigLoaderFromFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("no config file, using defaults", slog.String("path", configPath))

		return config.NewConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config %q: %w", configPath, err)
	}

	err = cl.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", configPath, err)
	}

	cfg, err := cl.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", configPath, err)
	}

	return cfg, nil
}

func writeConfig(logger *slog.Logger, configPath string) error {
	if configPath == "" {
		return ErrNoConfigPath
	}

	err := config.WriteDefaultConfig(configPath)
	if err != nil {
		return fmt.Errorf("write default config: %w", err)
	}

	logger.Info("wrote default config", slog.String("path", configPath))

	return nil
}

func clean(cmd *cobra.Command, ca *CleanArgs) error {
	logHandler, err := log.HandlerFromFlags(cmd.ErrOrStderr(), ca.LogLevel, ca.LogFormat)
	if err != nil {
		return fmt.Errorf("create log handler: %w", err)
	}

	logger := slog.New(logHandler)

	configPath := ca.ConfigPath
	if configPath == "" {
		configPath = config.GetPath()
	}

	if ca.WriteConfig {
		return writeConfig(logger, configPath)
	}

	cfg, err := loadConfig(logger, configPath)
	if err != nil {
		return err
	}

	if ca.Extension != "" {
		cfg.Files.Extension = ca.Extension
	}

	if ca.ShowConfig {
		logger.Info("active configuration", slog.String("path", configPath))

		yamlBytes, err := cfg.MarshalYAML()
		if err != nil {
			return fmt.Errorf("marshal config yaml: %w", err)
		}

		return newHighlighter("yaml").Write(cmd.OutOrStdout(), string(yamlBytes))
	}

	if ca.Directory == "" {
		return ErrMissingDirectory
	}

	dir := resolveDir(ca.Root, ca.Directory)

	// Diffs going to a terminal would be broken up by log lines, so hold the
	// logs back until the diffs are written.
	var logBuf *log.CircularBuffer
	if ca.DryRun && isTerminal(cmd.OutOrStdout()) {
		logBuf = log.NewCircularBuffer(100)

		logHandler, err := log.HandlerFromFlags(logBuf, ca.LogLevel, ca.LogFormat)
		if err != nil {
			return fmt.Errorf("create log handler: %w", err)
		}

		logger = slog.New(logHandler)
	}

	p := pipeline.New(append(cfg.Rules.Options(), pipeline.WithLogger(logger))...)

	walkerOpts := append(cfg.Files.Options(),
		walker.WithDryRun(ca.DryRun),
		walker.WithLogger(logger),
	)
	w := walker.New(dir, p, walkerOpts...)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results, err := w.Run(ctx)
	if err != nil {
		if logBuf != nil {
			flushLogs(cmd.ErrOrStderr(), logBuf)
		}

		return fmt.Errorf("clean directory: %w", err)
	}

	if ca.DryRun {
		err := writeDiffs(cmd.OutOrStdout(), results)
		if err != nil {
			return err
		}
	}

	logSummary(logger, dir, results)

	if logBuf != nil {
		flushLogs(cmd.ErrOrStderr(), logBuf)
	}

	if ca.Watch {
		err := w.Watch(ctx, func(res walker.Result) {
			if res.Changed {
				logger.Info("file changed and was cleaned",
					slog.String("path", res.Path),
					slog.String("removed", humanize.Bytes(uint64(max(res.Removed(), 0)))),
				)
			}
		})
		if err != nil {
			return fmt.Errorf("watch directory: %w", err)
		}
	}

	return nil
}

func writeDiffs(w io.Writer, results []walker.Result) error {
	hl := newHighlighter("diff")

	for _, res := range results {
		if res.Diff == "" {
			continue
		}

		err := hl.Write(w, res.Diff)
		if err != nil {
			return fmt.Errorf("write diff for %s: %w", res.Path, err)
		}
	}

	return nil
}

func logSummary(logger *slog.Logger, dir string, results []walker.Result) {
	var changed, removed int
	for _, res := range results {
		if res.Changed {
			changed++
		}

		removed += max(res.Removed(), 0)
	}

	logger.Info("finished cleaning",
		slog.String("dir", dir),
		slog.Int("files", len(results)),
		slog.Int("changed", changed),
		slog.String("removed", humanize.Bytes(uint64(removed))),
	)
}

func flushLogs(w io.Writer, buf *log.CircularBuffer) {
	slog.Debug("flush logs to console",
		slog.Int("count", buf.Size()),
		slog.Int("max", buf.Capacity()),
		slog.Bool("truncated", buf.IsFull()),
	)

	_, err := buf.WriteTo(w)
	if err != nil {
		panic(err)
	}
}
