package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/macropower/mdclean/pkg/log"
)

const (
	cmdName = "mdclean"
	cmdDesc = `Strip image links, newsletter preambles, attributions and promotional phrases from Markdown files.`
)

type RootArgs struct {
	LogLevel  string
	LogFormat string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{}
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVar(&ra.LogLevel, "log-level", "info", fmt.Sprintf("Log level, one of: %s", log.AllLevels))
	cmd.PersistentFlags().
		StringVar(&ra.LogFormat, "log-format", "text", fmt.Sprintf("Log format, one of: %s", log.AllFormats))

	var err error

	err = cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}

	err = cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}
}

// NewRootCmd creates the root command. Running it without a subcommand is
// the same as running "clean".
func NewRootCmd() *cobra.Command {
	args := NewRootArgs()
	cleanArgs := NewCleanArgs(args)

	cleanCmd := NewCleanCmd(cleanArgs)
	cmd := &cobra.Command{
		Use:               cmdName + " [directory]",
		Short:             cmdDesc,
		Example:           cmdExamples,
		PersistentPreRunE: setupLogging(args),
		ValidArgsFunction: cleanCmd.ValidArgsFunction,
		Args:              cleanCmd.Args,
		RunE:              cleanCmd.RunE,
		SilenceUsage:      true,
	}

	args.AddFlags(cmd)
	cleanArgs.AddFlags(cmd)
	cmd.AddCommand(cleanCmd)

	bindEnvVars(cmd)

	return cmd
}

func setupLogging(rc *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		logHandler, err := log.HandlerFromFlags(cmd.ErrOrStderr(), rc.LogLevel, rc.LogFormat)
		if err != nil {
			return fmt.Errorf("create log handler: %w", err)
		}

		slog.SetDefault(slog.New(logHandler))

		return nil
	}
}
