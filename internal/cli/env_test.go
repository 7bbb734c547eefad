package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/mdclean/internal/cli"
)

func TestBindEnvVars(t *testing.T) {
	tcs := map[string]struct {
		envVars       map[string]string
		wantLogLevel  string
		wantLogFormat string
		wantExt       string
		args          []string
		wantDryRun    bool
	}{
		"environment variables are bound when no args provided": {
			envVars: map[string]string{
				"MDCLEAN_LOG_LEVEL":  "debug",
				"MDCLEAN_LOG_FORMAT": "json",
				"MDCLEAN_DRY_RUN":    "true",
				"MDCLEAN_EXT":        ".markdown",
			},
			args:          []string{},
			wantLogLevel:  "debug",
			wantLogFormat: "json",
			wantDryRun:    true,
			wantExt:       ".markdown",
		},
		"command line args take precedence over environment variables": {
			envVars: map[string]string{
				"MDCLEAN_LOG_LEVEL":  "debug",
				"MDCLEAN_LOG_FORMAT": "json",
				"MDCLEAN_EXT":        ".markdown",
			},
			args:          []string{"--log-level", "error", "--log-format", "text", "--ext", ".txt"},
			wantLogLevel:  "error",
			wantLogFormat: "text",
			wantExt:       ".txt",
		},
		"partial environment variable override": {
			envVars: map[string]string{
				"MDCLEAN_LOG_LEVEL": "warn",
			},
			args:          []string{"--log-format", "json", "-n"},
			wantLogLevel:  "warn",
			wantLogFormat: "json",
			wantDryRun:    true,
		},
		"invalid environment value keeps the default": {
			envVars: map[string]string{
				"MDCLEAN_DRY_RUN": "sometimes",
			},
			args:          []string{},
			wantLogLevel:  "info",
			wantLogFormat: "text",
		},
		"no environment variables uses defaults": {
			envVars:       map[string]string{},
			args:          []string{},
			wantLogLevel:  "info", // Default value.
			wantLogFormat: "text", // Default value.
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			for key, val := range tc.envVars {
				t.Setenv(key, val)
			}

			cmd := cli.NewRootCmd()
			cmd.SetArgs(tc.args)

			// Parse flags (this triggers environment variable binding).
			err := cmd.ParseFlags(tc.args)
			require.NoError(t, err)

			// Check flag values.
			logLevel, err := cmd.Flags().GetString("log-level")
			require.NoError(t, err)
			assert.Equal(t, tc.wantLogLevel, logLevel)

			logFormat, err := cmd.Flags().GetString("log-format")
			require.NoError(t, err)
			assert.Equal(t, tc.wantLogFormat, logFormat)

			dryRun, err := cmd.Flags().GetBool("dry-run")
			require.NoError(t, err)
			assert.Equal(t, tc.wantDryRun, dryRun)

			ext, err := cmd.Flags().GetString("ext")
			require.NoError(t, err)
			assert.Equal(t, tc.wantExt, ext)
		})
	}
}

// Test that flag usage strings are updated to include environment variable names.
func TestEnvironmentVariableUsageUpdate(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCmd()

	logLevelFlag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, logLevelFlag)
	assert.Contains(t, logLevelFlag.Usage, "$MDCLEAN_LOG_LEVEL")

	configFlag := cmd.Flags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Contains(t, configFlag.Usage, "$MDCLEAN_CONFIG")

	dirFlag := cmd.Flags().Lookup("directory")
	require.NotNil(t, dirFlag)
	assert.Contains(t, dirFlag.Usage, "$MDCLEAN_DIRECTORY")
	assert.Equal(t, "d", dirFlag.Shorthand)
}
