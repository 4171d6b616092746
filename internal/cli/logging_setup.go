package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/vgrid/internal/config"
	"github.com/rshade/vgrid/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI flags.
// Interactive commands always log to a file so that log lines never land on
// the screen the TUI draws.
func setupLogging(cmd *cobra.Command) logging.LogPathResult {
	cfg := config.GetGlobalConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	interactive := cmd.Annotations[annotationInteractive] == "true"
	if debug {
		cfg.Logging.Level = "debug"
		if !interactive {
			cfg.Logging.Format = "console"
			cfg.Logging.File = ""
		}
	}

	if logFile, _ := cmd.Flags().GetString("log-file"); logFile != "" {
		cfg.Logging.File = logFile
	}
	if interactive && cfg.Logging.File == "" {
		if path, err := config.DefaultSessionLogPath(); err == nil {
			cfg.Logging.File = path
		}
	}

	// Ensure log directory exists after all overrides have been applied.
	if cfg.Logging.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLoggerWithPath(cfg.Logging.ToLoggingConfig())
	config.SetLogger(result.Logger)
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Str("trace_id", traceID).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
