package cmd

import (
	"github.com/etnz/tradebook"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger creates the logger of the CLI. It writes to stderr, so that it
// never mixes with reports, and only warnings unless verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableStacktrace = true
	config.DisableCaller = true
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// logIssues reports the data-quality issues of an account: each one at debug
// level, and a summary as a warning.
func logIssues(log *zap.Logger, account string, issues []tradebook.Issue) {
	for _, i := range issues {
		log.Debug(i.Message,
			zap.String("account", account),
			zap.Int("index", i.Index),
			zap.String("entry", i.EntryID),
			zap.String("field", i.Field),
		)
	}
	if len(issues) > 0 {
		log.Warn("some records were read with default values, run with -v to list them",
			zap.String("account", account),
			zap.Int("issues", len(issues)),
		)
	}
}
