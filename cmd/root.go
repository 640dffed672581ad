package cmd

import (
	"fmt"
	"os"

	"fragment-loader/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "fragment-loader",
	Short: "Fragment Loader",
	Long: `Fragment Loader assembles HTML pages from reusable fragments.
Pages declare fragments with data-component attributes; fragments are fetched
from HTTP, S3/MinIO, a database or a local directory, cached and spliced in.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding at debug level gives readable ISO8601 timestamps for CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
