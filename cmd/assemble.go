package cmd

import (
	"fmt"
	"os"
	"strings"

	"fragment-loader/core/config"
	"fragment-loader/core/logger"
	"fragment-loader/feature/pages"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	assembleOut string
	assembleDev bool
)

// assembleCmd represents the assemble command
var assembleCmd = &cobra.Command{
	Use:   "assemble [page]",
	Short: "Assemble a page from its declared fragments",
	Long: `Fetches the page from the configured source, loads every fragment it declares
with data-component and writes the resulting HTML to stdout or --out.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("dev") {
			cfg.Loader.DevelopmentMode = assembleDev
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		src, err := buildSource(ctx, cfg, logg)
		if err != nil {
			return err
		}

		page := "/" + strings.TrimLeft(args[0], "/")
		svc := pages.NewService(src, cfg.Loader, logg, nil)
		result, err := svc.Assemble(ctx, page)
		if err != nil {
			return err
		}

		logg.Info("Page assembled",
			zap.String("page", page),
			zap.Int("declared", result.Declared),
			zap.Strings("loaded", result.Loaded))

		if assembleOut == "" {
			_, err = fmt.Fprint(cmd.OutOrStdout(), result.HTML)
			return err
		}
		return os.WriteFile(assembleOut, []byte(result.HTML), 0o644)
	},
}

func init() {
	assembleCmd.Flags().StringVarP(&assembleOut, "out", "o", "", "Write the assembled page to this file")
	assembleCmd.Flags().BoolVar(&assembleDev, "dev", false, "Show visible warnings for fragments that fail to load")
	RootCmd.AddCommand(assembleCmd)
}
