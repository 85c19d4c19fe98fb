package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vytor/vocabflash/internal/app"
	"github.com/vytor/vocabflash/internal/config"
	"github.com/vytor/vocabflash/internal/logger"
	"github.com/vytor/vocabflash/internal/models"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
}

// cli carries what every subcommand shares.
type cli struct {
	cfg     config.Config
	app     *app.App
	date    string
	noColor bool
}

func newRootCommand() *cobra.Command {
	c := &cli{}
	var debugMode bool
	root := &cobra.Command{
		Use:           "vocabctl",
		Short:         "Review vocabulary sets from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.cfg = config.Load()
			if debugMode {
				c.cfg.LogLevel = "DEBUG"
			}
			if err := c.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			log := logger.New(
				logger.WithLevel(logger.ParseLevel(c.cfg.LogLevel)),
				logger.WithOutput(cmd.ErrOrStderr()),
			)
			logger.SetDefault(log)

			a, err := app.New(logger.NewContext(cmd.Context(), log), c.cfg)
			if err != nil {
				return err
			}
			c.app = a
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.app == nil {
				return nil
			}
			return c.app.Close()
		},
	}
	root.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&c.date, "date", "", "study day as YYYY-MM-DD instead of today")
	root.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newTodayCommand(c),
		newMarkCommand(c),
		newHistoryCommand(c),
		newSetsCommand(c),
	)
	return root
}

func (c *cli) today() (models.Date, error) {
	if c.date == "" {
		return models.Today(timeNow(), c.cfg.Location()), nil
	}
	d, err := models.ParseDate(c.date)
	if err != nil {
		return models.Date{}, fmt.Errorf("--date must be YYYY-MM-DD: %w", err)
	}
	return d, nil
}

func (c *cli) printer(cmd *cobra.Command) *printer {
	return newPrinter(cmd.OutOrStdout(), !c.noColor)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
