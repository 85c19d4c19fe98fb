package main

import (
	"time"

	"github.com/spf13/cobra"
)

var timeNow = time.Now

func newTodayCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show what to study today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := c.today()
			if err != nil {
				return err
			}
			view, err := c.app.Study.TodayView(contextOf(cmd), today)
			if err != nil {
				return err
			}
			c.printer(cmd).todayView(view)
			return nil
		},
	}
}

func newMarkCommand(c *cli) *cobra.Command {
	var first bool
	cmd := &cobra.Command{
		Use:   "mark <filename>",
		Short: "Record a study session for a vocabulary set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := c.today()
			if err != nil {
				return err
			}
			record, err := c.app.Study.MarkStudied(contextOf(cmd), args[0], first, today)
			if err != nil {
				return err
			}
			c.printer(cmd).marked(args[0], first, record)
			return nil
		},
	}
	cmd.Flags().BoolVar(&first, "first", false, "first study of the set, which schedules its reviews")
	return cmd
}

func newHistoryCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "history <filename>",
		Short: "Show the review schedule of a vocabulary set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := c.today()
			if err != nil {
				return err
			}
			history, err := c.app.Study.History(contextOf(cmd), args[0], today)
			if err != nil {
				return err
			}
			c.printer(cmd).history(history)
			return nil
		},
	}
}

func newSetsCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "sets",
		Short: "List stored vocabulary sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := c.app.Vocabulary.List(contextOf(cmd))
			if err != nil {
				return err
			}
			c.printer(cmd).sets(sets)
			return nil
		},
	}
}
