package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/planner"
)

func newAddCmd(opts *rootOptions) *cobra.Command {
	var date, subject string
	cmd := &cobra.Command{
		Use:   "add TITLE DESCRIPTION",
		Short: "Add a task to the To Do column",
		Long: `Adds a task filed under --date (default today). With --subject the task
is tagged to that subject planner instead of the normal day view.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			p := a.planner()
			if subject != "" {
				p.SetSubject(subject)
			}
			task, ok, err := p.AddTask(cmd.Context(), planner.Draft{Title: args[0], Desc: args[1], Date: date})
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("title and description must not be empty")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s %q on %s\n", task.ID, task.Title, task.Date)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date to file the task under (YYYY-MM-DD)")
	cmd.Flags().StringVar(&subject, "subject", "", "subject planner to tag the task with")
	return cmd
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var date, subject string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the board for a day or a subject",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if date != "" && subject != "" {
				return errors.New("--date and --subject cannot be used together")
			}
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			p := a.planner()
			if date != "" {
				if err := p.GoTo(date); err != nil {
					return err
				}
			}
			if subject != "" {
				p.SetSubject(subject)
			}
			board, err := p.Board(cmd.Context())
			if err != nil {
				return err
			}
			printBoard(cmd.OutOrStdout(), board)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to show (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&subject, "subject", "", "show a subject planner instead of a day")
	return cmd
}

func printBoard(w io.Writer, board model.Board) {
	fmt.Fprintf(w, "%s\n", board.Filter.Label())
	for _, col := range board.Columns {
		fmt.Fprintf(w, "\n%s (%d)\n", col.Title, col.Count())
		for _, card := range col.Cards {
			fmt.Fprintf(w, "  %s  %s  %s: %s\n", card.ID, card.Date, card.Title, card.Desc)
		}
	}
}

func newRmCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTask(cmd, opts, args[0], func(p *planner.Planner, id string) error {
				if err := p.DeleteTask(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
				return nil
			})
		},
	}
}

func newMoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "move ID STATUS",
		Short: "Move a task to another column (to-do, progress, done)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := model.ParseStatus(args[1])
			if err != nil {
				return err
			}
			return withTask(cmd, opts, args[0], func(p *planner.Planner, id string) error {
				task, err := p.MoveTask(cmd.Context(), id, status)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "moved %s to %s\n", task.ID, task.Status.Label())
				return nil
			})
		},
	}
}

func newBumpCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bump ID",
		Short: "Move a task to the next day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTask(cmd, opts, args[0], func(p *planner.Planner, id string) error {
				task, err := p.AdvanceTask(cmd.Context(), id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s now on %s\n", task.ID, task.Date)
				return nil
			})
		},
	}
}

// withTask opens the app, resolves ref to a stored id and runs fn.
func withTask(cmd *cobra.Command, opts *rootOptions, ref string, fn func(*planner.Planner, string) error) error {
	a, err := openApp(opts)
	if err != nil {
		return err
	}
	defer a.Close()

	p := a.planner()
	tasks, err := p.Tasks(cmd.Context())
	if err != nil {
		return err
	}
	id, err := resolveID(tasks, ref)
	if err != nil {
		return err
	}
	return fn(p, id)
}
