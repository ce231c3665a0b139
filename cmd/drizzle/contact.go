package main

import (
	"errors"
	"fmt"
	"os"

	"drizzle/internal/app"
	"drizzle/internal/contact"
	"drizzle/internal/log"
	"drizzle/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newContactCmd(cfg *app.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Fill in and send the contact form",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The terminal belongs to the form while it runs, so logs go to a
			// file or nowhere.
			logger := log.Discard()
			if cfg.LogFile != "" {
				f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				logger = log.New(f, log.LevelFromString(cfg.LogLevel))
			}

			relay := contact.NewRelay(cfg.Endpoint, contact.WithTimeout(cfg.Timeout), contact.WithLogger(logger))
			form := &contact.Form{}
			logger.Infof("contact form targeting %s", relay.Endpoint())

			p := tea.NewProgram(tui.New(cmd.Context(), form, relay), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return err
			}
			if form.State() == contact.StateSent {
				fmt.Fprintln(cmd.OutOrStdout(), form.Status())
			}
			return nil
		},
	}
	cfg.BindContact(cmd.Flags())
	return cmd
}
