package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"drizzle/internal/app"
	"drizzle/internal/log"
	_ "drizzle/internal/sims/rain"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := app.NewConfig()
	v := app.NewViper()
	var configPath string

	root := &cobra.Command{
		Use:          "drizzle",
		Short:        "Contact form and rain animation from the personal site",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if configPath != "" {
				v.SetConfigFile(configPath)
				if err := v.ReadInConfig(); err != nil {
					return err
				}
			}
			return cfg.Load(v, cmd.Flags())
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "optional config file (yaml, toml or json)")
	cfg.BindGlobal(root.PersistentFlags())

	root.AddCommand(newRainCmd(cfg), newContactCmd(cfg))
	return root
}

func newLogger(cfg *app.Config) *log.Logger {
	return log.Stderr(log.LevelFromString(cfg.LogLevel))
}
