package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/nateberkopec/glucostatus-notify/internal/app"
	"github.com/nateberkopec/glucostatus-notify/internal/desktop"
	"github.com/nateberkopec/glucostatus-notify/internal/notify"
	"github.com/nateberkopec/glucostatus-notify/internal/persistence"
)

const appName = "GlucoStatus"

func main() {
	var (
		title   string
		message string
		sound   bool
		check   bool
		reset   bool
		verbose bool
	)

	flag.StringVar(&title, "title", appName, "notification title")
	flag.StringVar(&message, "message", "", "notification body")
	flag.BoolVar(&sound, "sound", false, "play the system alert sound with the notification")
	flag.BoolVar(&check, "check", false, "fail if desktop notifications are unavailable on this system")
	flag.BoolVar(&reset, "reset", false, "forget the stored permission decision and exit")
	flag.BoolVar(&verbose, "verbose", false, "enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	if reset {
		if err := persistence.ClearPermission(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	host, err := desktop.New(desktop.Config{
		AppName: appName,
		Sound:   sound,
		Logger:  logger,
		Prompt: func(ctx context.Context) (notify.PermissionState, error) {
			return app.Prompt(ctx, app.PromptConfig{AppName: appName})
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer host.Close()

	if check {
		if err := notify.CheckSupport(host); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	notify.New(host).Notify(title, message)
	host.Wait()
}
