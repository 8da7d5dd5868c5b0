package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"bidscope/commands"
	"bidscope/config"
	"bidscope/handlers"
)

func main() {
	app := pocketbase.New()

	cfg := &config.Config{}
	cfg.Bind(app.RootCmd.PersistentFlags())
	app.RootCmd.AddCommand(
		commands.NewExportCommand(cfg),
		commands.NewCheckCommand(cfg),
	)

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		if cfg.DataURL != "" {
			log.Printf("Serving data from %s", cfg.DataURL)
		} else {
			log.Printf("Serving data from %s", cfg.DataDir)
		}
		deps := handlers.NewDeps(cfg.Source())
		handlers.Register(se, deps, os.DirFS("./static"))
		se.App.Cron().MustAdd("sweepViewSessions", "*/15 * * * *", func() {
			if n := deps.Sessions.Sweep(); n > 0 {
				log.Printf("Dropped %d idle view sessions", n)
			}
		})
		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
