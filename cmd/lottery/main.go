package main

import (
	"fmt"
	"log"
	"lottery_backend/internal/app"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "lottery",
		Usage: "lottery backend",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "migrate", Usage: "apply migrations before start"},
				},
				Action: func(c *cli.Context) error {
					return app.NewApp().Run(c.Context, c.Bool("migrate"))
				},
			},
			{
				Name:  "migrate",
				Usage: "create lottery tables",
				Action: func(c *cli.Context) error {
					return app.NewApp().Migrate(c.Context)
				},
			},
			{
				Name:  "token",
				Usage: "issue access token for an address",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "address", Required: true},
				},
				Action: func(c *cli.Context) error {
					tok, err := app.NewApp().Token(c.String("address"))
					if err != nil {
						return err
					}
					fmt.Println(tok)
					return nil
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
