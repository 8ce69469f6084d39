package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "optdemo",
		Usage: "demonstrate optional-argument calling conventions",
		Commands: []*cli.Command{
			{
				Name:   "greet",
				Action: greet,
				Usage:  "greet someone, with every argument optional",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "name to greet",
					},
					&cli.UintFlag{
						Name:        "times",
						DefaultText: "1",
						Usage:       "number of greetings",
					},
				},
			},
			{
				Name:   "session",
				Action: session,
				Usage:  "print the session id, generating one if not provided",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "id",
						Usage: "session UUID",
					},
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
