package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

const description = `Serves a weekly class schedule and tells which class is running now
and which one starts next. Entries are read from a SQL store (Postgres or
sqlite, DATA_SOURCE=sql) or from a Supabase table (DATA_SOURCE=rest).`

func main() {
	if err := execute(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "schedule: %v\n", err)
		os.Exit(1)
	}
}

func execute(args []string) error {
	return newApp(os.Stdout, os.Stderr).Run(args)
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:        "schedule",
		HelpName:    "schedule",
		Usage:       "weekly class schedule service",
		UsageText:   "schedule <command> [arguments...]",
		Description: description,
		Writer:      stdout,
		ErrWriter:   stderr,
		Commands: []cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP service with a ticking clock",
				Action: serve,
			},
			{
				Name:   "now",
				Usage:  "print the current and next class",
				Action: now,
				Flags:  []cli.Flag{jsonFlag},
			},
			{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "print the week's entries in display order",
				Action:  list,
				Flags:   []cli.Flag{dayFlag, jsonFlag},
			},
			{
				Name:   "seed",
				Usage:  "load entries from a YAML file into the SQL store",
				Action: seed,
				Flags:  []cli.Flag{fileFlag},
			},
			{
				Name:   "migrate",
				Usage:  "apply database migrations",
				Action: migrate,
			},
		},
	}
}
