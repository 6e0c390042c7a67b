// Command spz is the command-line collaborator for the spz codec: it
// exposes info and convert subcommands over the public spz package.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// Exit codes returned by this tool's subcommands.
const (
	exitSuccess         = 0
	exitInvalidArgs     = 2
	exitIOError         = 3
	exitCorruptFile     = 4
	exitUnsupportedVers = 5
)

var log = logrus.New()

func main() {
	app := &cli.App{
		Name:  "spz",
		Usage: "inspect and convert SPZ Gaussian-splat files",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug-level logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			infoCommand(),
			convertCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		if coder, ok := err.(cli.ExitCoder); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(exitIOError)
	}
}
