package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dhawkins/spz-go/spz"
)

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "round-trip a file with coordinate reassignment",
		ArgsUsage: "<in> <out>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "from",
				Usage: "coordinate system the in-memory splat is currently expressed in",
				Value: "RUB",
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: "coordinate system to convert the in-memory splat to before saving",
				Value: "RUB",
			},
		},
		Action: runConvert,
	}
}

func runConvert(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("convert: expected exactly two arguments, <in> and <out>", exitInvalidArgs)
	}
	in := c.Args().Get(0)
	out := c.Args().Get(1)

	from := spz.ParseCoordinateSystem(c.String("from"))
	to := spz.ParseCoordinateSystem(c.String("to"))

	s, err := spz.Load(in, spz.Unspecified)
	if err != nil {
		return cli.Exit(fmt.Sprintf("convert: loading %s: %v", in, err), exitCodeFor(err))
	}

	log.Debugf("loaded %s, converting %s -> %s", in, from, to)
	s.ConvertCoordinates(from, to)

	if err := s.Save(out, spz.Unspecified); err != nil {
		return cli.Exit(fmt.Sprintf("convert: saving %s: %v", out, err), exitCodeFor(err))
	}

	fmt.Printf("wrote %s (%d points)\n", out, s.NumPoints())
	return nil
}
