package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dhawkins/spz-go/spz"
)

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "print header fields, bounding box, median volume, and size consistency",
		ArgsUsage: "<path>",
		Action:    runInfo,
	}
}

func runInfo(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("info: expected exactly one <path> argument", exitInvalidArgs)
	}
	path := c.Args().Get(0)

	s, err := spz.Load(path, spz.Unspecified)
	if err != nil {
		return cli.Exit(fmt.Sprintf("info: %v", err), exitCodeFor(err))
	}

	bbox := s.BBox()
	fmt.Printf("num_points:      %d\n", s.NumPoints())
	fmt.Printf("sh_degree:       %d\n", s.SHDegree())
	fmt.Printf("antialiased:     %t\n", s.Antialiased())
	fmt.Printf("fractional_bits: %d\n", s.FractionalBits())
	fmt.Printf("bbox min:        %v\n", bbox.Min)
	fmt.Printf("bbox max:        %v\n", bbox.Max)
	fmt.Printf("median_volume:   %g\n", s.MedianVolume())
	fmt.Printf("check_sizes:     %t\n", s.CheckSizes())

	log.Debugf("loaded %s: %d points, degree %d SH", path, s.NumPoints(), s.SHDegree())
	return nil
}

// exitCodeFor maps a spz sentinel error to an exit code: 2 invalid
// arguments, 3 I/O error, 4 corrupt file, 5 unsupported version. nil maps
// to 0.
func exitCodeFor(err error) int {
	if err == nil {
		return exitSuccess
	}
	switch {
	case errors.Is(err, spz.ErrUnsupportedVersion):
		return exitUnsupportedVers
	case errors.Is(err, spz.ErrBadMagic),
		errors.Is(err, spz.ErrInvalidHeaderField),
		errors.Is(err, spz.ErrLengthMismatch),
		errors.Is(err, spz.ErrCorruptedEnvelope),
		errors.Is(err, spz.ErrDecompressionTooLarge):
		return exitCorruptFile
	case errors.Is(err, spz.ErrInconsistentSizes), errors.Is(err, spz.ErrEmptyInput):
		return exitInvalidArgs
	default:
		return exitIOError
	}
}
