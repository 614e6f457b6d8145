// Command nodecheck reads a set of segment strings as JSON, snap-rounds
// them onto an integer grid, and writes the noded result back out as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/iancw/noding/coordinate"
	"github.com/iancw/noding/geomerr"
	"github.com/iancw/noding/noder"
	"github.com/iancw/noding/options"
	"github.com/iancw/noding/scalednoder"
	"github.com/iancw/noding/segstring"
	"github.com/iancw/noding/snapround"
)

// segmentStringDoc is the JSON shape nodecheck reads and writes: a vertex
// chain plus an opaque data payload carried through unchanged.
type segmentStringDoc struct {
	Coordinates []coordinate.Coordinate `json:"coordinates"`
	Data        any                     `json:"data,omitempty"`
}

func main() {
	cmd := &cli.Command{
		Name:      "nodecheck",
		Usage:     "Snap-rounds a set of segment strings and reports the noded result as JSON",
		UsageText: "nodecheck --input <file> --scale <value> [--validate]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Usage:    "Path to a JSON file holding an array of segment strings, or \"-\" for stdin",
				Value:    "-",
				OnlyOnce: true,
			},
			&cli.FloatFlag{
				Name:     "scale",
				Usage:    "Grid points per unit the input is lifted onto before snap rounding",
				Value:    100,
				OnlyOnce: true,
				Validator: func(f float64) error {
					if f <= 0 {
						return fmt.Errorf("scale must be greater than zero")
					}
					return nil
				},
			},
			&cli.FloatFlag{
				Name:     "offset-x",
				Usage:    "X origin subtracted from every vertex before scaling",
				OnlyOnce: true,
			},
			&cli.FloatFlag{
				Name:     "offset-y",
				Usage:    "Y origin subtracted from every vertex before scaling",
				OnlyOnce: true,
			},
			&cli.FloatFlag{
				Name:     "epsilon",
				Usage:    "Orientation-test tolerance used by the robust intersector",
				Value:    1e-9,
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:     "validate",
				Usage:    "Check the noded result for residual topology violations before printing it",
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      run,
		Authors:     []any{"https://github.com/iancw"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	docs, err := readSegmentStrings(cmd.String("input"))
	if err != nil {
		return err
	}

	segStrings := make([]*segstring.SegmentString, len(docs))
	for i, d := range docs {
		ss, ssErr := segstring.New(d.Coordinates, d.Data)
		if ssErr != nil {
			return ssErr.WithSegmentStringIndex(i)
		}
		segStrings[i] = ss
	}

	pm, pmErr := coordinate.NewFixedPrecisionModel(1)
	if pmErr != nil {
		return pmErr
	}

	var n noder.Noder = scalednoder.New(
		snapround.New(pm, options.WithEpsilon(cmd.Float("epsilon"))),
		cmd.Float("scale"),
		cmd.Float("offset-x"),
		cmd.Float("offset-y"),
	)
	if cmd.Bool("validate") {
		n = noder.NewValidatingNoder(n)
	}

	if computeErr := n.ComputeNodes(segStrings); computeErr != nil {
		return computeErr
	}

	out := make([]segmentStringDoc, 0, len(segStrings))
	for _, ss := range n.GetNodedSubstrings() {
		out = append(out, segmentStringDoc{Coordinates: ss.Coordinates(), Data: ss.Data()})
	}

	b, marshalErr := json.Marshal(out)
	if marshalErr != nil {
		return marshalErr
	}
	fmt.Println(string(b))
	return nil
}

func readSegmentStrings(path string) ([]segmentStringDoc, *geomerr.Error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, geomerr.New(geomerr.InvalidInput, fmt.Sprintf("opening %s: %v", path, err))
		}
		defer f.Close()
		r = f
	}

	var docs []segmentStringDoc
	if err := json.NewDecoder(r).Decode(&docs); err != nil {
		return nil, geomerr.New(geomerr.InvalidInput, fmt.Sprintf("decoding input: %v", err))
	}
	return docs, nil
}
