// Command scoresheet extracts a basketball roster from a saved OCR
// record and prints the result as JSON.
//
// The input file holds the normalized OCR record produced by one of
// the providers (see the ocr and docai packages), for example:
//
//	scoresheet --input game7.ocr.json --pretty
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	scoresheet "github.com/ejberdin-coachiq/coachiq-backend-sub000"
	"github.com/ejberdin-coachiq/coachiq-backend-sub000/model"
)

func main() {
	cmd := &cli.Command{
		Name:  "scoresheet",
		Usage: "Extract a basketball roster from a saved OCR record",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "OCR record JSON file",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Indent the JSON output",
			},
			&cli.FloatFlag{
				Name:  "row-tolerance",
				Usage: "Row clustering band as a fraction of page height",
			},
			&cli.FloatFlag{
				Name:  "column-tolerance",
				Usage: "Anchor matching window as a fraction of page width",
			},
			&cli.FloatFlag{
				Name:  "foul-confidence-drop",
				Usage: "Confidence drop threshold for inferred foul marks",
			},
		},
		Action: extract,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func extract(_ context.Context, cmd *cli.Command) error {
	data, err := os.ReadFile(cmd.String("input"))
	if err != nil {
		return errors.Wrap(err, "reading OCR record")
	}

	var doc model.OCRDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, "decoding OCR record")
	}

	parser := scoresheet.NewParser()
	if v := cmd.Float("row-tolerance"); v > 0 {
		parser.RowTolerance(v)
	}
	if v := cmd.Float("column-tolerance"); v > 0 {
		parser.ColumnTolerance(v)
	}
	if v := cmd.Float("foul-confidence-drop"); v > 0 {
		parser.FoulConfidenceDrop(v)
	}

	result := parser.Parse(&doc)

	var out []byte
	if cmd.Bool("pretty") {
		out, err = json.MarshalIndent(result, "", "  ")
	} else {
		out, err = json.Marshal(result)
	}
	if err != nil {
		return errors.Wrap(err, "encoding result")
	}

	if path := cmd.String("output"); path != "" {
		if err := os.WriteFile(path, append(out, '\n'), 0644); err != nil {
			return errors.Wrap(err, "writing output file")
		}
		fmt.Fprintf(os.Stderr, "Result written to %s\n", path)
		return nil
	}
	fmt.Println(string(out))
	return nil
}
