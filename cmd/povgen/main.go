// povgen — POV-style quote post generator.
//
// Usage:
//
//	povgen [-n <count>] [options]
//	povgen init [options]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arvhal/povgen/pkg/overlay"
	"github.com/arvhal/povgen/pkg/pipeline"
)

func main() {
	args := os.Args[1:]

	if len(args) > 0 {
		switch args[0] {
		case "init":
			if err := runInit(args[1:]); err != nil {
				fatal(err)
			}
			return
		case "help", "-help", "--help":
			printUsage()
			return
		}
	}

	if err := run(args); err != nil {
		fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("povgen", flag.ExitOnError)

	var (
		count     int
		imagesDir string
		quotes    string
		outDir    string
		fontPath  string
		stylePath string
	)

	fs.IntVar(&count, "n", 3, "Number of posts to generate")
	fs.IntVar(&count, "number", 3, "Number of posts to generate")
	fs.StringVar(&imagesDir, "images", "images", "Directory of background images")
	fs.StringVar(&quotes, "quotes", filepath.Join("quotes", "quotes.txt"), "Quotes file, one per line")
	fs.StringVar(&outDir, "o", "output", "Output directory")
	fs.StringVar(&outDir, "out", "output", "Output directory")
	fs.StringVar(&fontPath, "font", "", "Preferred TTF font path (optional)")
	fs.StringVar(&stylePath, "style", "", "Style JSON file (optional)")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	if count <= 0 {
		return fmt.Errorf("post count must be positive, got %d", count)
	}

	style := overlay.DefaultStyle()
	if stylePath != "" {
		var err error
		style, err = overlay.LoadStyle(stylePath)
		if err != nil {
			return err
		}
	}

	report, err := pipeline.Run(pipeline.Options{
		ImagesDir:  imagesDir,
		QuotesFile: quotes,
		OutputDir:  outDir,
		Count:      count,
		FontPath:   fontPath,
		Style:      style,
	})
	if err != nil {
		return err
	}

	for _, item := range report.Failed() {
		fmt.Fprintf(os.Stderr, "Warning: skipped %s: %v\n", filepath.Base(item.Source), item.Err)
	}
	fmt.Printf("Done: %d/%d posts created in %s\n", report.Produced(), count, report.OutputDir)
	return nil
}

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)

	var (
		baseDir string
		bgColor string
	)

	fs.StringVar(&baseDir, "dir", ".", "Base directory to scaffold")
	fs.StringVar(&bgColor, "color", pipeline.SampleColor, "Sample background color: hex or 'random'")

	if err := fs.Parse(args); err != nil {
		return err
	}

	imagesDir := filepath.Join(baseDir, "images")
	quotesDir := filepath.Join(baseDir, "quotes")
	outputDir := filepath.Join(baseDir, "output")

	for _, dir := range []string{imagesDir, quotesDir, outputDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	quotesFile := filepath.Join(quotesDir, "quotes.txt")
	if err := pipeline.WriteSampleQuotes(quotesFile); err != nil {
		return err
	}

	sampleBG := filepath.Join(imagesDir, "sample_dark_bg.jpg")
	if err := pipeline.WriteSampleBackground(sampleBG, bgColor); err != nil {
		return err
	}

	fmt.Printf("Created: %s, %s, %s\n", imagesDir, quotesFile, outputDir)
	fmt.Println("Add backgrounds to images/, quotes to quotes/quotes.txt, then run: povgen -n 3")
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`povgen — POV-style quote post generator

USAGE:
    povgen [-n <count>] [options]
    povgen init [options]

GENERATE:
    -n, --number <count>   Posts to generate (default: 3)
    --images <dir>         Background image directory (default: images)
    --quotes <file>        Quotes file, one per line (default: quotes/quotes.txt)
    -o, --out <dir>        Output directory (default: output)
    --font <path>          Preferred TTF font; falls back to system fonts,
                           then the embedded bold face
    --style <path>         Style JSON overriding colors, margins, sizes

INIT:
    povgen init [--dir <path>] [--color <hex|random>]
                           Create images/, quotes/, output/ with starter assets

Output files are named post_pov_NNN.jpg; the sequence resumes after the
highest index already present in the output directory.

EXAMPLES:
    povgen init
    povgen -n 5
    povgen -n 10 --images ~/backgrounds --out ~/posts
    povgen --style style.json --font /usr/share/fonts/truetype/comic/comic.ttf
`)
}
