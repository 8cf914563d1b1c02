// Command easeplot renders the built-in easing modes as charts, one file per
// family (Quad, Cubic, Bounce, ...), each showing the In, Out and InOut
// variants over progress 0 to 1.
//
//	easeplot -out plots -format svg
//	easeplot -family Back,Elastic
package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot/vg"
)

func main() {
	out := flag.String("out", "easeplot", "output directory")
	format := flag.String("format", "png", "image format: png, svg or pdf")
	samples := flag.Int("samples", 200, "samples per curve")
	families := flag.String("family", "", "comma-separated families to plot (default all)")
	size := flag.Float64("size", 4, "chart width and height in inches")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", *out).Msg("easeplot_mkdir")
	}

	groups := groupFamilies()
	var selected []string
	if *families != "" {
		selected = strings.Split(*families, ",")
	} else {
		selected = familyNames(groups)
	}

	for _, name := range selected {
		name = strings.TrimSpace(name)
		modes, ok := groups[name]
		if !ok {
			log.Fatal().Str("family", name).Strs("known", familyNames(groups)).Msg("easeplot_unknown_family")
		}
		p, err := plotFamily(name, modes, *samples)
		if err != nil {
			log.Fatal().Err(err).Str("family", name).Msg("easeplot_plot")
		}
		path := filepath.Join(*out, strings.ToLower(name)+"."+*format)
		if err := p.Save(vg.Length(*size)*vg.Inch, vg.Length(*size)*vg.Inch, path); err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("easeplot_save")
		}
		log.Info().Str("family", name).Str("path", path).Int("curves", len(modes)).Msg("easeplot_saved")
	}
}
