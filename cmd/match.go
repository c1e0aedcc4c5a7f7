package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mmuldo/threadmatch/palette"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match HEX...",
	Short: "Matches colors to threads",
	Long: `Matches one or more hex colors (RRGGBB or #RRGGBB) to the closest threads
in the catalog. With --unique, colors are given different threads where the
catalog allows it.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, e := loadPalette(context.Background())
		if e != nil {
			log.Fatal(e)
		}
		m, e := method()
		if e != nil {
			log.Fatal(e)
		}

		if e := match(os.Stdout, p, args, viper.GetBool("unique"), m); e != nil {
			log.Fatal(e)
		}
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

// match prints one line per parseable color. Colors that don't parse are
// skipped with a warning.
func match(w io.Writer, p palette.Palette, args []string, unique bool, m palette.Method) error {
	colors := make([]palette.RGB, 0, len(args))
	for _, a := range args {
		c, ok := palette.ParseHex(a)
		if !ok {
			log.Printf("skipping %q: not a hex color", a)
			continue
		}
		colors = append(colors, c)
	}

	ts := p.MatchBatch(colors, unique, m)
	if len(ts) == 0 && len(colors) > 0 {
		return fmt.Errorf("no threads in catalog")
	}
	for i, t := range ts {
		d := palette.Distance(colors[i], t, m)
		if _, e := fmt.Fprintf(w, "%s -> %s %s %s (%.2f)\n", colors[i], t.ID, t.RGB, t.Name, d); e != nil {
			return e
		}
	}
	return nil
}
