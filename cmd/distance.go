package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mmuldo/threadmatch/palette"
	"github.com/spf13/cobra"
)

var allMethods bool

// distanceCmd represents the distance command
var distanceCmd = &cobra.Command{
	Use:   "distance HEX THREAD",
	Short: "Shows how far a color is from a thread",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		p, e := loadPalette(context.Background())
		if e != nil {
			log.Fatal(e)
		}
		ms := []palette.Method{palette.MethodCIE76, palette.MethodCIE94, palette.MethodCIE94Textile, palette.MethodRGB, palette.MethodCIEDE2000}
		if !allMethods {
			m, e := method()
			if e != nil {
				log.Fatal(e)
			}
			ms = []palette.Method{m}
		}

		if e := distance(os.Stdout, p, args[0], args[1], ms); e != nil {
			log.Fatal(e)
		}
	},
}

func init() {
	rootCmd.AddCommand(distanceCmd)

	distanceCmd.Flags().BoolVarP(&allMethods, "all", "a", false, "show every distance method")
}

func distance(w io.Writer, p palette.Palette, hex, id string, ms []palette.Method) error {
	c, ok := palette.ParseHex(hex)
	if !ok {
		return fmt.Errorf("%q is not a hex color", hex)
	}
	t, ok := p.Lookup(id)
	if !ok {
		return fmt.Errorf("no thread %q in catalog", id)
	}

	for _, m := range ms {
		if _, e := fmt.Fprintf(w, "%s\t%.4f\n", m, palette.Distance(c, t, m)); e != nil {
			return e
		}
	}
	return nil
}
