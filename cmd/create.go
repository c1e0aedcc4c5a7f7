package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmuldo/threadmatch/image"
	"github.com/mmuldo/threadmatch/legend"
	"github.com/mmuldo/threadmatch/palette"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var name string

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create IMAGE",
	Short: "Creates a thread legend from an image",
	Long: `Reduces an image to a small number of colors, matches them to threads and
saves the resulting legend so it can be rendered later.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, e := loadPalette(context.Background())
		if e != nil {
			log.Fatal(e)
		}
		m, e := method()
		if e != nil {
			log.Fatal(e)
		}
		dir, e := legendsDir()
		if e != nil {
			log.Fatal(e)
		}

		l, e := create(p, args[0], viper.GetInt("colors"), viper.GetBool("unique"), m)
		if e != nil {
			log.Fatal(e)
		}
		if name != "" {
			l.Name = name
		}

		l.WriteSwatches(os.Stdout)

		path := filepath.Join(dir, l.Name+".json")
		if e := l.Save(path); e != nil {
			log.Fatal(e)
		}
		fmt.Println("legend saved to:", path)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().IntP("colors", "n", 16, "number of colors to reduce the image to")
	createCmd.Flags().StringVar(&name, "name", "", "legend name (default is the image file name)")
	viper.BindPFlag("colors", createCmd.Flags().Lookup("colors"))
}

// create builds a legend for the image at path.
func create(p palette.Palette, path string, num int, unique bool, m palette.Method) (*legend.Legend, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("no threads in catalog")
	}

	i, e := image.Load(path)
	if e != nil {
		return nil, e
	}
	q, e := image.Quantize(i, num)
	if e != nil {
		return nil, e
	}

	ranked := image.RankColors(image.GetColors(q))
	if len(ranked) == 0 {
		return nil, fmt.Errorf("image at %s has no opaque pixels", path)
	}

	l, e := legend.Build(ranked, p.MatchBatch(ranked.Colors(), unique, m))
	if e != nil {
		return nil, e
	}
	l.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	l.Source = path
	l.Method = m.String()
	l.Unique = unique
	return l, nil
}
