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

// threadsCmd represents the threads command
var threadsCmd = &cobra.Command{
	Use:   "threads",
	Short: "Lists the threads in the catalog",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		p, e := loadPalette(context.Background())
		if e != nil {
			log.Fatal(e)
		}
		if e := listThreads(os.Stdout, p); e != nil {
			log.Fatal(e)
		}
	},
}

func init() {
	rootCmd.AddCommand(threadsCmd)
}

func listThreads(w io.Writer, p palette.Palette) error {
	for _, t := range p {
		if _, e := fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.RGB, t.Name); e != nil {
			return e
		}
	}
	return nil
}
