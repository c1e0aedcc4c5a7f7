/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/mmuldo/threadmatch/legend"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	out string
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render LEGEND",
	Short: "Renders a saved legend through a template",
	Long: `Renders a legend saved by create. LEGEND is either the legend's name or a
path to its JSON file. The template is a pongo2 (Django-style) template; without
one a plain text legend is printed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir, e := legendsDir()
		if e != nil {
			log.Fatal(e)
		}
		tpl, e := homedir.Expand(viper.GetString("template"))
		if e != nil {
			log.Fatal(e)
		}

		o, e := render(dir, args[0], tpl)
		if e != nil {
			log.Fatal(e)
		}

		if out == "" {
			os.Stdout.WriteString(o)
			return
		}
		if e := ioutil.WriteFile(out, []byte(o), 0644); e != nil {
			log.Fatal(e)
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("template", "t", "", "template file")
	renderCmd.Flags().StringVarP(&out, "out", "o", "", "output file (default is stdout)")
	viper.BindPFlag("template", renderCmd.Flags().Lookup("template"))
}

// render loads a legend by name from dir, or by path, and executes tpl
// against it. An empty tpl uses the default text template.
func render(dir, ref, tpl string) (string, error) {
	path := ref
	if _, e := os.Stat(path); e != nil {
		path = filepath.Join(dir, ref+".json")
	}

	l, e := legend.Read(path)
	if e != nil {
		return "", e
	}

	if tpl == "" {
		return l.Render(legend.DefaultTemplate)
	}
	return l.RenderFile(tpl)
}
