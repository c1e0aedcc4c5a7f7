/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/mmuldo/threadmatch/catalog"
	"github.com/mmuldo/threadmatch/palette"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "threadmatch",
	Short: "Matches image colors to embroidery threads",
	Long: `threadmatch maps colors onto a fixed catalog of thread colors by
perceptual similarity. It can match single colors, or reduce an image to a
handful of colors and build a thread legend for a stitch pattern.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if e := rootCmd.Execute(); e != nil {
		fmt.Fprintln(os.Stderr, e)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.threadmatch.yaml)")
	rootCmd.PersistentFlags().StringP("palette", "p", "", "thread catalog: a .json/.yaml/.csv file or a sqlite:/postgres:// database")
	rootCmd.PersistentFlags().String("query", "", "SQL query for database catalogs")
	rootCmd.PersistentFlags().StringP("method", "m", "cie76", "distance method: cie76, cie94, cie94-textile, rgb or ciede2000")
	rootCmd.PersistentFlags().BoolP("unique", "u", true, "prefer a different thread for each color")

	for _, k := range []string{"palette", "query", "method", "unique"} {
		viper.BindPFlag(k, rootCmd.PersistentFlags().Lookup(k))
	}
	viper.SetDefault("legends", filepath.Join("~", ".threadmatch", "legends"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, e := homedir.Dir()
		if e != nil {
			fmt.Fprintln(os.Stderr, e)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".threadmatch")
	}

	viper.SetEnvPrefix("threadmatch")
	viper.AutomaticEnv()

	if e := viper.ReadInConfig(); e == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadPalette loads the configured catalog, or the built-in one if none is set.
func loadPalette(ctx context.Context) (palette.Palette, error) {
	src := viper.GetString("palette")
	if src == "" {
		return catalog.Default(), nil
	}

	if isDatabase(src) {
		db, e := catalog.Open(ctx, src)
		if e != nil {
			return nil, e
		}
		defer db.Close()
		return catalog.LoadSQL(ctx, db, viper.GetString("query"))
	}

	path, e := homedir.Expand(src)
	if e != nil {
		return nil, e
	}
	return catalog.Load(path)
}

func isDatabase(src string) bool {
	for _, prefix := range []string{"postgres://", "postgresql://", "sqlite:"} {
		if strings.HasPrefix(src, prefix) {
			return true
		}
	}
	switch strings.ToLower(filepath.Ext(src)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

func method() (palette.Method, error) {
	return palette.ParseMethod(viper.GetString("method"))
}

// legendsDir is where create saves legends and render looks for them.
func legendsDir() (string, error) {
	return homedir.Expand(viper.GetString("legends"))
}
