package main

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "eaglesounds",
	Short: "Eagle Sounds event services website",
	Long: `Serves the Eagle Sounds site: brochure pages, the admin image manager
and upload endpoint, the contact form, and the live hero carousel and
smoke effects.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "eaglesounds.yml", "config file path")
}
