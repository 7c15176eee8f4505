package main

import (
	"fmt"

	"github.com/spf13/cobra"

	clinic "github.com/13harshit/ri-dianosic"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the public site to static files",
	Long: `Writes the home page, every article, the 404 page, sitemap, feed,
robots.txt and the motion assets into the output directory. The contact
form and admin inbox need the server and are not exported.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "output directory")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	app, err := clinic.New(cfg, viewFuncs())
	if err != nil {
		return err
	}
	if err := app.Export(cmd.Context(), exportOut); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported %d articles to %s\n", len(app.Catalog.IDs()), exportOut)
	return nil
}
