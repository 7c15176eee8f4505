// Command clinic serves or exports the Ritu Diagnostic website.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	clinic "github.com/13harshit/ri-dianosic"
	"github.com/13harshit/ri-dianosic/views"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "clinic",
	Short:         "Ritu Diagnostic website",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func viewFuncs() clinic.ViewFuncs {
	return clinic.ViewFuncs{
		Home:        views.Home,
		Post:        views.Post,
		NotFound:    views.NotFound,
		ServerError: views.ServerError,
		AdminLogin:  views.AdminLogin,
		AdminInbox:  views.AdminInbox,
	}
}

// loadConfig reads the environment and applies flags set on cmd.
func loadConfig(cmd *cobra.Command) (clinic.SiteConfig, error) {
	cfg, err := clinic.LoadConfig()
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr, _ = flags.GetString("addr")
	}
	if flags.Changed("url") {
		cfg.URL, _ = flags.GetString("url")
	}
	if flags.Changed("static") {
		cfg.StaticDir, _ = flags.GetString("static")
	}
	if flags.Changed("db") {
		cfg.DatabasePath, _ = flags.GetString("db")
	}
	if flags.Changed("h2c") {
		cfg.H2C, _ = flags.GetBool("h2c")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().String("url", "", "canonical site URL (overrides SITE_URL)")
	rootCmd.PersistentFlags().String("static", "", "public asset directory (overrides STATIC_DIR)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error, off")
}
