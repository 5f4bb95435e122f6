package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/aramhealth/hms_backend/cmd/http"
	systemcmd "github.com/aramhealth/hms_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "hms",
	Short: "Hospital records backend: patients, doctors, departments and activity logs.",
	Long: `HMS is the hospital records backend. It owns patient, doctor, department
and partner-contact records, enforces the clinical validation rules around
them, and keeps an append-only activity log per patient.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
