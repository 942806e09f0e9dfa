// Command laporctl adalah CLI operator: cek peringatan, ekspor laporan, dan
// cocokkan petugas langsung ke API Laravel tanpa lewat server BFF.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"laporkampus_backend/internals/configs"
	"laporkampus_backend/internals/laravel"
)

var (
	apiURL     string
	token      string
	policyFile string
	rosterFile string
	timeout    time.Duration
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "laporctl",
	Short: "CLI operator LaporKampus",
	Long: `Alat bantu operator LaporKampus.

Subcommand:
  warnings - tampilkan laporan yang terlambat ditangani
  export   - tulis laporan + peringatan ke file XLSX/CSV
  match    - cocokkan laporan dengan petugas penanggung jawab`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if token == "" {
			token = os.Getenv("LAPOR_TOKEN")
		}
		if token == "" {
			return fmt.Errorf("token Laravel wajib: --token atau LAPOR_TOKEN")
		}
		return nil
	},
}

func init() {
	configs.LoadEnv()

	rootCmd.PersistentFlags().StringVar(&apiURL, "api", configs.LaravelAPIURL, "Base URL API Laravel (atau LARAVEL_API_URL)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token Laravel (atau LAPOR_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&policyFile, "policy", os.Getenv("POLICY_FILE"), "File YAML policy (default: bawaan)")
	rootCmd.PersistentFlags().StringVar(&rosterFile, "roster", os.Getenv("PERSONNEL_FILE"), "File YAML roster petugas (default: bawaan)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Batas waktu operasi")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug ke stderr")

	rootCmd.AddCommand(warningsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(matchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newClient() *laravel.Client {
	log := zap.NewNop()
	if verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			log = l
		}
	}
	return laravel.NewClient(apiURL, laravel.WithLogger(log))
}

func opContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}
