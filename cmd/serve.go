package cmd

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/FernBytes/sheetnorm-cli/internal/api"
	"github.com/FernBytes/sheetnorm-cli/internal/normalize"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON tool server for an external agent",
	Long: `serve exposes analyze/mapping/transform/validate as JSON endpoints so an
orchestrating agent can drive the pipeline remotely. The server hosts a single
processing session; run one server per file when sessions must be isolated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		addr := serveAddr
		if addr == "" {
			addr = c.ServeAddr
		}
		sess := normalize.NewSession(normalize.WithSampleSize(c.SampleSize))
		router := api.NewRouter(api.NewHandler(sess))
		log.Printf("sheetnorm tool server listening on %s", addr)
		return http.ListenAndServe(addr, router)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config serve_addr)")
}
