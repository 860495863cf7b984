package cmd

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/bingoland/bingosmith/internal/card"
	"github.com/bingoland/bingosmith/internal/config"
	"github.com/bingoland/bingosmith/internal/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve bingo cards over HTTP",
	Long: `Serve starts a small web page with a seed box and a Generate button,
plus a /card.png endpoint that renders cards on the fly:

  GET /card.png?seed=42&rows=5&cols=5

The listen address comes from --addr, or the BINGOSMITH_ADDR environment
variable (default :8080). Words come from the configured word list or
--input, fixed for the lifetime of the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		addr, _ := cmd.Flags().GetString("addr")

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		list, err := resolveWords(cfg, input)
		if err != nil {
			return err
		}

		opts, err := cfg.CardOptions()
		if err != nil {
			return err
		}
		gen, err := card.NewGenerator(opts)
		if err != nil {
			return err
		}

		srvCfg, err := server.FromEnv()
		if err != nil {
			return err
		}
		if addr != "" {
			srvCfg.Addr = addr
		}

		srv := server.New(gen, list)
		log.Printf("Serving keyword bingo on %s (%d words from %s)", srvCfg.Addr, len(list.Words), list.Source)
		return http.ListenAndServe(srvCfg.Addr, srv.Routes())
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("input", "i", "", "word list to draw from (library name or file path)")
	serveCmd.Flags().String("addr", "", "listen address (overrides BINGOSMITH_ADDR)")
}
