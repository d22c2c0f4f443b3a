package main

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Chatternet1/Chatternet/internal/logutil"
	"github.com/Chatternet1/Chatternet/server"
	"github.com/Chatternet1/Chatternet/social"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logutil.LoggerFromViper()
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			bind := strings.TrimSpace(viper.GetString("server.bind"))
			if bind == "" {
				bind = "0.0.0.0"
			}
			port := viper.GetInt("server.port")
			if port <= 0 {
				port = 10000
			}
			dataFile := strings.TrimSpace(viper.GetString("data_file"))
			if dataFile == "" {
				dataFile = "data.json"
			}

			store := social.Open(dataFile, logger)
			_ = store.Update(func(doc *social.Document) error {
				bot, changed := social.EnsureBotAccount(doc, time.Now())
				if changed {
					logger.Info("bot_account_ready", "id", bot.ID, "email", bot.Email)
				}
				return nil
			})

			handler := server.New(store, logger, server.Config{
				StaticDir: strings.TrimSpace(viper.GetString("server.static_dir")),
			})

			addr := bind + ":" + strconv.Itoa(port)
			srv := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Info("server_start", "addr", addr, "data_file", dataFile)
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().String("bind", "0.0.0.0", "Bind address.")
	cmd.Flags().Int("port", 10000, "HTTP port to listen on.")
	cmd.Flags().String("data-file", "data.json", "Path of the JSON document file.")
	cmd.Flags().String("static-dir", "", "Directory of the demo site to serve at / (optional).")

	_ = viper.BindPFlag("server.bind", cmd.Flags().Lookup("bind"))
	_ = viper.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("data_file", cmd.Flags().Lookup("data-file"))
	_ = viper.BindPFlag("server.static_dir", cmd.Flags().Lookup("static-dir"))

	return cmd
}
