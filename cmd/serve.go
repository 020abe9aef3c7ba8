package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/prepai/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.Server.Addr
	}
	gin.SetMode(cfg.Server.Mode)

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prep, err := newPrepService(ctx, st.EventRepo())
	if err != nil {
		return err
	}

	srv := server.New(server.Deps{
		Prep:      prep,
		Sessions:  st.SessionRepo(),
		Questions: st.QuestionRepo(),
		Logger:    logger,
	})

	logger.Info("starting server",
		zap.String("addr", addr),
		zap.String("provider", cfg.LLM.Provider),
		zap.Bool("structured_output", cfg.Generation.StructuredOutput))
	return srv.Run(ctx, addr, cfg.Server.ShutdownTimeout.Duration)
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides [server] addr and PREPAI_ADDR)")
}
