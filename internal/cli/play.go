package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"organelle-quiz/internal/transport/terminal"
)

// NewPlayCmd runs a single quiz session on the terminal.
func NewPlayCmd(configPath *string) *cobra.Command {
	var catalogID string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the quiz in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), *configPath, catalogID)
		},
	}
	cmd.Flags().StringVar(&catalogID, "catalog", "", "catalog to play (defaults to quiz.catalog_id)")
	return cmd
}

func runPlay(ctx context.Context, configPath, catalogID string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := loadRuntime(ctx, configPath)
	if err != nil {
		return err
	}
	defer rt.Close()

	renderer := terminal.NewRenderer(os.Stdout)
	controller, err := rt.service.Open(ctx, "terminal", catalogID, renderer)
	if err != nil {
		return err
	}
	defer rt.service.Close("terminal", controller)

	return terminal.Run(ctx, controller, renderer, os.Stdin)
}
