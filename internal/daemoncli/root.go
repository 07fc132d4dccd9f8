// Package daemoncli builds the minigrepd command: flags, validation and the server launch
package daemoncli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/MiniGrep/internal/appmode"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/processor"
	"github.com/UnendingLoop/MiniGrep/internal/transport"
	"github.com/spf13/cobra"
)

var errEmptyAddress = errors.New("empty server address")

func NewRootCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:          "minigrepd",
		Short:        "HTTP service running the minigrep line matcher",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				return errEmptyAddress
			}

			// готовим слушатель прерываний - контекст для всего приложения
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := transport.NewServer(addr, processor.Processor{})
			return appmode.RunServer(ctx, stop, srv)
		},
	}

	cmd.Flags().StringVarP(&addr, "address", "a", model.DefaultServerAddress, "address for minigrepd to listen on")
	return cmd
}
