package appmode

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

// RunServer держит srv запущенным до отмены ctx. Если сервер упал сам, вызывается stop.
func RunServer(ctx context.Context, stop context.CancelFunc, srv *http.Server) error {
	srvErr := make(chan error, 1)

	// запуск сервера
	go func() {
		log.Printf("minigrepd running on %s", srv.Addr)
		err := srv.ListenAndServe()
		if err != nil {
			switch {
			case errors.Is(err, http.ErrServerClosed):
				log.Println("Server gracefully stopping...")
			default:
				log.Printf("Server stopped: %v", err)
				srvErr <- err
				stop()
			}
		}
	}()

	<-ctx.Done()

	// Закрытие всех соединений сервера
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown minigrepd %q correctly: %q", srv.Addr, err.Error())
		return err
	}
	log.Printf("minigrepd %q server is closed.", srv.Addr)

	select {
	case err := <-srvErr:
		return err
	default:
		return nil
	}
}
