// Package daemon runs the battery monitor in the foreground, together
// with a small status API served over a unix socket.
package daemon

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	ginlogrus "github.com/toorop/gin-logrus"

	"github.com/cannblw/battband/pkg/events"
	"github.com/cannblw/battband/pkg/monitor"
	"github.com/cannblw/battband/pkg/notify"
	"github.com/cannblw/battband/pkg/power"
)

var (
	mon *monitor.Monitor
	hub *events.Hub
)

func setupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginlogrus.Logger(logrus.StandardLogger()))
	router.GET("/status", getStatus)
	router.GET("/version", getVersion)
	router.POST("/check", forceCheck)
	router.GET("/events", streamEvents)

	return router
}

// Run starts the monitor loop and serves the status API until SIGINT
// or SIGTERM arrives. Passing an empty socket path disables the API.
func Run(socketPath string, maxInterval time.Duration) error {
	hub = events.NewHub()

	reader := newReader()
	notifier := notify.Detect()
	logrus.WithFields(logrus.Fields{
		"notifier": notifier.Name(),
	}).Debug("selected notifier")

	mon = monitor.New(reader, notifier, monitor.Options{
		MaxInterval: maxInterval,
		Hub:         hub,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var srv *http.Server
	var l net.Listener
	if socketPath != "" {
		router := setupRoutes()
		srv = &http.Server{Handler: router}

		// Remove a stale socket from a previous run.
		if err := os.Remove(socketPath); err != nil && !os.IsNotExist(err) {
			logrus.Warnf("failed to remove stale socket: %v", err)
		}

		var err error
		l, err = net.Listen("unix", socketPath)
		if err != nil {
			return err
		}

		go func() {
			logrus.Infof("status api listening on %s", l.Addr().String())
			if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logrus.Fatal(err)
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		mon.Run(ctx)
		close(done)
	}()

	// Handle common process-killing signals, so we can shut down:
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigc
	logrus.Infof("caught signal %q: shutting down", sig)

	cancel()

	if srv != nil {
		logrus.Info("shutting down status api")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.Errorf("failed to shutdown status api: %v", err)
		}
		shutdownCancel()
		_ = l.Close()
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		// The loop may be blocked inside a dialog; leaving it behind is
		// fine since there is no state to clean up.
		logrus.Debug("monitor loop did not stop in time")
	}

	logrus.Info("exiting")
	return nil
}

// newReader prefers the native power API and keeps pmset scraping as a
// last resort.
func newReader() power.Reader {
	system := power.NewSystemReader()

	pmset := power.NewPmsetReader()
	if pmset.Available() {
		return power.NewFallbackReader(system, pmset)
	}

	return system
}
