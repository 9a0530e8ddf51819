package daemon

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cannblw/battband/pkg/version"
)

func getStatus(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, mon.Status())
}

func getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, gin.H{
		"version":   version.Version,
		"gitCommit": version.GitCommit,
	})
}

// forceCheck runs one immediate cycle instead of waiting for the next
// scheduled one. The returned delay is informational only; the running
// loop keeps its own cadence.
func forceCheck(c *gin.Context) {
	delay, warn := mon.RunCycle()
	if warn != nil {
		logrus.Warnf("forced check: %v", warn)
	}

	resp := gin.H{
		"status":    mon.Status(),
		"nextDelay": delay.String(),
	}
	if warn != nil {
		resp["warning"] = warn.Error()
	}

	c.IndentedJSON(http.StatusOK, resp)
}

// streamEvents serves monitor events as SSE until the client leaves.
func streamEvents(c *gin.Context) {
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	c.Stream(func(_ io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(ev.Name, string(ev.Data))
			return true
		case <-heartbeat.C:
			_, _ = fmt.Fprintf(c.Writer, ": ping\n\n")
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
