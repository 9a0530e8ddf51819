package client

import (
	"encoding/json"

	pkgerrors "github.com/pkg/errors"

	"github.com/cannblw/battband/pkg/monitor"
)

// GetStatus returns the monitor's current status snapshot.
func (c *Client) GetStatus() (*monitor.Status, error) {
	ret, err := c.Get("/status")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get status")
	}

	var status monitor.Status
	if err := json.Unmarshal([]byte(ret), &status); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to decode status")
	}

	return &status, nil
}

// GetVersion returns the monitor's version and commit.
func (c *Client) GetVersion() (string, string, error) {
	ret, err := c.Get("/version")
	if err != nil {
		return "", "", pkgerrors.Wrapf(err, "failed to get version")
	}

	var v struct {
		Version   string `json:"version"`
		GitCommit string `json:"gitCommit"`
	}
	if err := json.Unmarshal([]byte(ret), &v); err != nil {
		return "", "", pkgerrors.Wrapf(err, "failed to decode version")
	}

	return v.Version, v.GitCommit, nil
}

// ForceCheck asks the monitor to run one battery check right now. It
// returns the resulting status snapshot and, when an alert could not be
// displayed, a non-empty recoverable warning.
func (c *Client) ForceCheck() (*monitor.Status, string, error) {
	ret, err := c.Post("/check", "")
	if err != nil {
		return nil, "", pkgerrors.Wrapf(err, "failed to force a check")
	}

	var resp struct {
		Status  monitor.Status `json:"status"`
		Warning string         `json:"warning"`
	}
	if err := json.Unmarshal([]byte(ret), &resp); err != nil {
		return nil, "", pkgerrors.Wrapf(err, "failed to decode check response")
	}

	return &resp.Status, resp.Warning, nil
}
