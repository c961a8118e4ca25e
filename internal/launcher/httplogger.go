package launcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	loggerContainer = "http-logger"
	loggerImage     = "http-request-logger"
)

// StartHTTPLogger makes sure the http-logger sink container is running:
// reuse a running one, restart an exited one, otherwise build the image and
// run a fresh container on the shared network.
func (l *Launcher) StartHTTPLogger(ctx context.Context) error {
	out, err := run(ctx, "docker", "ps", "--filter", "name="+loggerContainer, "--filter", "status=running", "-q")
	if err == nil && strings.TrimSpace(out) != "" {
		l.log.Info("http-logger container already running")
		return nil
	}

	out, err = run(ctx, "docker", "ps", "-a", "--filter", "name="+loggerContainer, "--filter", "status=exited", "-q")
	if err == nil && strings.TrimSpace(out) != "" {
		if out, err := run(ctx, "docker", "start", loggerContainer); err != nil {
			return fmt.Errorf("docker start %s: %w: %s", loggerContainer, err, out)
		}
		l.log.Info("http-logger container restarted")
		return nil
	}

	// The image builds cmd/httplogger, so the build context is the repo root.
	dockerfile := filepath.Join("util", "http-request-logger", "Dockerfile")
	if out, err := run(ctx, "docker", "build", "-t", loggerImage, "-f", dockerfile, "."); err != nil {
		return fmt.Errorf("docker build %s: %w: %s", loggerImage, err, out)
	}

	portMapping := l.docker.LoggerPort + ":" + l.docker.LoggerPort
	if out, err := run(ctx, "docker", "run", "-d",
		"--name", loggerContainer,
		"--network", l.docker.NetworkName,
		"-p", portMapping,
		loggerImage,
	); err != nil {
		return fmt.Errorf("docker run %s: %w: %s", loggerContainer, err, out)
	}

	l.log.Info("http-logger container created")
	return nil
}

// StopHTTPLogger force-removes the http-logger container.
func (l *Launcher) StopHTTPLogger(ctx context.Context) error {
	if out, err := run(ctx, "docker", "rm", "-f", loggerContainer); err != nil {
		return fmt.Errorf("docker rm %s: %w: %s", loggerContainer, err, out)
	}
	return nil
}
