package launcher

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// execCommand is swapped in tests to avoid touching the docker daemon.
var execCommand = exec.CommandContext

// run executes one external command and returns its combined output.
func run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := execCommand(ctx, name, args...).CombinedOutput()
	return string(out), err
}

// composeUp boots the connector stack defined in dir.
func (l *Launcher) composeUp(ctx context.Context, dir string) error {
	cmd := execCommand(ctx, "docker", "compose", "up", "-d")
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("docker compose up: %w: %s", err, out)
	}
	return nil
}

// composeDown stops and removes the connector stack defined in dir.
func (l *Launcher) composeDown(ctx context.Context, dir string) error {
	cmd := execCommand(ctx, "docker", "compose", "down")
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("docker compose down: %w: %s", err, out)
	}
	return nil
}

// ensureNetwork creates the shared docker network when it does not exist.
func (l *Launcher) ensureNetwork(ctx context.Context) error {
	out, err := run(ctx, "docker", "network", "ls", "--format", "{{.Name}}")
	if err != nil {
		return fmt.Errorf("docker network ls: %w: %s", err, out)
	}

	for _, name := range strings.Split(strings.TrimSpace(out), "\n") {
		if name == l.docker.NetworkName {
			return nil
		}
	}

	if out, err := run(ctx, "docker", "network", "create", l.docker.NetworkName); err != nil {
		return fmt.Errorf("docker network create: %w: %s", err, out)
	}
	l.log.WithField("network", l.docker.NetworkName).Info("docker network created")
	return nil
}
