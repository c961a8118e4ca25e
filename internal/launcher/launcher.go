// Package launcher provisions the runtime of managed connectors: generated
// configuration and certificates, a per-connector Postgres database, docker
// compose orchestration and the http-logger sink container.
package launcher

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"edcstudio/internal/config"
	"edcstudio/internal/database"
	"edcstudio/internal/logging"
	"edcstudio/internal/model"
)

// ErrRuntimeMissing reports a stop request for a connector whose runtime
// directory does not exist.
var ErrRuntimeMissing = errors.New("runtime folder does not exist")

// keystorePassword protects the generated PKCS12 keystores. One random
// password per process, shared by all connectors it launches.
var keystorePassword = newKeystorePassword()

func newKeystorePassword() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("keystore password: %v", err))
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// Runner is the lifecycle surface the connector and transfer services use.
type Runner interface {
	Start(ctx context.Context, conn *model.Connector) error
	Stop(ctx context.Context, connectorID string) error
	StartHTTPLogger(ctx context.Context) error
	StopHTTPLogger(ctx context.Context) error
}

// Launcher implements Runner against the local docker daemon and the shared
// Postgres server.
type Launcher struct {
	docker     config.DockerConfig
	pg         config.PostgresConfig
	initScript string
	log        *logrus.Logger

	// openDB is swapped for a sqlmock opener in tests.
	openDB func(dbName string) (*sql.DB, error)
}

var _ Runner = (*Launcher)(nil)

// New creates a Launcher. The init script at config/init.sql seeds each
// connector database with the EDC schema.
func New(docker config.DockerConfig, pg config.PostgresConfig) *Launcher {
	return &Launcher{
		docker:     docker,
		pg:         pg,
		initScript: filepath.Join("config", "init.sql"),
		log:        logging.Get(),
		openDB: func(dbName string) (*sql.DB, error) {
			return database.OpenPostgres(pg, dbName)
		},
	}
}

// Start provisions and boots a managed connector: runtime files, certs, its
// Postgres database and finally the compose stack.
func (l *Launcher) Start(ctx context.Context, conn *model.Connector) error {
	basePath := filepath.Join(l.docker.RuntimePath, conn.ID)

	if err := l.ensureNetwork(ctx); err != nil {
		return err
	}
	if err := l.generateFiles(ctx, conn, basePath); err != nil {
		return err
	}
	if err := l.provisionDatabase(ctx, databaseName(conn)); err != nil {
		return err
	}
	if err := l.composeUp(ctx, basePath); err != nil {
		return err
	}

	l.log.WithField("connector_id", conn.ID).Info("connector started")
	return nil
}

// Stop tears down the compose stack and removes the runtime directory.
func (l *Launcher) Stop(ctx context.Context, connectorID string) error {
	basePath := filepath.Join(l.docker.RuntimePath, connectorID)
	if _, err := os.Stat(basePath); os.IsNotExist(err) {
		return ErrRuntimeMissing
	}

	if err := l.composeDown(ctx, basePath); err != nil {
		l.log.WithError(err).WithField("connector_id", connectorID).Warn("compose down failed")
	}
	if err := os.RemoveAll(basePath); err != nil {
		return fmt.Errorf("remove runtime dir: %w", err)
	}

	l.log.WithField("connector_id", connectorID).Info("connector stopped")
	return nil
}

// generateFiles writes config.properties, the PKCS12 keystore and the
// docker-compose.yml for one connector under basePath.
func (l *Launcher) generateFiles(ctx context.Context, conn *model.Connector, basePath string) error {
	if conn.Ports == nil {
		return errors.New("connector ports not configured")
	}

	configPath := filepath.Join(basePath, "resources", "configuration")
	certsPath := filepath.Join(basePath, "resources", "certs")
	for _, dir := range []string{configPath, certsPath} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create runtime dir: %w", err)
		}
	}

	data := templateData{
		Conn:             conn,
		DBName:           databaseName(conn),
		PostgresPort:     l.pg.Port,
		PostgresUser:     l.pg.User,
		PostgresPassword: l.pg.Password,
		RuntimePath:      l.docker.RuntimePath,
		NetworkName:      l.docker.NetworkName,
		KeystorePassword: keystorePassword,
	}

	props, err := renderTemplate(configTemplate, data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(configPath, "config.properties"), props, 0o644); err != nil {
		return fmt.Errorf("write config.properties: %w", err)
	}

	if err := l.generateKeystore(ctx, conn.ID, filepath.Join(certsPath, "cert.pfx")); err != nil {
		return err
	}

	compose, err := renderTemplate(composeTemplate, data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(basePath, "docker-compose.yml"), compose, 0o644); err != nil {
		return fmt.Errorf("write docker-compose.yml: %w", err)
	}
	return nil
}

// generateKeystore creates the PKCS12 keystore the connector signs transfer
// proxy tokens with. The key alias must stay "private-key" to match the
// aliases in config.properties.
func (l *Launcher) generateKeystore(ctx context.Context, connectorID, certPath string) error {
	if err := os.Remove(certPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stale keystore: %w", err)
	}

	out, err := run(ctx, "keytool", "-genkeypair",
		"-alias", "private-key",
		"-keyalg", "RSA",
		"-keysize", "2048",
		"-keystore", certPath,
		"-storetype", "PKCS12",
		"-storepass", keystorePassword,
		"-keypass", keystorePassword,
		"-dname", "CN="+connectorID,
	)
	if err != nil {
		return fmt.Errorf("keytool failed: %w: %s", err, out)
	}
	return nil
}
