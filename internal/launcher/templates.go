package launcher

import (
	"bytes"
	"fmt"
	"text/template"

	"edcstudio/internal/model"
)

// connectorImage is the EDC runtime image launched for managed connectors.
const connectorImage = "itziarmensaupc/connector:0.0.6"

// configTemplate renders the config.properties mounted into the connector
// container. The default datasource points at the shared Postgres server,
// one database per connector.
var configTemplate = template.Must(template.New("config").Parse(`edc.hostname=localhost
edc.participant.id={{.Conn.Type}}
edc.dsp.callback.address=http://edc-{{.Conn.Type}}-{{.Conn.ID}}:{{.Conn.Ports.Protocol}}/protocol
web.http.port={{.Conn.Ports.HTTP}}
web.http.path=/api
web.http.management.port={{.Conn.Ports.Management}}
web.http.management.path=/management
web.http.protocol.port={{.Conn.Ports.Protocol}}
web.http.protocol.path=/protocol
edc.transfer.proxy.token.signer.privatekey.alias=private-key
edc.transfer.proxy.token.verifier.publickey.alias=public-key
web.http.public.port={{.Conn.Ports.Public}}
web.http.public.path=/public
web.http.control.port={{.Conn.Ports.Control}}
web.http.control.path=/control
web.http.version.port={{.Conn.Ports.Version}}
web.http.version.path=/version

# Datasource used by SqlAssetIndex and SqlDataPlaneStore.
edc.datasource.default.url=jdbc:postgresql://edc_postgres:{{.PostgresPort}}/{{.DBName}}
edc.datasource.default.user={{.PostgresUser}}
edc.datasource.default.password={{.PostgresPassword}}
edc.datasource.default.driver=org.postgresql.Driver
edc.datasource.default.name=default

web.http.management.auth.type=tokenbased
web.http.management.auth.key={{.Conn.APIKey}}
{{- if eq .Conn.Type "provider"}}
edc.dataplane.proxy.public.endpoint=http://edc-{{.Conn.Type}}-{{.Conn.ID}}:{{.Conn.Ports.Public}}/public
{{- end}}
`))

// composeTemplate renders the per-connector docker-compose.yml. The network
// is external so every connector and the http-logger share it.
var composeTemplate = template.Must(template.New("compose").Parse(`services:
  {{.Conn.Type}}:
    image: ` + connectorImage + `
    platform: linux/amd64
    container_name: edc-{{.Conn.Type}}-{{.Conn.ID}}
    ports:
      - "{{.Conn.Ports.HTTP}}:{{.Conn.Ports.HTTP}}"
      - "{{.Conn.Ports.Management}}:{{.Conn.Ports.Management}}"
      - "{{.Conn.Ports.Protocol}}:{{.Conn.Ports.Protocol}}"
      - "{{.Conn.Ports.Public}}:{{.Conn.Ports.Public}}"
      - "{{.Conn.Ports.Control}}:{{.Conn.Ports.Control}}"
      - "{{.Conn.Ports.Version}}:{{.Conn.Ports.Version}}"
    volumes:
      - {{.RuntimePath}}/{{.Conn.ID}}/resources/configuration:/app/configuration
      - {{.RuntimePath}}/{{.Conn.ID}}/resources/certs:/app/certs
    environment:
      - EDC_KEYSTORE_PASSWORD={{.KeystorePassword}}
      - VIRTUAL_HOST={{.Conn.Domain}}
      - VIRTUAL_PORT={{.Conn.Ports.HTTP}}
    networks:
      - {{.NetworkName}}

networks:
  {{.NetworkName}}:
    external: true
`))

type templateData struct {
	Conn             *model.Connector
	DBName           string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	RuntimePath      string
	NetworkName      string
	KeystorePassword string
}

func renderTemplate(tpl *template.Template, data templateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", tpl.Name(), err)
	}
	return buf.Bytes(), nil
}

// databaseName is the per-connector Postgres database, edc_<type>_<id>.
func databaseName(conn *model.Connector) string {
	return fmt.Sprintf("edc_%s_%s", conn.Type, conn.ID)
}
