package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edcstudio/internal/model"
)

func testConnector(ctype string) *model.Connector {
	return &model.Connector{
		ID:     "65a000000000000000000001",
		Name:   "edc-one",
		Type:   ctype,
		APIKey: "test-key",
		Domain: "edc-one.example.com",
		Mode:   model.ConnectorModeManaged,
		Ports: &model.PortConfig{
			HTTP:       19191,
			Management: 19193,
			Protocol:   19194,
			Control:    19192,
			Public:     19291,
			Version:    19195,
		},
	}
}

func testData(conn *model.Connector) templateData {
	return templateData{
		Conn:             conn,
		DBName:           databaseName(conn),
		PostgresPort:     "5432",
		PostgresUser:     "postgres",
		PostgresPassword: "admin",
		RuntimePath:      "runtime",
		NetworkName:      "edc-network",
		KeystorePassword: "kspass",
	}
}

func TestRenderConfigProvider(t *testing.T) {
	conn := testConnector(model.ConnectorTypeProvider)
	out, err := renderTemplate(configTemplate, testData(conn))
	require.NoError(t, err)
	props := string(out)

	assert.Contains(t, props, "edc.participant.id=provider")
	assert.Contains(t, props, "edc.dsp.callback.address=http://edc-provider-65a000000000000000000001:19194/protocol")
	assert.Contains(t, props, "web.http.management.port=19193")
	assert.Contains(t, props, "edc.datasource.default.url=jdbc:postgresql://edc_postgres:5432/edc_provider_65a000000000000000000001")
	assert.Contains(t, props, "web.http.management.auth.type=tokenbased")
	assert.Contains(t, props, "web.http.management.auth.key=test-key")
	assert.Contains(t, props, "edc.dataplane.proxy.public.endpoint=http://edc-provider-65a000000000000000000001:19291/public")
}

func TestRenderConfigConsumerOmitsProxyEndpoint(t *testing.T) {
	conn := testConnector(model.ConnectorTypeConsumer)
	out, err := renderTemplate(configTemplate, testData(conn))
	require.NoError(t, err)

	assert.NotContains(t, string(out), "edc.dataplane.proxy.public.endpoint")
}

func TestRenderCompose(t *testing.T) {
	conn := testConnector(model.ConnectorTypeProvider)
	out, err := renderTemplate(composeTemplate, testData(conn))
	require.NoError(t, err)
	compose := string(out)

	assert.Contains(t, compose, "image: "+connectorImage)
	assert.Contains(t, compose, "container_name: edc-provider-65a000000000000000000001")
	assert.Contains(t, compose, `"19191:19191"`)
	assert.Contains(t, compose, "runtime/65a000000000000000000001/resources/configuration:/app/configuration")
	assert.Contains(t, compose, "EDC_KEYSTORE_PASSWORD=kspass")
	assert.Contains(t, compose, "VIRTUAL_HOST=edc-one.example.com")
	assert.Contains(t, compose, "VIRTUAL_PORT=19191")
	assert.Contains(t, compose, "external: true")
}

func TestDatabaseName(t *testing.T) {
	conn := testConnector(model.ConnectorTypeConsumer)
	assert.Equal(t, "edc_consumer_65a000000000000000000001", databaseName(conn))
}
