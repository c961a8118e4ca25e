package model

// Connector roles, states and modes. A connector is either a data provider
// or a consumer; managed connectors run in Docker containers provisioned by
// this backend, remote connectors are reached through stored endpoint URLs.
const (
	ConnectorTypeProvider = "provider"
	ConnectorTypeConsumer = "consumer"

	ConnectorStateRunning = "running"
	ConnectorStateStopped = "stopped"

	ConnectorModeManaged = "managed"
	ConnectorModeRemote  = "remote"
)

// PortConfig is the port layout of a managed EDC connector instance. Each
// connector exposes separate ports for its HTTP, management, protocol,
// control, public and version interfaces.
type PortConfig struct {
	HTTP       int `json:"http" bson:"http"`
	Management int `json:"management" bson:"management"`
	Protocol   int `json:"protocol" bson:"protocol"`
	Control    int `json:"control" bson:"control"`
	Public     int `json:"public" bson:"public"`
	Version    int `json:"version" bson:"version"`
}

// Endpoints holds the URLs exposed by a remote connector.
type Endpoints struct {
	Management string `json:"management" bson:"management"`
	Protocol   string `json:"protocol,omitempty" bson:"protocol,omitempty"`
}

// Connector represents an Eclipse Dataspace Connector instance registered
// with the backend. This is a pure domain model; the repository layer maps
// it to and from MongoDB documents.
type Connector struct {
	ID           string      `json:"id,omitempty" bson:"-"`
	Name         string      `json:"name" bson:"name"`
	Description  string      `json:"description,omitempty" bson:"description,omitempty"`
	Type         string      `json:"type" bson:"type"`
	Ports        *PortConfig `json:"ports,omitempty" bson:"ports,omitempty"`
	APIKey       string      `json:"api_key,omitempty" bson:"api_key,omitempty"`
	State        string      `json:"state" bson:"state"`
	Mode         string      `json:"mode" bson:"mode"`
	EndpointsURL *Endpoints  `json:"endpoints_url,omitempty" bson:"endpoints_url,omitempty"`
	Domain       string      `json:"domain,omitempty" bson:"domain,omitempty"`
}
