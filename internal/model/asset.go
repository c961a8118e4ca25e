package model

// Data address types supported by the EDC management API.
const (
	DataAddressTypeHTTP = "HttpData"
	DataAddressTypeFile = "File"
)

// Asset is a data resource published through an EDC connector. Assets live
// in the connector itself; the backend only proxies them, keyed by the
// connector ID in EDC.
type Asset struct {
	AssetID          string `json:"asset_id"`
	Name             string `json:"name"`
	ContentType      string `json:"content_type"`
	DataAddressName  string `json:"data_address_name"`
	DataAddressType  string `json:"data_address_type"`
	DataAddressProxy bool   `json:"data_address_proxy"`
	BaseURL          string `json:"base_url"`
	EDC              string `json:"edc"`
}
