package edc

import (
	"context"
	"net/http"
	"strconv"

	"edcstudio/internal/model"
)

// CreateAsset registers an asset with the connector's management API and
// returns the raw creation response (contains the asset @id).
func (c *Client) CreateAsset(ctx context.Context, conn *model.Connector, a *model.Asset) (map[string]any, error) {
	payload := map[string]any{
		"@context": newContext(),
		"@id":      a.AssetID,
		"properties": map[string]any{
			"name":        a.Name,
			"contenttype": a.ContentType,
		},
		"dataAddress": map[string]any{
			"type":      a.DataAddressType,
			"name":      a.DataAddressName,
			"baseUrl":   a.BaseURL,
			"proxyPath": strconv.FormatBool(a.DataAddressProxy),
		},
	}

	var out map[string]any
	if err := c.call(ctx, http.MethodPost, conn, "/v3/assets", payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAsset retrieves one asset by its EDC id.
func (c *Client) GetAsset(ctx context.Context, conn *model.Connector, assetID string) (*model.Asset, error) {
	var item map[string]any
	if err := c.call(ctx, http.MethodGet, conn, "/v3/assets/"+assetID, nil, &item); err != nil {
		return nil, err
	}
	a := parseAsset(item, conn.ID)
	return &a, nil
}

// ListAssets queries all assets registered in the connector.
func (c *Client) ListAssets(ctx context.Context, conn *model.Connector) ([]model.Asset, error) {
	var items []map[string]any
	if err := c.call(ctx, http.MethodPost, conn, "/v3/assets/request", querySpec(), &items); err != nil {
		return nil, err
	}

	assets := make([]model.Asset, 0, len(items))
	for _, item := range items {
		assets = append(assets, parseAsset(item, conn.ID))
	}
	return assets, nil
}

// UpdateAsset replaces an existing asset definition.
func (c *Client) UpdateAsset(ctx context.Context, conn *model.Connector, a *model.Asset) error {
	payload := map[string]any{
		"@context": map[string]any{
			"@vocab": model.EDCContextVocab,
			"edc":    model.EDCContextVocab,
			"odrl":   "http://www.w3.org/ns/odrl/2/",
		},
		"@id":   a.AssetID,
		"@type": "Asset",
		"properties": map[string]any{
			"name":        a.Name,
			"contenttype": a.ContentType,
		},
		"dataAddress": map[string]any{
			"@type":     "DataAddress",
			"type":      a.DataAddressType,
			"name":      a.DataAddressName,
			"baseUrl":   a.BaseURL,
			"proxyPath": strconv.FormatBool(a.DataAddressProxy),
		},
	}
	return c.call(ctx, http.MethodPut, conn, "/v3/assets/"+a.AssetID, payload, nil)
}

// DeleteAsset removes an asset from the connector.
func (c *Client) DeleteAsset(ctx context.Context, conn *model.Connector, assetID string) error {
	return c.call(ctx, http.MethodDelete, conn, "/v3/assets/"+assetID, nil, nil)
}

func parseAsset(item map[string]any, edcID string) model.Asset {
	props := asMap(item["properties"])
	addr := asMap(item["dataAddress"])
	return model.Asset{
		AssetID:          asString(item["@id"]),
		Name:             asString(props["name"]),
		ContentType:      asString(props["contenttype"]),
		DataAddressName:  asString(addr["name"]),
		DataAddressType:  asString(addr["type"]),
		DataAddressProxy: asString(addr["proxyPath"]) == "true",
		BaseURL:          asString(addr["baseUrl"]),
		EDC:              edcID,
	}
}
