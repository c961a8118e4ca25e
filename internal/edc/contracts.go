package edc

import (
	"context"
	"encoding/json"
	"net/http"

	"edcstudio/internal/model"
)

// CreateContract registers a contract definition with the connector.
func (c *Client) CreateContract(ctx context.Context, conn *model.Connector, ct *model.Contract) (map[string]any, error) {
	selectors := make([]map[string]any, 0, len(ct.AssetsSelector))
	for _, assetID := range ct.AssetsSelector {
		selectors = append(selectors, criterion(assetID, model.EDCContextVocab+"Criterion"))
	}

	payload := map[string]any{
		"@context":         newContext(),
		"@id":              ct.ContractID,
		"accessPolicyId":   ct.AccessPolicyID,
		"contractPolicyId": ct.ContractPolicyID,
		"assetsSelector":   selectors,
	}

	var out map[string]any
	if err := c.call(ctx, http.MethodPost, conn, "/v3/contractdefinitions", payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListContracts queries all contract definitions registered in the connector.
// The management API returns a single object instead of a list when only one
// definition exists.
func (c *Client) ListContracts(ctx context.Context, conn *model.Connector) ([]model.Contract, error) {
	var raw json.RawMessage
	if err := c.call(ctx, http.MethodPost, conn, "/v3/contractdefinitions/request", querySpec(), &raw); err != nil {
		return nil, err
	}

	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		var single map[string]any
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, err
		}
		items = []map[string]any{single}
	}

	contracts := make([]model.Contract, 0, len(items))
	for _, item := range items {
		contracts = append(contracts, parseContract(item, conn.ID))
	}
	return contracts, nil
}

// GetContract retrieves one contract definition by its EDC id.
func (c *Client) GetContract(ctx context.Context, conn *model.Connector, contractID string) (*model.Contract, error) {
	var item map[string]any
	if err := c.call(ctx, http.MethodGet, conn, "/v3/contractdefinitions/"+contractID, nil, &item); err != nil {
		return nil, err
	}
	ct := parseContract(item, conn.ID)
	return &ct, nil
}

// UpdateContract replaces an existing contract definition. A single asset
// selector is sent as an object, several as a list.
func (c *Client) UpdateContract(ctx context.Context, conn *model.Connector, ct *model.Contract) error {
	payload := map[string]any{
		"@id":              ct.ContractID,
		"@type":            "ContractDefinition",
		"accessPolicyId":   ct.AccessPolicyID,
		"contractPolicyId": ct.ContractPolicyID,
		"@context": map[string]any{
			"@vocab": model.EDCContextVocab,
			"edc":    model.EDCContextVocab,
			"odrl":   "http://www.w3.org/ns/odrl/2/",
		},
	}

	switch len(ct.AssetsSelector) {
	case 0:
	case 1:
		payload["assetsSelector"] = criterion(ct.AssetsSelector[0], "Criterion")
	default:
		selectors := make([]map[string]any, 0, len(ct.AssetsSelector))
		for _, assetID := range ct.AssetsSelector {
			selectors = append(selectors, criterion(assetID, "Criterion"))
		}
		payload["assetsSelector"] = selectors
	}

	return c.call(ctx, http.MethodPut, conn, "/v3/contractdefinitions", payload, nil)
}

// DeleteContract removes a contract definition from the connector.
func (c *Client) DeleteContract(ctx context.Context, conn *model.Connector, contractID string) error {
	return c.call(ctx, http.MethodDelete, conn, "/v3/contractdefinitions/"+contractID, nil, nil)
}

func criterion(assetID, typ string) map[string]any {
	return map[string]any{
		"@type":        typ,
		"operandLeft":  "id",
		"operator":     "=",
		"operandRight": assetID,
	}
}

func parseContract(item map[string]any, edcID string) model.Contract {
	var assets []string
	switch sel := item["assetsSelector"].(type) {
	case map[string]any:
		assets = append(assets, asString(sel["operandRight"]))
	case []any:
		for _, cv := range sel {
			assets = append(assets, asString(asMap(cv)["operandRight"]))
		}
	}

	return model.Contract{
		EDC:              edcID,
		ContractID:       asString(item["@id"]),
		AccessPolicyID:   asString(item["accessPolicyId"]),
		ContractPolicyID: asString(item["contractPolicyId"]),
		AssetsSelector:   assets,
		Context:          parseContext(item["@context"]),
	}
}
