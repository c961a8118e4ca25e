package edc

import (
	"context"
	"net/http"

	"edcstudio/internal/model"
)

// loggerStoreURL is where PUSH transfers deliver data: the http-logger
// container on the shared docker network.
const loggerStoreURL = "http://http-logger:4000/api/consumer/store"

// RequestCatalog asks the consumer's management API for the provider's
// asset catalog over the dataspace protocol.
func (c *Client) RequestCatalog(ctx context.Context, consumer, provider *model.Connector) (map[string]any, error) {
	protocolURL, err := c.protocolURL(provider)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"@context":            newContext(),
		"counterPartyAddress": protocolURL,
		"protocol":            "dataspace-protocol-http",
	}

	var out map[string]any
	if err := c.call(ctx, http.MethodPost, consumer, "/v3/catalog/request", payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NegotiateContract starts a contract negotiation for an asset under the
// given contract offer.
func (c *Client) NegotiateContract(ctx context.Context, consumer, provider *model.Connector, contractOfferID, asset string) (map[string]any, error) {
	protocolURL, err := c.protocolURL(provider)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"@context":            newContext(),
		"@type":               "ContractRequest",
		"counterPartyAddress": protocolURL,
		"protocol":            "dataspace-protocol-http",
		"policy": map[string]any{
			"@context": model.ODRLContext,
			"@id":      contractOfferID,
			"@type":    "Offer",
			"assigner": model.DefaultODRLOwner,
			"target":   asset,
		},
	}

	var out map[string]any
	if err := c.call(ctx, http.MethodPost, consumer, "/v3/contractnegotiations", payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetNegotiation fetches a contract negotiation, including the agreement id
// once the negotiation finalizes.
func (c *Client) GetNegotiation(ctx context.Context, consumer *model.Connector, negotiationID string) (map[string]any, error) {
	var out map[string]any
	if err := c.call(ctx, http.MethodGet, consumer, "/v3/contractnegotiations/"+negotiationID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StartTransfer starts an HttpData-PUSH transfer delivering to the
// http-logger sink.
func (c *Client) StartTransfer(ctx context.Context, consumer, provider *model.Connector, agreementID string) (map[string]any, error) {
	payload, err := c.transferRequest(provider, agreementID, "HttpData-PUSH")
	if err != nil {
		return nil, err
	}
	payload["dataDestination"] = map[string]any{
		"type":    model.DataAddressTypeHTTP,
		"baseUrl": loggerStoreURL,
	}

	var out map[string]any
	if err := c.call(ctx, http.MethodPost, consumer, "/v3/transferprocesses", payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StartTransferPull starts an HttpData-PULL transfer; the consumer later
// retrieves the data through the EDR data address.
func (c *Client) StartTransferPull(ctx context.Context, consumer, provider *model.Connector, agreementID string) (map[string]any, error) {
	payload, err := c.transferRequest(provider, agreementID, "HttpData-PULL")
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := c.call(ctx, http.MethodPost, consumer, "/v3/transferprocesses", payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTransferProcess fetches the state of a transfer process.
func (c *Client) GetTransferProcess(ctx context.Context, consumer *model.Connector, processID string) (map[string]any, error) {
	var out map[string]any
	if err := c.call(ctx, http.MethodGet, consumer, "/v3/transferprocesses/"+processID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDataAddress fetches the EDR data address of a PULL transfer.
func (c *Client) GetDataAddress(ctx context.Context, consumer *model.Connector, processID string) (map[string]any, error) {
	var out map[string]any
	if err := c.call(ctx, http.MethodGet, consumer, "/v3/edrs/"+processID+"/dataaddress", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) transferRequest(provider *model.Connector, agreementID, transferType string) (map[string]any, error) {
	protocolURL, err := c.protocolURL(provider)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"@context":            newContext(),
		"@type":               "TransferRequestDto",
		"connectorId":         model.DefaultODRLOwner,
		"counterPartyAddress": protocolURL,
		"contractId":          agreementID,
		"protocol":            "dataspace-protocol-http",
		"transferType":        transferType,
	}, nil
}
