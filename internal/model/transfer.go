package model

// Transfer flow directions: push means the provider sends the data to the
// destination, pull means the consumer fetches it through an EDR.
const (
	TransferFlowPush = "push"
	TransferFlowPull = "pull"
)

// Transfer is a completed data transfer recorded in the metadata store. It
// ties together the two connectors, the asset, and the negotiation and
// transfer-process identifiers produced by EDC.
type Transfer struct {
	ID                  string `json:"id,omitempty" bson:"-"`
	Consumer            string `json:"consumer" bson:"consumer"`
	Provider            string `json:"provider" bson:"provider"`
	Asset               string `json:"asset" bson:"asset"`
	HasPolicyID         string `json:"has_policy_id" bson:"has_policy_id"`
	NegotiateContractID string `json:"negotiate_contract_id" bson:"negotiate_contract_id"`
	ContractAgreementID string `json:"contract_agreement_id" bson:"contract_agreement_id"`
	TransferProcessID   string `json:"transfer_process_id" bson:"transfer_process_id"`
	TransferFlow        string `json:"transfer_flow" bson:"transfer_flow"`
	Authorization       string `json:"authorization,omitempty" bson:"authorization,omitempty"`
	Endpoint            string `json:"endpoint,omitempty" bson:"endpoint,omitempty"`
}

// TransferRecord is a transfer as returned by list endpoints, with the
// consumer and provider references resolved to full connector documents.
type TransferRecord struct {
	ID                  string     `json:"id"`
	Consumer            *Connector `json:"consumer"`
	Provider            *Connector `json:"provider"`
	Asset               string     `json:"asset"`
	HasPolicyID         string     `json:"has_policy_id"`
	NegotiateContractID string     `json:"negotiate_contract_id"`
	ContractAgreementID string     `json:"contract_agreement_id"`
	TransferProcessID   string     `json:"transfer_process_id"`
	TransferFlow        string     `json:"transfer_flow"`
	Authorization       string     `json:"authorization,omitempty"`
	Endpoint            string     `json:"endpoint,omitempty"`
}
