package model

// Contract is a contract definition in the EDC ecosystem. It links assets
// with the access and contract policies that govern their exchange, scoped
// to one connector.
type Contract struct {
	EDC              string            `json:"edc"`
	ContractID       string            `json:"contract_id"`
	AccessPolicyID   string            `json:"accessPolicyId"`
	ContractPolicyID string            `json:"contractPolicyId"`
	AssetsSelector   []string          `json:"assetsSelector"`
	Context          map[string]string `json:"context,omitempty"`
}
