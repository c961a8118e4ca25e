package model

// JSON-LD contexts used by the EDC management API.
const (
	EDCContextVocab  = "https://w3id.org/edc/v0.0.1/ns/"
	ODRLContext      = "http://www.w3.org/ns/odrl.jsonld"
	PolicyTypeSet    = "Set"
	DefaultODRLOwner = "provider"
)

// Operator is a comparison operator in a policy constraint (EQ, NEQ, GT, ...).
type Operator struct {
	ID string `json:"id"`
}

// Constraint expresses a condition on a rule, e.g. "purpose EQ research".
type Constraint struct {
	LeftOperand  string   `json:"leftOperand"`
	Operator     Operator `json:"operator"`
	RightOperand string   `json:"rightOperand"`
}

// Rule is a single permission, prohibition or obligation.
type Rule struct {
	Action     string       `json:"action"`
	Constraint []Constraint `json:"constraint,omitempty"`
}

// PolicyDefinition is a complete ODRL policy: permissions, prohibitions and
// obligations plus JSON-LD metadata.
type PolicyDefinition struct {
	Permission  []Rule `json:"permission,omitempty"`
	Prohibition []Rule `json:"prohibition,omitempty"`
	Obligation  []Rule `json:"obligation,omitempty"`
	Context     string `json:"context,omitempty"`
	Type        string `json:"type,omitempty"`
}

// Policy associates a policy definition with an EDC connector.
type Policy struct {
	EDC      string            `json:"edc"`
	PolicyID string            `json:"policy_id"`
	Policy   PolicyDefinition  `json:"policy"`
	Context  map[string]string `json:"context,omitempty"`
}
