package edc

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"edcstudio/internal/model"
)

// CreatePolicy registers a policy definition with the connector.
func (c *Client) CreatePolicy(ctx context.Context, conn *model.Connector, p *model.Policy) (map[string]any, error) {
	policyType := p.Policy.Type
	if policyType == "" {
		policyType = model.PolicyTypeSet
	}

	payload := map[string]any{
		"@context": newContext(),
		"@id":      p.PolicyID,
		"policy": map[string]any{
			"@context":    model.ODRLContext,
			"@type":       policyType,
			"permission":  buildRules(p.Policy.Permission),
			"prohibition": buildRules(p.Policy.Prohibition),
			"obligation":  buildRules(p.Policy.Obligation),
		},
	}

	var out map[string]any
	if err := c.call(ctx, http.MethodPost, conn, "/v3/policydefinitions", payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPolicies queries all policy definitions registered in the connector.
func (c *Client) ListPolicies(ctx context.Context, conn *model.Connector) ([]model.Policy, error) {
	var items []map[string]any
	if err := c.call(ctx, http.MethodPost, conn, "/v3/policydefinitions/request", querySpec(), &items); err != nil {
		return nil, err
	}

	policies := make([]model.Policy, 0, len(items))
	for _, item := range items {
		policies = append(policies, parsePolicy(item, conn.ID))
	}
	return policies, nil
}

// GetPolicy retrieves one policy definition by its EDC id.
func (c *Client) GetPolicy(ctx context.Context, conn *model.Connector, policyID string) (*model.Policy, error) {
	var item map[string]any
	if err := c.call(ctx, http.MethodGet, conn, "/v3/policydefinitions/"+policyID, nil, &item); err != nil {
		return nil, err
	}
	p := parsePolicy(item, conn.ID)
	return &p, nil
}

// DeletePolicy removes a policy definition from the connector.
func (c *Client) DeletePolicy(ctx context.Context, conn *model.Connector, policyID string) error {
	return c.call(ctx, http.MethodDelete, conn, "/v3/policydefinitions/"+policyID, nil, nil)
}

// buildRules converts internal rules to the ODRL shape the management API
// accepts on writes.
func buildRules(rules []model.Rule) []map[string]any {
	out := make([]map[string]any, 0, len(rules))
	for _, rule := range rules {
		converted := map[string]any{"action": rule.Action}
		if len(rule.Constraint) > 0 {
			constraints := make([]map[string]any, 0, len(rule.Constraint))
			for _, con := range rule.Constraint {
				constraints = append(constraints, map[string]any{
					"leftOperand":  con.LeftOperand,
					"operator":     map[string]any{"@id": con.Operator.ID},
					"rightOperand": con.RightOperand,
				})
			}
			converted["constraint"] = constraints
		}
		out = append(out, converted)
	}
	return out
}

// parsePolicy maps one policy definition from the odrl:-prefixed read shape
// back to the internal model.
func parsePolicy(item map[string]any, edcID string) model.Policy {
	policyData := asMap(item["policy"])

	return model.Policy{
		EDC:      edcID,
		PolicyID: asString(item["@id"]),
		Policy: model.PolicyDefinition{
			Type:        strings.TrimPrefix(stringOr(policyData["@type"], "odrl:Set"), "odrl:"),
			Permission:  parseRules(policyData["odrl:permission"]),
			Prohibition: parseRules(policyData["odrl:prohibition"]),
			Obligation:  parseRules(policyData["odrl:obligation"]),
			Context:     stringOr(policyData["@context"], model.ODRLContext),
		},
		Context: parseContext(item["@context"]),
	}
}

func parseRules(v any) []model.Rule {
	raw := normalizeList(v)
	if len(raw) == 0 {
		return nil
	}

	rules := make([]model.Rule, 0, len(raw))
	for _, rv := range raw {
		r := asMap(rv)
		rule := model.Rule{
			Action: strings.TrimPrefix(asString(asMap(r["odrl:action"])["@id"]), "edc:"),
		}
		for _, cv := range normalizeList(r["odrl:constraint"]) {
			con := asMap(cv)
			rule.Constraint = append(rule.Constraint, model.Constraint{
				LeftOperand:  asString(asMap(con["odrl:leftOperand"])["@id"]),
				Operator:     model.Operator{ID: asString(asMap(con["odrl:operator"])["@id"])},
				RightOperand: asString(con["odrl:rightOperand"]),
			})
		}
		rules = append(rules, rule)
	}
	return rules
}

// normalizeList accepts the dict-or-list ambiguity of compacted JSON-LD and
// always yields a slice.
func normalizeList(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case map[string]any:
		return []any{t}
	default:
		return nil
	}
}

func parseContext(v any) map[string]string {
	m, ok := v.(map[string]any)
	if !ok {
		return map[string]string{"@vocab": model.EDCContextVocab}
	}
	out := make(map[string]string, len(m))
	for k, val := range m {
		out[k] = asString(val)
	}
	return out
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func stringOr(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}
