package edc

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edcstudio/internal/model"
)

func TestBuildRules(t *testing.T) {
	rules := buildRules([]model.Rule{
		{
			Action: "use",
			Constraint: []model.Constraint{
				{
					LeftOperand:  "purpose",
					Operator:     model.Operator{ID: "odrl:eq"},
					RightOperand: "research",
				},
			},
		},
		{Action: "distribute"},
	})

	require.Len(t, rules, 2)
	assert.Equal(t, "use", rules[0]["action"])
	constraints := rules[0]["constraint"].([]map[string]any)
	require.Len(t, constraints, 1)
	assert.Equal(t, "purpose", constraints[0]["leftOperand"])
	assert.Equal(t, map[string]any{"@id": "odrl:eq"}, constraints[0]["operator"])
	assert.Equal(t, "research", constraints[0]["rightOperand"])

	_, hasConstraint := rules[1]["constraint"]
	assert.False(t, hasConstraint)
}

func TestParsePolicy(t *testing.T) {
	// Compacted JSON-LD from the management API: single rules arrive as
	// objects, multiple as lists, and every key carries the odrl prefix.
	raw := `{
		"@id": "policy-1",
		"@context": {"@vocab": "https://w3id.org/edc/v0.0.1/ns/"},
		"policy": {
			"@type": "odrl:Set",
			"odrl:permission": {
				"odrl:action": {"@id": "edc:use"},
				"odrl:constraint": {
					"odrl:leftOperand": {"@id": "purpose"},
					"odrl:operator": {"@id": "odrl:eq"},
					"odrl:rightOperand": "research"
				}
			},
			"odrl:prohibition": [
				{"odrl:action": {"@id": "distribute"}},
				{"odrl:action": {"@id": "modify"}}
			]
		}
	}`
	var item map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &item))

	p := parsePolicy(item, "edc-1")

	assert.Equal(t, "edc-1", p.EDC)
	assert.Equal(t, "policy-1", p.PolicyID)
	assert.Equal(t, "Set", p.Policy.Type)

	require.Len(t, p.Policy.Permission, 1)
	perm := p.Policy.Permission[0]
	assert.Equal(t, "use", perm.Action)
	require.Len(t, perm.Constraint, 1)
	assert.Equal(t, "purpose", perm.Constraint[0].LeftOperand)
	assert.Equal(t, "odrl:eq", perm.Constraint[0].Operator.ID)
	assert.Equal(t, "research", perm.Constraint[0].RightOperand)

	require.Len(t, p.Policy.Prohibition, 2)
	assert.Equal(t, "distribute", p.Policy.Prohibition[0].Action)
	assert.Empty(t, p.Policy.Obligation)

	assert.Equal(t, model.EDCContextVocab, p.Context["@vocab"])
}

func TestNormalizeList(t *testing.T) {
	assert.Nil(t, normalizeList(nil))
	assert.Nil(t, normalizeList("scalar"))
	assert.Len(t, normalizeList(map[string]any{"a": 1}), 1)
	assert.Len(t, normalizeList([]any{1, 2}), 2)
}

func TestCreatePolicyPayload(t *testing.T) {
	var sent map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &sent)
		_ = json.NewEncoder(w).Encode(map[string]any{"@id": "policy-1"})
	}))
	defer srv.Close()

	c := NewClient("localhost")
	p := &model.Policy{
		PolicyID: "policy-1",
		Policy: model.PolicyDefinition{
			Type:       model.PolicyTypeSet,
			Permission: []model.Rule{{Action: "use"}},
		},
	}
	out, err := c.CreatePolicy(context.Background(), remoteConnector(srv.URL), p)
	require.NoError(t, err)
	assert.Equal(t, "policy-1", out["@id"])

	assert.Equal(t, "policy-1", sent["@id"])
	policy := sent["policy"].(map[string]any)
	assert.Equal(t, model.ODRLContext, policy["@context"])
	assert.Equal(t, "Set", policy["@type"])
	assert.Len(t, policy["permission"], 1)
}

func TestCreatePolicyDefaultsType(t *testing.T) {
	var sent map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &sent)
		_ = json.NewEncoder(w).Encode(map[string]any{"@id": "policy-2"})
	}))
	defer srv.Close()

	c := NewClient("localhost")
	p := &model.Policy{
		PolicyID: "policy-2",
		Policy: model.PolicyDefinition{
			Permission: []model.Rule{{Action: "use"}},
		},
	}
	_, err := c.CreatePolicy(context.Background(), remoteConnector(srv.URL), p)
	require.NoError(t, err)

	policy := sent["policy"].(map[string]any)
	assert.Equal(t, model.PolicyTypeSet, policy["@type"])

	// The caller's struct is not mutated, only the wire payload gets the
	// default.
	assert.Empty(t, p.Policy.Type)
}
