package rupeelogic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKnowledgeBase(t *testing.T) {
	kb := DefaultKnowledgeBase()
	require.Equal(t, 16, kb.Len())

	a, ok := kb.Lookup("fixed_deposits")
	require.True(t, ok)
	assert.Equal(t, "fixed_deposits", a.ID)
	assert.Equal(t, "Fixed Deposits", a.Name)
	assert.Equal(t, "9-11%", a.ExpectedReturn())
	assert.NotEmpty(t, a.Examples)

	ids := kb.IDs()
	assert.IsNonDecreasing(t, ids)
	assert.Len(t, kb.All(), len(ids))
}

const yamlKB = `
meta:
  currency: LKR
data:
  classes:
    gold:
      name: Gold
      risk: Medium
      return: 6-10%
      liquidity: High
      description: Physical gold.
      examples: Licensed jewellers
    savings_account:
      name: Savings Account
      risk: Very Low
      return: 2-4%
      typical_return: 3%
      liquidity: Instant
      description: Bank savings.
      examples: [HNB Savings, Sampath Savings]
`

func TestLoadKnowledgeBase_YAML(t *testing.T) {
	kb, err := LoadKnowledgeBase(strings.NewReader(yamlKB), "kb.yaml", "$.data.classes")
	require.NoError(t, err)
	require.Equal(t, []string{"gold", "savings_account"}, kb.IDs())

	gold, _ := kb.Lookup("gold")
	assert.Equal(t, []string{"Licensed jewellers"}, []string(gold.Examples))
	assert.Equal(t, "6-10%", gold.ExpectedReturn())

	sa, _ := kb.Lookup("savings_account")
	assert.Equal(t, "3%", sa.ExpectedReturn())
	assert.Len(t, sa.Examples, 2)
}

func TestLoadKnowledgeBase_Errors(t *testing.T) {
	testCases := []struct {
		name, doc, file, selector string
	}{
		{"invalid json", `{"asset_classes": `, "kb.json", ""},
		{"invalid yaml", "a: [", "kb.yml", ""},
		{"missing key", `{"classes": {}}`, "kb.json", ""},
		{"not an object", `{"asset_classes": [1, 2]}`, "kb.json", ""},
		{"bad examples", `{"asset_classes": {"gold": {"examples": 3}}}`, "kb.json", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadKnowledgeBase(strings.NewReader(tc.doc), tc.file, tc.selector)
			assert.Error(t, err)
		})
	}
}

func TestNewKnowledgeBase_Errors(t *testing.T) {
	_, err := NewKnowledgeBase(AssetClass{Name: "nameless"})
	assert.ErrorContains(t, err, "no id")
	_, err = NewKnowledgeBase(AssetClass{ID: "gold"}, AssetClass{ID: "gold"})
	assert.ErrorContains(t, err, "duplicate")
}
