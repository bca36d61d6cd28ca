package rupeelogic

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/PaesslerAG/jsonpath"
	"gopkg.in/yaml.v3"
)

// AssetClass is the read-only reference description of an investable asset
// class. One AssetClass fact per ID is asserted at the beginning of a session.
type AssetClass struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Risk          string     `json:"risk"`
	Return        string     `json:"return,omitempty"`
	TypicalReturn string     `json:"typical_return,omitempty"`
	Liquidity     string     `json:"liquidity"`
	MinInvestment string     `json:"min_investment,omitempty"`
	Description   string     `json:"description"`
	Examples      stringList `json:"examples,omitempty"`
	Links         stringList `json:"links,omitempty"`
}

// ExpectedReturn is the typical return if known, the generic one otherwise.
func (a AssetClass) ExpectedReturn() string {
	if a.TypicalReturn != "" {
		return a.TypicalReturn
	}
	return a.Return
}

// stringList decodes either a JSON list of strings or a single string.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected a string or a list of strings, got %s", data)
	}
	if s != "" {
		*l = stringList{s}
	}
	return nil
}

// DefaultSelector is the JSONPath selecting the asset class object in a
// knowledge base document.
const DefaultSelector = "$.asset_classes"

// KnowledgeBase maps asset class IDs to their reference data.
//
// It is never modified after loading and can be shared between sessions.
type KnowledgeBase struct {
	assets map[string]AssetClass
	ids    []string
}

// NewKnowledgeBase builds a knowledge base from a list of asset classes.
// IDs must be unique and non empty.
func NewKnowledgeBase(assets ...AssetClass) (*KnowledgeBase, error) {
	kb := &KnowledgeBase{assets: make(map[string]AssetClass, len(assets))}
	for _, a := range assets {
		if a.ID == "" {
			return nil, fmt.Errorf("asset class %q has no id", a.Name)
		}
		if _, exists := kb.assets[a.ID]; exists {
			return nil, fmt.Errorf("duplicate asset class %q", a.ID)
		}
		kb.assets[a.ID] = a
		kb.ids = append(kb.ids, a.ID)
	}
	sort.Strings(kb.ids)
	return kb, nil
}

// Lookup returns the asset class for id.
func (kb *KnowledgeBase) Lookup(id string) (AssetClass, bool) {
	a, ok := kb.assets[id]
	return a, ok
}

// IDs returns the sorted asset class IDs.
func (kb *KnowledgeBase) IDs() []string { return slices.Clone(kb.ids) }

// All returns every asset class sorted by ID.
func (kb *KnowledgeBase) All() []AssetClass {
	out := make([]AssetClass, 0, len(kb.ids))
	for _, id := range kb.ids {
		out = append(out, kb.assets[id])
	}
	return out
}

// Len returns the number of asset classes.
func (kb *KnowledgeBase) Len() int { return len(kb.ids) }

// LoadKnowledgeBase decodes a knowledge base document.
//
// name is only used to pick the format: ".yaml" and ".yml" documents are
// decoded as YAML, anything else as JSON. selector is a JSONPath expression
// selecting the object that maps asset class IDs to their description; it
// defaults to DefaultSelector.
func LoadKnowledgeBase(r io.Reader, name, selector string) (*KnowledgeBase, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge base %q: %w", name, err)
	}
	var doc any
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding knowledge base %q: %w", name, err)
	}

	if selector == "" {
		selector = DefaultSelector
	}
	selected, err := jsonpath.Get(selector, doc)
	if err != nil {
		return nil, fmt.Errorf("selecting %q in knowledge base %q: %w", selector, name, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if list, ok := selected.([]any); ok && len(list) > 0 {
		selected = list[0]
	}

	// round trip through JSON to reuse the field tags, whatever the source format.
	raw, err := json.Marshal(selected)
	if err != nil {
		return nil, fmt.Errorf("knowledge base %q: %w", name, err)
	}
	var byID map[string]AssetClass
	if err := json.Unmarshal(raw, &byID); err != nil {
		return nil, fmt.Errorf("knowledge base %q: %q does not select an asset class object: %w", name, selector, err)
	}

	assets := make([]AssetClass, 0, len(byID))
	for id, a := range byID {
		a.ID = id
		assets = append(assets, a)
	}
	return NewKnowledgeBase(assets...)
}

//go:embed knowledge_base.json
var defaultKnowledgeBase []byte

var (
	defaultKB     *KnowledgeBase
	defaultKBOnce sync.Once
)

// DefaultKnowledgeBase returns the Sri Lankan asset classes shipped with the
// module. It panics if the embedded document is invalid.
func DefaultKnowledgeBase() *KnowledgeBase {
	defaultKBOnce.Do(func() {
		kb, err := LoadKnowledgeBase(strings.NewReader(string(defaultKnowledgeBase)), "knowledge_base.json", DefaultSelector)
		if err != nil {
			panic(err)
		}
		defaultKB = kb
	})
	return defaultKB
}
