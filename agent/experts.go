package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/rupeelogic"
	"github.com/etnz/rupeelogic/docs"
	"github.com/etnz/rupeelogic/renderer"
	"google.golang.org/genai"
)

// DefaultModel is used when an expert has no model name.
const DefaultModel = "gemini-2.5-flash"

func instruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// NewIntake creates the expert that interviews the user and fills d through
// the update_profile function.
func NewIntake(model string, d *Draft) *Expert {
	lib := []Function{UpdateProfile(d)}
	return &Expert{
		Name:        "Intake",
		Description: "Collects the user's financial profile and investment goal.",
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
			You are the intake assistant of RupeeLogic, an investment advisor for Sri Lankan investors.
			Your only job is to collect the user's financial profile, one or two questions at a time, in a friendly tone.

			Every time the user gives you an answer, record it with the update_profile function.
			The function tells you which fields are still missing, ask for those next.
			When it reports the profile complete, tell the user that you are preparing their recommendation, nothing else.

			Amounts are monthly for income and expenses, in Sri Lankan rupees unless the user says otherwise.
			Never give investment advice yourself, and politely decline questions unrelated to personal finance.

			` + must(docs.GetTopic("profile"))),
		},
		Library: NewLibrary(lib),
	}
}

// UpdateProfile is the function the intake expert calls to record answers.
func UpdateProfile(d *Draft) *Func {
	const name = "update_profile"
	goals := make([]string, len(rupeelogic.GoalTypes))
	for i, g := range rupeelogic.GoalTypes {
		goals[i] = string(g)
	}
	risks := make([]string, len(rupeelogic.RiskTolerances))
	for i, r := range rupeelogic.RiskTolerances {
		risks[i] = string(r)
	}
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "Records one or more answers of the user. Only pass the fields the user actually answered.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					FieldAge:             {Type: genai.TypeInteger, Description: "Age in years, between 18 and 80."},
					FieldMonthlyIncome:   {Type: genai.TypeNumber, Description: "Monthly net income."},
					FieldMonthlyExpenses: {Type: genai.TypeNumber, Description: "Monthly expenses."},
					FieldCurrentSavings:  {Type: genai.TypeNumber, Description: "Total current savings."},
					FieldDebt:            {Type: genai.TypeBoolean, Description: "Whether the user has high-interest debt such as credit cards or personal loans."},
					FieldRiskTolerance:   {Type: genai.TypeString, Enum: risks},
					FieldGoalType:        {Type: genai.TypeString, Enum: goals},
					FieldTimeHorizon:     {Type: genai.TypeInteger, Description: "Goal horizon in years."},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeObject,
				Description: "The fields still missing, whether the profile is complete, and the answers that were rejected.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			// rejected answers leave the previous ones in place.
			in := Draft{Currency: d.Currency}
			var errs []string
			for _, f := range Fields {
				v, ok := args[f]
				if !ok {
					continue
				}
				if err := in.Set(f, v); err != nil {
					errs = append(errs, err.Error())
				}
			}
			d.Merge(&in)
			for f := range args {
				if !isField(f) {
					errs = append(errs, fmt.Sprintf("unknown field %q", f))
				}
			}
			resp := map[string]any{
				"missing":  d.Missing(),
				"complete": d.Complete(),
			}
			if len(errs) > 0 {
				resp["errors"] = errs
			}
			return &genai.FunctionResponse{ID: id, Name: name, Response: resp}
		},
	}
}

func isField(f string) bool {
	for _, g := range Fields {
		if g == f {
			return true
		}
	}
	return false
}

// NewResearcher creates an expert grounded on Google Search, for questions
// about current Sri Lankan rates, funds and institutions.
func NewResearcher(model string) *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `An expert of the Sri Lankan financial market, aware of the current rates,
		unit trusts, banks and listed companies. Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: instruction(`
			You are an expert of the Sri Lankan financial market: banks, unit trusts, treasury auctions and the Colombo Stock Exchange.
			You Leverage Google Search to ground your assertions in a solid truth, and you always cite your sources.
			`),
		},
	}
}

// ExplainRule returns the details of a rule of the catalog.
func ExplainRule(c *rupeelogic.Catalog) *Func {
	const name = "explain_rule"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "Returns the condition, the action and the plans of a recommendation rule, in markdown.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"rule_id": {Type: genai.TypeString, Description: `The rule id, like "Rule 2A".`},
				},
				Required: []string{"rule_id"},
			},
			Response: &genai.Schema{Type: genai.TypeString},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ruleID, _ := args["rule_id"].(string)
			r, ok := c.Lookup(strings.TrimSpace(ruleID))
			if !ok {
				return errorResponse(id, name, fmt.Errorf("unknown rule %q", ruleID))
			}
			var b strings.Builder
			renderer.RenderRule(&b, r)
			return outputResponse(id, name, b.String())
		},
	}
}

// DescribeAsset returns the reference data of an asset class.
func DescribeAsset(kb *rupeelogic.KnowledgeBase) *Func {
	const name = "describe_asset_class"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "Returns the risk, expected return, liquidity, minimum investment and examples of an asset class, in markdown.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"asset_class": {Type: genai.TypeString, Enum: kb.IDs()},
				},
				Required: []string{"asset_class"},
			},
			Response: &genai.Schema{Type: genai.TypeString},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			assetID, _ := args["asset_class"].(string)
			a, ok := kb.Lookup(assetID)
			if !ok {
				return errorResponse(id, name, &rupeelogic.DataFaultError{AssetClass: assetID})
			}
			var b strings.Builder
			renderer.RenderAsset(&b, a)
			return outputResponse(id, name, b.String())
		},
	}
}

// NewAdvisor creates the expert answering follow-up questions about a
// recommendation. It can consult the catalog, the knowledge base and the
// researcher.
func NewAdvisor(model string, e *rupeelogic.Engine, recommendation string, researcher *Expert) (*Expert, error) {
	if recommendation == "" {
		return nil, errors.New("advisor needs a recommendation")
	}
	lib := []Function{ExplainRule(e.Catalog()), DescribeAsset(e.KnowledgeBase())}
	if researcher != nil {
		lib = append(lib, researcher)
	}
	return &Expert{
		Name:        "Advisor",
		Description: "Answers questions about the user's recommendation.",
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
			You are the RupeeLogic advisor. The user just received the recommendation below, computed by a
			rule-based engine. Answer their follow-up questions about it: why a rule fired, what an asset class is,
			how to get started with a plan.

			Never change the allocation percentages, they are the engine's decision. If the user's situation
			changed, tell them to run a new recommendation.
			Stay on personal finance topics, and remind the user this is educational, not regulated advice.

			` + recommendation),
		},
		Library: NewLibrary(lib),
	}, nil
}
