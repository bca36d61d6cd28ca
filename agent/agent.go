package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/rupeelogic"
	"github.com/etnz/rupeelogic/renderer"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
//
// The Intake expert fills the Draft until it is complete, then the engine
// computes the recommendation and the Advisor takes over for follow-ups.
type Agent struct {
	w      io.Writer
	r      *bufio.Reader
	engine *rupeelogic.Engine
	model  string

	Draft      *Draft
	Intake     *Expert
	Researcher *Expert
	Advisor    *Expert

	// Print writes markdown to the output, verbatim by default.
	Print func(w io.Writer, markdown string)
	// OnAdvice is called with every recommendation computed.
	OnAdvice func(*rupeelogic.Recommendation)
	Log      *zap.Logger

	rec *rupeelogic.Recommendation
}

// New creates a new Agent using the given model for every expert.
//
// It takes an io.Writer for the agent's output (e.g., os.Stdout), and an
// io.Reader for user input (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, e *rupeelogic.Engine, model string) *Agent {
	if model == "" {
		model = DefaultModel
	}
	d := &Draft{}
	return &Agent{
		w:          w,
		r:          bufio.NewReader(r),
		engine:     e,
		model:      model,
		Draft:      d,
		Intake:     NewIntake(model, d),
		Researcher: NewResearcher(model),
		Print:      func(w io.Writer, md string) { fmt.Fprintln(w, md) },
		Log:        zap.NewNop(),
	}
}

// Start creates the chats of the intake and research experts.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range []*Expert{a.Intake, a.Researcher} {
		e.Log = a.Log
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return nil
}

// Recommendation returns the last recommendation computed, if any.
func (a *Agent) Recommendation() *rupeelogic.Recommendation { return a.rec }

const prompt = "rl> "

// Run starts the interactive REPL session for the agent.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if !a.Intake.Started() {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to RupeeLogic. Tell me about your finances and goal. Type 'bye' to exit.")

	// REPL loop
	for {
		// Print the prompt
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		expert := a.Intake
		if a.Advisor != nil {
			expert = a.Advisor
		}
		answer, err := expert.AskText(ctx, input)
		if err != nil {
			return err
		}
		a.Print(a.w, answer)

		if a.Advisor == nil && a.Draft.Complete() {
			if err := a.advise(ctx, client); err != nil {
				return err
			}
		}
	}
}

// advise runs the engine on the draft. Rejected answers are cleared and the
// intake asks for them again.
func (a *Agent) advise(ctx context.Context, client *genai.Client) error {
	p, g, err := a.Draft.Profile()
	if err != nil {
		return err
	}
	rec, err := a.engine.Advise(p, g)
	if errors.Is(err, rupeelogic.ErrInvalidInput) {
		var reasons []string
		for _, ie := range rupeelogic.InputErrors(err) {
			a.Draft.Clear(ie.Field)
			reasons = append(reasons, ie.Error())
		}
		a.Log.Info("profile rejected", zap.Strings("reasons", reasons))
		answer, err := a.Intake.AskText(ctx, "The engine rejected some answers, ask the user again:\n"+strings.Join(reasons, "\n"))
		if err != nil {
			return err
		}
		a.Print(a.w, answer)
		return nil
	}
	if err != nil {
		return err
	}

	a.rec = rec
	if a.OnAdvice != nil {
		a.OnAdvice(rec)
	}
	md := renderer.RenderRecommendation(rec, renderer.RecommendationRenderOptions{})
	a.Print(a.w, md)

	advisor, err := NewAdvisor(a.model, a.engine, md, a.Researcher)
	if err != nil {
		return err
	}
	advisor.Log = a.Log
	if err := advisor.Start(ctx, client); err != nil {
		return err
	}
	a.Advisor = advisor
	return nil
}
