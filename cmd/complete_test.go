package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion(t *testing.T) {
	c := Completion(Commands)
	require.Len(t, c.Sub, len(Commands))

	advise := c.Sub["advise"]
	require.NotNil(t, advise)
	for _, name := range []string{"f", "age", "income", "expenses", "savings", "debt", "risk", "goal", "horizon", "json"} {
		assert.Contains(t, advise.Flags, name)
	}
	assert.Equal(t, []string{"Low", "Moderate", "High"}, advise.Flags["risk"].Predict(""))
	assert.Contains(t, advise.Flags["goal"].Predict(""), "home-purchase")

	topic := c.Sub["topic"]
	require.NotNil(t, topic.Args)
	assert.Contains(t, topic.Args.Predict(""), "rules")

	assert.Contains(t, c.Flags, "config")
	assert.Contains(t, c.Flags, "no-history")
}
