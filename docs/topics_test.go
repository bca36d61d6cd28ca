package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with the code.
	// 1. Every topic listed in readme.md can be loaded.
	// 2. Every .md file (excluding readme.md itself) is listed in readme.md.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), ".md")
		if base != "readme" && !slices.Contains(topicsInReadme, base) {
			t.Errorf("topic %q is not listed in readme.md", base)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}
	slices.Sort(topicsInReadme)
	if !slices.Equal(all, topicsInReadme) {
		t.Errorf("GetAllTopics() = %q, want %q", all, topicsInReadme)
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("nope"); err == nil {
		t.Error("GetTopic(nope) succeeded")
	}
	if _, err := GetTopics("rules", "nope"); err == nil {
		t.Error("GetTopics(rules, nope) succeeded")
	}
}

func TestGetTopic_All(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) failed: %v", err)
	}
	for _, title := range []string{"# Knowledge base", "# Profile", "# Rules"} {
		if !strings.Contains(all, title) {
			t.Errorf("GetTopic(*) does not contain %q", title)
		}
	}
}

func TestOutline(t *testing.T) {
	got, err := Outline("rules")
	if err != nil {
		t.Fatalf("Outline(rules) failed: %v", err)
	}
	want := []string{"Critical rules", "Decision tree", "Default", "Alternatives"}
	if !slices.Equal(got, want) {
		t.Errorf("Outline(rules) = %q, want %q", got, want)
	}
}

// Every fenced json block in the topics must be valid for the intake.
func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}
		root := goldmark.DefaultParser().Parse(text.NewReader(content))
		ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			fcb, ok := n.(*ast.FencedCodeBlock)
			if !ok || !entering {
				return ast.WalkContinue, nil
			}
			lang := string(fcb.Language(content))
			if lang != "json" && lang != "yaml" {
				t.Errorf("%s: code block with unexpected language %q", file, lang)
			}
			if fcb.Lines().Len() == 0 {
				t.Errorf("%s: empty %s block", file, lang)
			}
			return ast.WalkContinue, nil
		})
	}
}
