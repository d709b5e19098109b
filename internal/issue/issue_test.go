// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	ids := []Id{
		CorpusNotFoundId,
		EmptyCorpusId,
		FortuneFileUnreadableId,
		NoShortFortuneId,
		InvalidPatternId,
		ConfigLoadFailedId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true

		if Get(id) == nil {
			t.Errorf("Get(%d) returned nil", id)
		}
	}

	if CorpusNotFoundId != 1 {
		t.Errorf("CorpusNotFoundId = %d, want 1", CorpusNotFoundId)
	}
}

func TestValues_OrderedById(t *testing.T) {
	values := Values()
	if len(values) != len(issues) {
		t.Fatalf("Values() returned %d issues, want %d", len(values), len(issues))
	}
	for i := 1; i < len(values); i++ {
		if values[i-1].Id() >= values[i].Id() {
			t.Errorf("Values() not ordered at %d: %d >= %d", i, values[i-1].Id(), values[i].Id())
		}
	}
}

func TestIssue_MarkdownMsg(t *testing.T) {
	msg := Get(CorpusNotFoundId).MarkdownMsg()
	if !strings.Contains(string(msg), "FORTUNE_DIR") {
		t.Error("corpus not found guidance should mention FORTUNE_DIR")
	}
}

func TestIssue_DocLinksAreCloned(t *testing.T) {
	issue := Get(InvalidPatternId)
	links := issue.DocLinks()
	if len(links) == 0 {
		t.Fatal("expected doc links on invalid pattern issue")
	}

	links[0] = "modified"
	if issue.DocLinks()[0] == "modified" {
		t.Error("DocLinks() should return a copy")
	}
}

func TestIssue_Render(t *testing.T) {
	original := render
	t.Cleanup(func() { render = original })

	var gotStyle, gotMarkdown string
	render = func(in, stylePath string) (string, error) {
		gotMarkdown, gotStyle = in, stylePath
		return "rendered", nil
	}

	out, err := Get(InvalidPatternId).Render("dark")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if out != "rendered" || gotStyle != "dark" {
		t.Errorf("Render() = %q with style %q", out, gotStyle)
	}
	if !strings.Contains(gotMarkdown, "See also") || !strings.Contains(gotMarkdown, "re2") {
		t.Errorf("rendered markdown should list doc links:\n%s", gotMarkdown)
	}
}

func TestIssue_RenderWithGlamour(t *testing.T) {
	out, err := Get(EmptyCorpusId).Render("notty")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if !strings.Contains(out, "No fortune files found") {
		t.Errorf("rendered output missing title:\n%s", out)
	}
}
