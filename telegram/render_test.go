// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Kpacaychuk/type-quiz-bot/models"
)

func TestRenderReport(t *testing.T) {
	report := &models.Report{
		PollID:  "ABC123",
		Options: []string{"Red", "Green", "Blue", "Cyan", "Pink"},
		Groups: []models.ReportGroup{
			{Number: 1, Members: []models.ReportMember{
				{ParticipantID: "11", FirstName: "Ada", LastName: "Lovelace", Known: true, Answers: []int{1, 2, 3}},
				{ParticipantID: "12", Answers: []int{3, 4, 5}},
			}},
			{Number: 2, Members: []models.ReportMember{
				{ParticipantID: "13", FirstName: "Alan", LastName: "Turing", Known: true, Answers: []int{1, 4, 5}},
			}},
		},
	}

	got := RenderReport(report)

	want := []string{
		"📊 Poll #ABC123 results:",
		"Group 1:\n— Ada Lovelace (answers: 1, 2, 3) [ID: 11]\n— Unknown participant (answers: 3, 4, 5) [ID: 12]",
		"Group 2:\n— Alan Turing (answers: 1, 4, 5) [ID: 13]",
		"Options:\n1. Red\n2. Green\n3. Blue\n4. Cyan\n5. Pink\n",
	}
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("report missing %q:\n%s", w, got)
		}
	}
	if strings.Index(got, "Group 1:") > strings.Index(got, "Group 2:") {
		t.Error("groups out of order")
	}
}

func TestPollCreatedText_EscapesHTML(t *testing.T) {
	got := pollCreatedText("ABC123", []string{"<b>", "x", "y", "z", "w"})
	if !strings.Contains(got, "<code>ABC123</code>") {
		t.Errorf("expected code markup, got %q", got)
	}
	if !strings.Contains(got, "1. &lt;b&gt;") {
		t.Errorf("expected escaped option, got %q", got)
	}
}

func TestSplitMessage(t *testing.T) {
	t.Run("short text stays whole", func(t *testing.T) {
		chunks := SplitMessage("hello\nworld", 100)
		if len(chunks) != 1 || chunks[0] != "hello\nworld" {
			t.Errorf("unexpected chunks %q", chunks)
		}
	})

	t.Run("splits on lines", func(t *testing.T) {
		text := "aaaa\nbbbb\ncccc\n"
		chunks := SplitMessage(text, 10)
		if strings.Join(chunks, "") != text {
			t.Errorf("chunks do not reassemble: %q", chunks)
		}
		for _, c := range chunks {
			if len(c) > 10 {
				t.Errorf("chunk %q exceeds limit", c)
			}
		}
		if chunks[0] != "aaaa\nbbbb\n" {
			t.Errorf("expected the first chunk to end at a line break, got %q", chunks[0])
		}
	})

	t.Run("long line keeps runes whole", func(t *testing.T) {
		text := strings.Repeat("й", 10) // 2 bytes each
		chunks := SplitMessage(text, 5)
		if strings.Join(chunks, "") != text {
			t.Errorf("chunks do not reassemble: %q", chunks)
		}
		for _, c := range chunks {
			if !utf8.ValidString(c) || len(c) > 5 {
				t.Errorf("bad chunk %q", c)
			}
		}
	})
}
