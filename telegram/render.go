// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package telegram

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Kpacaychuk/type-quiz-bot/models"
)

// MaxMessageLength is the Bot API limit for one text message
const MaxMessageLength = 4096

func helpText() string {
	return "I run group polls.\n" +
		"Create a poll:\n" +
		"/create_poll\n" +
		"Or with your own options:\n" +
		"/create_poll option1 option2 option3 option4 option5\n\n" +
		"Join an existing poll:\n" +
		"/join_poll ABC123\n" +
		"where ABC123 is the poll ID\n\n" +
		"Change your name: /change_my_name"
}

const askNameText = "Please send your first and last name separated by a space:\nFor example: Ada Lovelace"

func pollCreatedText(pollID string, options []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Poll created!\nPoll ID: <code>%s</code>\n\nOptions:\n", html.EscapeString(pollID))
	for i, opt := range options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, html.EscapeString(opt))
	}
	return b.String()
}

// RenderReport formats a finalized poll for its creator
func RenderReport(report *models.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Poll #%s results:\n\n", report.PollID)

	for _, g := range report.Groups {
		fmt.Fprintf(&b, "Group %d:\n", g.Number)
		for _, m := range g.Members {
			answers := joinInts(m.Answers)
			if m.Known {
				fmt.Fprintf(&b, "— %s %s (answers: %s) [ID: %s]\n", m.FirstName, m.LastName, answers, m.ParticipantID)
			} else {
				fmt.Fprintf(&b, "— Unknown participant (answers: %s) [ID: %s]\n", answers, m.ParticipantID)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("Options:\n")
	for i, opt := range report.Options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, opt)
	}
	return b.String()
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// SplitMessage cuts text into chunks of at most limit bytes, preferring
// line breaks. A single line longer than limit is cut hard.
func SplitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var cur strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		for len(line) > limit {
			if cur.Len() > 0 {
				chunks = append(chunks, cur.String())
				cur.Reset()
			}
			cut := runeBoundary(line, limit)
			if cut == 0 {
				_, cut = utf8.DecodeRuneInString(line)
			}
			chunks = append(chunks, line[:cut])
			line = line[cut:]
		}
		if cur.Len()+len(line) > limit {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
		cur.WriteString(line)
	}
	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}

// runeBoundary returns the largest index <= n that does not split a rune
func runeBoundary(s string, n int) int {
	for n > 0 && n < len(s) && s[n]&0xC0 == 0x80 {
		n--
	}
	return n
}
