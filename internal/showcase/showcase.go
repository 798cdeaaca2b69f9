// Package showcase builds the demonstration report that walks through every
// calculator and string helper, and renders it for a terminal or as JSON.
package showcase

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/pengelbrecht/utilkit/internal/calculator"
	"github.com/pengelbrecht/utilkit/internal/styles"
	"github.com/pengelbrecht/utilkit/internal/stringutil"
)

const title = "utilkit - Sample Application"

// Inputs are the user-facing values the string section runs on.
type Inputs struct {
	Text       string `json:"text"`
	Palindrome string `json:"palindrome"`
	Email      string `json:"email"`
}

// DefaultInputs returns the stock demo inputs.
func DefaultInputs() Inputs {
	return Inputs{
		Text:       "Hello World",
		Palindrome: "racecar",
		Email:      "test@example.com",
	}
}

// Entry is one line of the report.
type Entry struct {
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
	Err   string `json:"error,omitempty"`
}

// Section groups related entries.
type Section struct {
	Title   string  `json:"title"`
	Entries []Entry `json:"entries"`
}

// Report is the full demonstration output.
type Report struct {
	Title    string    `json:"title"`
	Inputs   Inputs    `json:"inputs"`
	Sections []Section `json:"sections"`
}

// Build runs every helper against in and collects the results.
func Build(in Inputs) Report {
	return Report{
		Title:    title,
		Inputs:   in,
		Sections: []Section{calculatorSection(), stringSection(in)},
	}
}

func calculatorSection() Section {
	s := Section{Title: "Calculator"}
	s.add("2 + 3", strconv.Itoa(calculator.Add(2, 3)), nil)
	s.add("10 - 4", strconv.Itoa(calculator.Subtract(10, 4)), nil)
	s.add("5 * 6", strconv.Itoa(calculator.Multiply(5, 6)), nil)

	q, err := calculator.Divide(15, 3)
	s.add("15 / 3", formatFloat(q), err)

	p, err := calculator.Power(2, 8)
	s.add("2^8", strconv.Itoa(p), err)

	r, err := calculator.SquareRoot(16)
	s.add("sqrt(16)", formatFloat(r), err)

	s.add("Is 4 even?", yesNo(calculator.IsEven(4)), nil)

	f, err := calculator.Factorial(5)
	s.add("5!", strconv.Itoa(f), err)

	_, err = calculator.Divide(1, 0)
	s.add("1 / 0", "", err)
	return s
}

func stringSection(in Inputs) Section {
	s := Section{Title: "Strings"}
	s.add("Original", in.Text, nil)
	s.add("Reversed", stringutil.Reverse(in.Text), nil)
	s.add("Uppercase", stringutil.ToUpperCase(in.Text), nil)
	s.add("Lowercase", stringutil.ToLowerCase(in.Text), nil)
	s.add("Vowels count", strconv.Itoa(stringutil.CountVowels(in.Text)), nil)
	s.add("Word count", strconv.Itoa(stringutil.CountWords(in.Text)), nil)
	s.add("Split on space", "["+strings.Join(quoteAll(stringutil.Split(in.Text, ' ')), ", ")+"]", nil)
	s.add("Joined with -", stringutil.Join(stringutil.Split(in.Text, ' '), "-"), nil)
	s.add(fmt.Sprintf("Is '%s' a palindrome?", in.Palindrome), yesNo(stringutil.IsPalindrome(in.Palindrome)), nil)
	s.add(fmt.Sprintf("Is '%s' a valid email?", in.Email), yesNo(stringutil.IsValidEmail(in.Email)), nil)
	s.add("Is '-123' numeric?", yesNo(stringutil.IsNumeric("-123")), nil)
	return s
}

func (s *Section) add(label, value string, err error) {
	e := Entry{Label: label}
	if err != nil {
		e.Err = err.Error()
	} else {
		e.Value = value
	}
	s.Entries = append(s.Entries, e)
}

// Failed returns the entries that carry an error.
func (r Report) Failed() []Entry {
	var out []Entry
	for _, s := range r.Sections {
		for _, e := range s.Entries {
			if e.Err != "" {
				out = append(out, e)
			}
		}
	}
	return out
}

// Options control RenderText.
type Options struct {
	// Width is the box width in cells. Zero sizes boxes to their content.
	Width int
	// Plain strips colour and text attributes, keeping the box layout.
	Plain bool
}

// RenderText writes the report as one bordered box per section.
func RenderText(w io.Writer, r Report, opts Options) error {
	var b strings.Builder
	b.WriteString(styles.BoldStyle.Render(r.Title))
	b.WriteString("\n")

	for _, s := range r.Sections {
		b.WriteString("\n")
		b.WriteString(renderSection(s, opts.Width))
		b.WriteString("\n")
	}

	out := b.String()
	if opts.Plain {
		out = ansi.Strip(out)
	}
	_, err := io.WriteString(w, out)
	return err
}

func renderSection(s Section, width int) string {
	labelWidth := 0
	for _, e := range s.Entries {
		if lw := styles.Width(e.Label); lw > labelWidth {
			labelWidth = lw
		}
	}

	// border (2) and padding (2)
	inner := width - 4
	lines := []string{styles.RenderHeader(s.Title + ":")}
	for _, e := range s.Entries {
		value := styles.RenderValue(e.Value)
		if e.Err != "" {
			value = styles.RenderError("error: " + e.Err)
		}
		line := styles.RenderLabel(styles.PadRight(e.Label, labelWidth)) + "  " + value
		if inner > 0 {
			line = styles.Truncate(line, inner)
		}
		lines = append(lines, line)
	}
	return styles.Box(width).Render(strings.Join(lines, "\n"))
}

// RenderJSON writes the report as indented JSON.
func RenderJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func quoteAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strconv.Quote(s)
	}
	return out
}
