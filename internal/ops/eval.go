package ops

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// Eval runs a single command line such as `pow 2 8` or `reverse "Hello World"`.
func Eval(line string) (string, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return "", err
	}
	if len(tokens) == 0 {
		return "", fmt.Errorf("%w: empty command", ErrUsage)
	}
	return Call(tokens[0], tokens[1:])
}

// Tokenize splits line on ASCII whitespace. Double quotes group a token,
// which may then be empty or contain whitespace; `\"` and `\\` are
// recognised inside quotes.
func Tokenize(line string) ([]string, error) {
	var (
		tokens  []string
		cur     strings.Builder
		inToken bool
		quoted  bool
	)

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quoted && c == '\\' && i+1 < len(line) && (line[i+1] == '"' || line[i+1] == '\\'):
			i++
			cur.WriteByte(line[i])
		case c == '"':
			quoted = !quoted
			inToken = true
		case !quoted && isBlank(c):
			if inToken {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteByte(c)
			inToken = true
		}
	}

	if quoted {
		return nil, fmt.Errorf("%w: unterminated quote", ErrBadArgument)
	}
	if inToken {
		tokens = append(tokens, cur.String())
	}
	return tokens, nil
}

func looksLikeList(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")
}

// parseList decodes a JSON array of strings, repairing sloppy input such as
// single quotes or trailing commas.
func parseList(s string) ([]string, error) {
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err == nil {
		return items, nil
	}

	repaired, err := jsonrepair.JSONRepair(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid list %q: %v", ErrBadArgument, s, err)
	}
	if err := json.Unmarshal([]byte(repaired), &items); err != nil {
		return nil, fmt.Errorf("%w: list %q is not an array of strings", ErrBadArgument, s)
	}
	return items, nil
}

func isBlank(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
