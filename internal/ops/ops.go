// Package ops exposes the calculator and string helpers as named operations
// that take and return text, so command-line and interactive front ends can
// share one dispatch table.
package ops

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pengelbrecht/utilkit/internal/calculator"
	"github.com/pengelbrecht/utilkit/internal/stringutil"
)

// Operation groups.
const (
	GroupCalc = "calc"
	GroupStr  = "str"
)

var (
	// ErrUsage is returned for an unknown operation or a wrong argument count.
	ErrUsage = errors.New("usage")

	// ErrBadArgument is returned when an argument cannot be parsed.
	ErrBadArgument = errors.New("bad argument")
)

// Op describes one operation.
type Op struct {
	Name    string
	Aliases []string
	Group   string
	Usage   string
	Summary string

	// MinArgs and MaxArgs bound the argument count. MaxArgs < 0 is unbounded.
	MinArgs int
	MaxArgs int

	Run func(args []string) (string, error)
}

// Matches reports whether name refers to this operation.
func (o Op) Matches(name string) bool {
	if strings.EqualFold(o.Name, name) {
		return true
	}
	for _, a := range o.Aliases {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}

// CheckArgs validates the argument count.
func (o Op) CheckArgs(args []string) error {
	if len(args) < o.MinArgs || (o.MaxArgs >= 0 && len(args) > o.MaxArgs) {
		return fmt.Errorf("%w: %s", ErrUsage, o.Usage)
	}
	return nil
}

var registry = []Op{
	{
		Name: "add", Aliases: []string{"+"}, Group: GroupCalc,
		Usage: "add <a> <b>", Summary: "sum of two integers",
		MinArgs: 2, MaxArgs: 2,
		Run: intBinary(calculator.Add),
	},
	{
		Name: "sub", Aliases: []string{"subtract", "-"}, Group: GroupCalc,
		Usage: "sub <a> <b>", Summary: "difference of two integers",
		MinArgs: 2, MaxArgs: 2,
		Run: intBinary(calculator.Subtract),
	},
	{
		Name: "mul", Aliases: []string{"multiply", "*"}, Group: GroupCalc,
		Usage: "mul <a> <b>", Summary: "product of two integers",
		MinArgs: 2, MaxArgs: 2,
		Run: intBinary(calculator.Multiply),
	},
	{
		Name: "div", Aliases: []string{"divide", "/"}, Group: GroupCalc,
		Usage: "div <a> <b>", Summary: "quotient of two numbers",
		MinArgs: 2, MaxArgs: 2,
		Run: func(args []string) (string, error) {
			a, err := parseFloat(args[0])
			if err != nil {
				return "", err
			}
			b, err := parseFloat(args[1])
			if err != nil {
				return "", err
			}
			v, err := calculator.Divide(a, b)
			if err != nil {
				return "", err
			}
			return formatFloat(v), nil
		},
	},
	{
		Name: "pow", Aliases: []string{"power", "^"}, Group: GroupCalc,
		Usage: "pow <base> <exponent>", Summary: "integer power, exponent >= 0",
		MinArgs: 2, MaxArgs: 2,
		Run: func(args []string) (string, error) {
			base, err := parseInt(args[0])
			if err != nil {
				return "", err
			}
			exp, err := parseInt(args[1])
			if err != nil {
				return "", err
			}
			v, err := calculator.Power(base, exp)
			if err != nil {
				return "", err
			}
			return strconv.Itoa(v), nil
		},
	},
	{
		Name: "sqrt", Aliases: []string{"squareroot"}, Group: GroupCalc,
		Usage: "sqrt <x>", Summary: "principal square root",
		MinArgs: 1, MaxArgs: 1,
		Run: func(args []string) (string, error) {
			x, err := parseFloat(args[0])
			if err != nil {
				return "", err
			}
			v, err := calculator.SquareRoot(x)
			if err != nil {
				return "", err
			}
			return formatFloat(v), nil
		},
	},
	{
		Name: "even", Aliases: []string{"iseven"}, Group: GroupCalc,
		Usage: "even <n>", Summary: "whether n is even",
		MinArgs: 1, MaxArgs: 1,
		Run: func(args []string) (string, error) {
			n, err := parseInt(args[0])
			if err != nil {
				return "", err
			}
			return strconv.FormatBool(calculator.IsEven(n)), nil
		},
	},
	{
		Name: "fact", Aliases: []string{"factorial", "!"}, Group: GroupCalc,
		Usage: "fact <n>", Summary: "factorial, n >= 0",
		MinArgs: 1, MaxArgs: 1,
		Run: func(args []string) (string, error) {
			n, err := parseInt(args[0])
			if err != nil {
				return "", err
			}
			v, err := calculator.Factorial(n)
			if err != nil {
				return "", err
			}
			return strconv.Itoa(v), nil
		},
	},

	{
		Name: "reverse", Aliases: []string{"rev"}, Group: GroupStr,
		Usage: "reverse <text>", Summary: "text reversed",
		MinArgs: 1, MaxArgs: 1,
		Run: strUnary(stringutil.Reverse),
	},
	{
		Name: "upper", Aliases: []string{"touppercase"}, Group: GroupStr,
		Usage: "upper <text>", Summary: "ASCII upper case",
		MinArgs: 1, MaxArgs: 1,
		Run: strUnary(stringutil.ToUpperCase),
	},
	{
		Name: "lower", Aliases: []string{"tolowercase"}, Group: GroupStr,
		Usage: "lower <text>", Summary: "ASCII lower case",
		MinArgs: 1, MaxArgs: 1,
		Run: strUnary(stringutil.ToLowerCase),
	},
	{
		Name: "palindrome", Aliases: []string{"ispalindrome"}, Group: GroupStr,
		Usage: "palindrome <text>", Summary: "whether text is a palindrome",
		MinArgs: 1, MaxArgs: 1,
		Run: func(args []string) (string, error) {
			return strconv.FormatBool(stringutil.IsPalindrome(args[0])), nil
		},
	},
	{
		Name: "vowels", Aliases: []string{"countvowels"}, Group: GroupStr,
		Usage: "vowels <text>", Summary: "number of vowels",
		MinArgs: 1, MaxArgs: 1,
		Run: func(args []string) (string, error) {
			return strconv.Itoa(stringutil.CountVowels(args[0])), nil
		},
	},
	{
		Name: "words", Aliases: []string{"countwords"}, Group: GroupStr,
		Usage: "words <text>", Summary: "number of whitespace-separated words",
		MinArgs: 1, MaxArgs: 1,
		Run: func(args []string) (string, error) {
			return strconv.Itoa(stringutil.CountWords(args[0])), nil
		},
	},
	{
		Name: "split", Group: GroupStr,
		Usage: "split <text> <delimiter>", Summary: "split on a single-byte delimiter",
		MinArgs: 2, MaxArgs: 2,
		Run: func(args []string) (string, error) {
			if len(args[1]) != 1 {
				return "", fmt.Errorf("%w: delimiter must be a single byte, got %q", ErrBadArgument, args[1])
			}
			return formatList(stringutil.Split(args[0], args[1][0]))
		},
	},
	{
		Name: "join", Group: GroupStr,
		Usage: "join <delimiter> <item>... | join <delimiter> <json-list>", Summary: "join items with a delimiter",
		MinArgs: 1, MaxArgs: -1,
		Run: func(args []string) (string, error) {
			items := args[1:]
			// A lone bracketed item is a list; anything that fails to
			// decode as one stays a literal item.
			if len(items) == 1 && looksLikeList(items[0]) {
				if list, err := parseList(items[0]); err == nil {
					items = list
				}
			}
			return stringutil.Join(items, args[0]), nil
		},
	},
	{
		Name: "email", Aliases: []string{"isvalidemail"}, Group: GroupStr,
		Usage: "email <address>", Summary: "whether address looks like an email",
		MinArgs: 1, MaxArgs: 1,
		Run: func(args []string) (string, error) {
			return strconv.FormatBool(stringutil.IsValidEmail(args[0])), nil
		},
	},
	{
		Name: "numeric", Aliases: []string{"isnumeric"}, Group: GroupStr,
		Usage: "numeric <text>", Summary: "whether text is a signed integer literal",
		MinArgs: 1, MaxArgs: 1,
		Run: func(args []string) (string, error) {
			return strconv.FormatBool(stringutil.IsNumeric(args[0])), nil
		},
	},
}

// All returns every operation, calculator operations first.
func All() []Op {
	out := make([]Op, len(registry))
	copy(out, registry)
	return out
}

// Group returns the operations in group, in registry order.
func Group(group string) []Op {
	var out []Op
	for _, o := range registry {
		if o.Group == group {
			out = append(out, o)
		}
	}
	return out
}

// Lookup finds an operation by name or alias, ignoring case.
func Lookup(name string) (Op, bool) {
	for _, o := range registry {
		if o.Matches(name) {
			return o, true
		}
	}
	return Op{}, false
}

// Call runs the named operation on args.
func Call(name string, args []string) (string, error) {
	o, ok := Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: unknown operation %q", ErrUsage, name)
	}
	return o.Call(args)
}

// Call checks the argument count and runs the operation.
func (o Op) Call(args []string) (string, error) {
	if err := o.CheckArgs(args); err != nil {
		return "", err
	}
	out, err := o.Run(args)
	if err != nil {
		return "", fmt.Errorf("%s: %w", o.Name, err)
	}
	return out, nil
}

func intBinary(fn func(a, b int) int) func([]string) (string, error) {
	return func(args []string) (string, error) {
		a, err := parseInt(args[0])
		if err != nil {
			return "", err
		}
		b, err := parseInt(args[1])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(fn(a, b)), nil
	}
}

func strUnary(fn func(string) string) func([]string) (string, error) {
	return func(args []string) (string, error) {
		return fn(args[0]), nil
	}
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrBadArgument, s)
	}
	return v, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrBadArgument, s)
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatList(items []string) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(data), nil
}
