package ops

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pengelbrecht/utilkit/internal/calculator"
)

func TestCall(t *testing.T) {
	cases := []struct {
		name     string
		op       string
		args     []string
		expected string
	}{
		{"add", "add", []string{"2", "3"}, "5"},
		{"subtract alias", "subtract", []string{"10", "4"}, "6"},
		{"multiply symbol", "*", []string{"5", "6"}, "30"},
		{"divide", "div", []string{"15", "3"}, "5"},
		{"divide fraction", "div", []string{"1", "4"}, "0.25"},
		{"power", "pow", []string{"2", "8"}, "256"},
		{"zero power", "pow", []string{"0", "0"}, "1"},
		{"sqrt", "sqrt", []string{"16"}, "4"},
		{"even", "even", []string{"-4"}, "true"},
		{"odd", "even", []string{"7"}, "false"},
		{"factorial", "fact", []string{"5"}, "120"},
		{"reverse", "reverse", []string{"Hello World"}, "dlroW olleH"},
		{"upper", "upper", []string{"Hello World"}, "HELLO WORLD"},
		{"lower", "lower", []string{"Hello World"}, "hello world"},
		{"palindrome", "palindrome", []string{"A man a plan a canal Panama"}, "true"},
		{"vowels", "vowels", []string{"Hello World"}, "3"},
		{"words", "words", []string{"   "}, "0"},
		{"split", "split", []string{"a,b,,c", ","}, `["a","b","","c"]`},
		{"split trailing", "split", []string{"a,b,", ","}, `["a","b"]`},
		{"split empty", "split", []string{"", ","}, `[]`},
		{"join items", "join", []string{"-", "a", "b", "c"}, "a-b-c"},
		{"join nothing", "join", []string{"-"}, ""},
		{"join json", "join", []string{"-", `["a","b","c"]`}, "a-b-c"},
		{"join repaired json", "join", []string{"+", `['x', 'y',]`}, "x+y"},
		{"join open bracket literal", "join", []string{"-", "[x"}, "[x"},
		{"join bracket among items", "join", []string{"-", "[x", "y]"}, "[x-y]"},
		{"join non-string list literal", "join", []string{"-", "[1, {}]"}, "[1, {}]"},
		{"email", "email", []string{"test@example.com"}, "true"},
		{"bad email", "email", []string{"a@b.c"}, "false"},
		{"numeric", "numeric", []string{"-123"}, "true"},
		{"lone sign", "numeric", []string{"+"}, "false"},
		{"case insensitive", "ADD", []string{"1", "1"}, "2"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Call(tc.op, tc.args)
			if err != nil {
				t.Fatalf("Call(%q, %q) error = %v", tc.op, tc.args, err)
			}
			if got != tc.expected {
				t.Errorf("Call(%q, %q) = %q, want %q", tc.op, tc.args, got, tc.expected)
			}
		})
	}
}

func TestCallErrors(t *testing.T) {
	cases := []struct {
		name string
		op   string
		args []string
		want error
	}{
		{"unknown op", "modulo", []string{"1", "2"}, ErrUsage},
		{"too few args", "add", []string{"1"}, ErrUsage},
		{"too many args", "sqrt", []string{"1", "2"}, ErrUsage},
		{"not an int", "add", []string{"1", "two"}, ErrBadArgument},
		{"float for int", "pow", []string{"2.5", "2"}, ErrBadArgument},
		{"not a float", "div", []string{"x", "1"}, ErrBadArgument},
		{"long delimiter", "split", []string{"a::b", "::"}, ErrBadArgument},
		{"empty delimiter", "split", []string{"ab", ""}, ErrBadArgument},
		{"division by zero", "div", []string{"1", "0"}, calculator.ErrDivisionByZero},
		{"negative exponent", "pow", []string{"2", "-1"}, calculator.ErrInvalidArgument},
		{"negative sqrt", "sqrt", []string{"-1"}, calculator.ErrInvalidArgument},
		{"negative factorial", "fact", []string{"-1"}, calculator.ErrInvalidArgument},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Call(tc.op, tc.args)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Call(%q, %q) error = %v, want %v", tc.op, tc.args, err, tc.want)
			}
			if got != "" {
				t.Errorf("Call(%q, %q) returned %q alongside error", tc.op, tc.args, got)
			}
		})
	}
}

func TestRegistryOrderAndGroups(t *testing.T) {
	all := All()
	seenStr := false
	for _, o := range all {
		switch o.Group {
		case GroupCalc:
			if seenStr {
				t.Fatalf("calc op %q listed after string ops", o.Name)
			}
		case GroupStr:
			seenStr = true
		default:
			t.Fatalf("op %q has unknown group %q", o.Name, o.Group)
		}
		if o.Run == nil || o.Usage == "" || o.Summary == "" {
			t.Errorf("op %q is missing Run, Usage or Summary", o.Name)
		}
	}

	if n := len(Group(GroupCalc)) + len(Group(GroupStr)); n != len(all) {
		t.Errorf("groups cover %d ops, want %d", n, len(all))
	}
	if len(Group(GroupCalc)) != 8 {
		t.Errorf("calc group has %d ops, want 8", len(Group(GroupCalc)))
	}
	if len(Group(GroupStr)) != 10 {
		t.Errorf("str group has %d ops, want 10", len(Group(GroupStr)))
	}
}

func TestNamesAreUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, o := range All() {
		for _, n := range append([]string{o.Name}, o.Aliases...) {
			if prev, ok := seen[n]; ok {
				t.Errorf("name %q used by both %q and %q", n, prev, o.Name)
			}
			seen[n] = o.Name
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "mutated"
	if _, ok := Lookup("mutated"); ok {
		t.Fatal("All() exposed the registry for mutation")
	}
}

func TestEval(t *testing.T) {
	cases := []struct {
		line     string
		expected string
	}{
		{"add 2 3", "5"},
		{"  pow   2 8  ", "256"},
		{`reverse "Hello World"`, "dlroW olleH"},
		{`words ""`, "0"},
		{`split "a b" " "`, `["a","b"]`},
		{`upper "say \"hi\""`, `SAY "HI"`},
	}

	for _, tc := range cases {
		got, err := Eval(tc.line)
		if err != nil {
			t.Fatalf("Eval(%q) error = %v", tc.line, err)
		}
		if got != tc.expected {
			t.Errorf("Eval(%q) = %q, want %q", tc.line, got, tc.expected)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	if _, err := Eval("   "); !errors.Is(err, ErrUsage) {
		t.Errorf("Eval(blank) error = %v, want ErrUsage", err)
	}
	if _, err := Eval(`reverse "open`); !errors.Is(err, ErrBadArgument) {
		t.Errorf("Eval(unterminated) error = %v, want ErrBadArgument", err)
	}
	if _, err := Eval("div 1 0"); !errors.Is(err, calculator.ErrDivisionByZero) {
		t.Errorf("Eval(div 1 0) error = %v, want ErrDivisionByZero", err)
	}
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		line     string
		expected []string
	}{
		{"", nil},
		{"a b\tc", []string{"a", "b", "c"}},
		{`a "" b`, []string{"a", "", "b"}},
		{`x"y z"w`, []string{"xy zw"}},
		{`"back\\slash"`, []string{`back\slash`}},
	}

	for _, tc := range cases {
		got, err := Tokenize(tc.line)
		if err != nil {
			t.Fatalf("Tokenize(%q) error = %v", tc.line, err)
		}
		if !reflect.DeepEqual(got, tc.expected) {
			t.Errorf("Tokenize(%q) = %q, want %q", tc.line, got, tc.expected)
		}
	}
}
