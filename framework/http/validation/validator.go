package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ── Types ────────────────────────────────────────────────────────────────────

// Errors holds validation messages per field.
// JSON output: {"errors": {"field": ["msg1", "msg2"]}}
type Errors struct {
	Bag map[string][]string `json:"errors"`
}

func (e *Errors) add(field, msg string) {
	if e.Bag == nil {
		e.Bag = make(map[string][]string)
	}
	e.Bag[field] = append(e.Bag[field], msg)
}

// Has returns true if there are any errors.
func (e *Errors) Has() bool { return len(e.Bag) > 0 }

// First returns the first error for a field.
func (e *Errors) First(field string) string {
	if msgs := e.Bag[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Error makes *Errors usable as an error; it lists the first message of each
// field in field order.
func (e *Errors) Error() string {
	fields := make([]string, 0, len(e.Bag))
	for f := range e.Bag {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, e.First(f))
	}
	return strings.Join(msgs, " ")
}

// Rules maps a field to a pipe-separated rule string.
// e.g. Rules{"title": "required|max:100", "id": "required|integer|gte:1"}
type Rules map[string]string

// ── Rule table ───────────────────────────────────────────────────────────────

// outcome of a single rule
type outcome int

const (
	pass outcome = iota
	fail
	skip // stop evaluating the field without an error
)

type rule func(value, param string) (outcome, string)

var alphaDash = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

var rules = map[string]rule{
	"required": func(v, _ string) (outcome, string) {
		if strings.TrimSpace(v) == "" {
			return fail, "The %s field is required."
		}
		return pass, ""
	},
	"sometimes": func(v, _ string) (outcome, string) {
		if v == "" {
			return skip, ""
		}
		return pass, ""
	},
	"nullable": func(v, _ string) (outcome, string) {
		if v == "" {
			return skip, ""
		}
		return pass, ""
	},
	"numeric": func(v, _ string) (outcome, string) {
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return fail, "The %s must be a number."
		}
		return pass, ""
	},
	"integer": func(v, _ string) (outcome, string) {
		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			return fail, "The %s must be an integer."
		}
		return pass, ""
	},
	"min": func(v, p string) (outcome, string) {
		n, _ := strconv.Atoi(p)
		if utf8.RuneCountInString(v) < n {
			return fail, "The %s must be at least " + p + " characters."
		}
		return pass, ""
	},
	"max": func(v, p string) (outcome, string) {
		n, _ := strconv.Atoi(p)
		if utf8.RuneCountInString(v) > n {
			return fail, "The %s may not be greater than " + p + " characters."
		}
		return pass, ""
	},
	"gte": func(v, p string) (outcome, string) {
		f, err := strconv.ParseFloat(v, 64)
		t, _ := strconv.ParseFloat(p, 64)
		if err != nil || f < t {
			return fail, "The %s must be greater than or equal to " + p + "."
		}
		return pass, ""
	},
	"in": func(v, p string) (outcome, string) {
		for _, a := range strings.Split(p, ",") {
			if strings.TrimSpace(a) == v {
				return pass, ""
			}
		}
		return fail, "The selected %s is invalid."
	},
	"alpha_dash": func(v, _ string) (outcome, string) {
		if !alphaDash.MatchString(v) {
			return fail, "The %s may only contain letters, numbers, dashes and underscores."
		}
		return pass, ""
	},
}

// ── Validator ────────────────────────────────────────────────────────────────

// Validator validates a flat map of input values.
type Validator struct {
	data   map[string]string
	rules  Rules
	errors *Errors
	ran    bool
}

// Make creates a new Validator.
func Make(data map[string]string, rules Rules) *Validator {
	return &Validator{data: data, rules: rules, errors: &Errors{}}
}

// Fails runs validation once and returns true if any rule fails.
func (v *Validator) Fails() bool {
	if !v.ran {
		v.validate()
		v.ran = true
	}
	return v.errors.Has()
}

// Passes returns true if all rules pass.
func (v *Validator) Passes() bool { return !v.Fails() }

// Errors returns the validation error bag.
func (v *Validator) Errors() *Errors { return v.errors }

func (v *Validator) validate() {
	for field, spec := range v.rules {
		value := v.data[field]
		for _, r := range strings.Split(spec, "|") {
			name, param, _ := strings.Cut(strings.TrimSpace(r), ":")
			fn, ok := rules[name]
			if !ok {
				continue
			}
			res, msg := fn(value, param)
			if res == fail {
				v.errors.add(field, fmt.Sprintf(msg, field))
			}
			if res != pass {
				break // first failure stops the field
			}
		}
	}
}
