// Package validation checks flat string inputs against pipe-separated rules.
//
//	v := validation.Make(map[string]string{
//	    "title":  dto.Title,
//	    "author": dto.Author,
//	}, validation.Rules{
//	    "title":  "required|max:100",
//	    "author": "required|alpha_dash",
//	})
//
//	if v.Fails() {
//	    return builder.ValidationError(v.Errors()), nil // 422
//	}
//
// # Rules
//
//   - required      present and not blank
//   - sometimes     skip the field silently when absent
//   - nullable      allow empty, skipping the remaining rules
//   - numeric       parseable as float64
//   - integer       parseable as int64
//   - min:n, max:n  UTF-8 length bounds
//   - gte:n         numeric lower bound
//   - in:a,b,c      one of the listed values
//   - alpha_dash    letters, digits, dashes and underscores
//
// Unknown rules are ignored. Evaluation of a field stops at its first failing
// rule.
package validation
