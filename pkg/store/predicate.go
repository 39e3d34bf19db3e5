package store

import (
	"fmt"
	"strconv"
	"strings"
)

// Predicate is one structured filter clause compiled into the record store's
// formula language. Build them with Equals, Contains, Range, Or and Raw.
type Predicate interface {
	formula() (string, error)
	match(rec Record) (bool, error)
}

// Equals filters records where field equals value.
// Booleans are mapped to the store's checkbox encoding ("checked" / "").
func Equals(field string, value any) Predicate {
	return equalsPredicate{field: field, value: value}
}

// Contains filters link/array fields that contain value.
func Contains(field, value string) Predicate {
	return containsPredicate{field: field, value: value}
}

// Range filters numeric fields. Supported operators: ">=", "<=".
func Range(field, op string, value float64) Predicate {
	return rangePredicate{field: field, op: op, value: value}
}

// Or combines predicates with OR. A single predicate is emitted unwrapped.
func Or(preds ...Predicate) Predicate {
	return orPredicate{preds: preds}
}

// Raw is an escape hatch for formulas the structured predicates cannot express.
// Raw predicates cannot be evaluated by the in-memory store.
func Raw(formula string) Predicate {
	return rawPredicate{text: formula}
}

// Compile turns a predicate list into a filter formula.
// Zero predicates compile to the empty string (no filter attached),
// one predicate is emitted bare, two or more are wrapped in AND(...).
func Compile(preds []Predicate) (string, error) {
	switch len(preds) {
	case 0:
		return "", nil
	case 1:
		return preds[0].formula()
	}

	parts := make([]string, len(preds))
	for i, p := range preds {
		f, err := p.formula()
		if err != nil {
			return "", err
		}
		parts[i] = f
	}

	return fmt.Sprintf("AND(%s)", strings.Join(parts, ", ")), nil
}

// ==================== PREDICATE TYPES ====================

type equalsPredicate struct {
	field string
	value any
}

func (p equalsPredicate) formula() (string, error) {
	field, err := fieldRef(p.field)
	if err != nil {
		return "", err
	}

	switch v := p.value.(type) {
	case bool:
		// Checkbox fields round-trip as "checked" / empty string.
		if v {
			return fmt.Sprintf(`%s = "checked"`, field), nil
		}
		return fmt.Sprintf(`%s = ""`, field), nil
	case string:
		escaped, err := escapeValue(v)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`%s = "%s"`, field, escaped), nil
	case int:
		return fmt.Sprintf(`%s = %d`, field, v), nil
	case int64:
		return fmt.Sprintf(`%s = %d`, field, v), nil
	case float64:
		return fmt.Sprintf(`%s = %s`, field, formatNumber(v)), nil
	default:
		return "", fmt.Errorf("equals on %q: unsupported value type %T", p.field, p.value)
	}
}

func (p equalsPredicate) match(rec Record) (bool, error) {
	switch v := p.value.(type) {
	case bool:
		return rec.Bool(p.field) == v, nil
	case string:
		return rec.String(p.field) == v, nil
	case int:
		return rec.Float(p.field) == float64(v), nil
	case int64:
		return rec.Float(p.field) == float64(v), nil
	case float64:
		return rec.Float(p.field) == v, nil
	default:
		return false, fmt.Errorf("equals on %q: unsupported value type %T", p.field, p.value)
	}
}

type containsPredicate struct {
	field string
	value string
}

func (p containsPredicate) formula() (string, error) {
	field, err := fieldRef(p.field)
	if err != nil {
		return "", err
	}

	escaped, err := escapeValue(p.value)
	if err != nil {
		return "", err
	}

	// Link fields are arrays of record ids; test substring containment
	// against the joined array.
	return fmt.Sprintf(`FIND("%s", ARRAYJOIN(%s)) > 0`, escaped, field), nil
}

func (p containsPredicate) match(rec Record) (bool, error) {
	joined := strings.Join(rec.Strings(p.field), ",")
	return strings.Contains(joined, p.value), nil
}

type rangePredicate struct {
	field string
	op    string
	value float64
}

func (p rangePredicate) formula() (string, error) {
	field, err := fieldRef(p.field)
	if err != nil {
		return "", err
	}

	if p.op != ">=" && p.op != "<=" {
		return "", fmt.Errorf("range on %q: unsupported operator %q", p.field, p.op)
	}

	return fmt.Sprintf(`%s %s %s`, field, p.op, formatNumber(p.value)), nil
}

func (p rangePredicate) match(rec Record) (bool, error) {
	got := rec.Float(p.field)
	switch p.op {
	case ">=":
		return got >= p.value, nil
	case "<=":
		return got <= p.value, nil
	}
	return false, fmt.Errorf("range on %q: unsupported operator %q", p.field, p.op)
}

type orPredicate struct {
	preds []Predicate
}

func (p orPredicate) formula() (string, error) {
	if len(p.preds) == 0 {
		return "", fmt.Errorf("or: at least one predicate required")
	}
	if len(p.preds) == 1 {
		return p.preds[0].formula()
	}

	parts := make([]string, len(p.preds))
	for i, sub := range p.preds {
		f, err := sub.formula()
		if err != nil {
			return "", err
		}
		parts[i] = f
	}

	return fmt.Sprintf("OR(%s)", strings.Join(parts, ", ")), nil
}

func (p orPredicate) match(rec Record) (bool, error) {
	if len(p.preds) == 0 {
		return false, fmt.Errorf("or: at least one predicate required")
	}
	for _, sub := range p.preds {
		ok, err := sub.match(rec)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

type rawPredicate struct {
	text string
}

func (p rawPredicate) formula() (string, error) {
	if strings.TrimSpace(p.text) == "" {
		return "", fmt.Errorf("raw: empty formula")
	}
	return p.text, nil
}

func (p rawPredicate) match(Record) (bool, error) {
	return false, fmt.Errorf("raw predicates cannot be evaluated in memory")
}

// ==================== HELPER FUNCTIONS ====================

func fieldRef(field string) (string, error) {
	if field == "" {
		return "", fmt.Errorf("empty field name")
	}
	if strings.ContainsAny(field, "{}") {
		return "", fmt.Errorf("invalid field name %q", field)
	}
	return "{" + field + "}", nil
}

// escapeValue escapes the formula string delimiters so interpolated values
// cannot break out of the formula grammar.
func escapeValue(v string) (string, error) {
	if strings.ContainsRune(v, '\n') {
		return "", fmt.Errorf("value contains newline")
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `"`, `\"`)
	return v, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
