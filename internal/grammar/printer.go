package grammar

import "strings"

// String prints the expression in canonical form. Additive operators are
// spaced; multiplicative ones are spaced only when nothing binds looser,
// so "1+2*3" becomes "1 + 2*3" and "2*3" becomes "2 * 3".
func (e *Expression) String() string {
	compact := len(e.Tail) > 0

	var b strings.Builder
	b.WriteString(e.Head.format(compact))
	for _, t := range e.Tail {
		b.WriteString(" " + t.Op + " ")
		b.WriteString(t.Term.format(compact))
	}
	return b.String()
}

func (t *Term) format(compact bool) string {
	sep := " "
	if compact {
		sep = ""
	}

	var b strings.Builder
	b.WriteString(t.Head.Value)
	for _, f := range t.Tail {
		b.WriteString(sep + f.Op + sep)
		b.WriteString(f.Literal.Value)
	}
	return b.String()
}

func (t *Term) String() string {
	return t.format(false)
}
