package propcalc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DIMACSReader streams the clauses of a DIMACS CNF document, resolving
// literals against a Domain.
//
// Known limitation, shared with the reference implementation this
// library is modeled on: the DIMACS CNF format allows a clause to
// continue across several lines up to its terminating 0, but this
// reader requires exactly one clause per line. A clause that spans
// multiple lines is read as two independent (and wrong) clauses; this
// reader does not detect the violation.
type DIMACSReader struct {
	r      *bufio.Reader
	domain Domain
	cl     Clause
	valid  bool
	err    error
}

// NewDIMACSReader returns a DIMACSReader over r, resolving variables
// against domain.
func NewDIMACSReader(r io.Reader, domain Domain) *DIMACSReader {
	d := &DIMACSReader{r: bufio.NewReader(r), domain: domain}
	d.advance()
	return d
}

func (d *DIMACSReader) Valid() bool    { return d.valid }
func (d *DIMACSReader) Current() Clause { return d.cl }
func (d *DIMACSReader) Advance()       { d.advance() }

// Err returns the first read or parse error encountered, if the
// stream ended because of one rather than because the input was
// exhausted.
func (d *DIMACSReader) Err() error { return d.err }

func (d *DIMACSReader) advance() {
	for {
		line, rerr := d.r.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")

		switch {
		case line == "":
			if rerr != nil {
				d.valid = false
				if rerr != io.EOF {
					d.err = rerr
				}
				return
			}
			continue
		case strings.HasPrefix(line, "c"):
			if rerr != nil {
				d.valid = false
				if rerr != io.EOF {
					d.err = rerr
				}
				return
			}
			continue
		case strings.HasPrefix(line, "p"):
			if rerr != nil {
				d.valid = false
				if rerr != io.EOF {
					d.err = rerr
				}
				return
			}
			continue
		}

		cl, cerr := d.parseClauseLine(line)
		if cerr != nil {
			d.err = cerr
			d.valid = false
			return
		}
		d.cl = cl
		d.valid = true
		return
	}
}

func (d *DIMACSReader) parseClauseLine(line string) (Clause, error) {
	cl := NewClause(nil)
	for _, f := range strings.Fields(line) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Clause{}, fmt.Errorf("propcalc: dimacs: invalid literal %q: %w", f, err)
		}
		if n == 0 {
			break
		}
		nr := n
		if nr < 0 {
			nr = -nr
		}
		v, err := d.domain.Unpack(VarNr(nr))
		if err != nil {
			return Clause{}, err
		}
		cl.Set(v, n > 0)
	}
	return cl, nil
}

// Read parses a DIMACS CNF document from r and returns the Formula it
// describes: the conjunction of the disjunctions of its clauses, over
// domain.
func Read(r io.Reader, domain Domain) Formula {
	return FormulaFromClauseStream(NewDIMACSReader(r, domain), domain)
}

// Header overrides what Write would otherwise compute by caching the
// clause stream: the comment lines and the p cnf line's own variable
// and clause counts.
type Header struct {
	Comments []string
	MaxVar   VarNr
	NClauses int
}

// Write emits clauses to w as a DIMACS CNF document. Because the p
// cnf line must declare the final variable and clause counts up
// front, clauses is fully cached first (via Cached.CacheAll) so it
// can be measured, and the recorded values are then replayed.
func Write(w io.Writer, clauses Stream[Clause], domain Domain, comments ...string) error {
	cached := NewCached(clauses)
	n := cached.CacheAll()
	rows := cached.Values()

	var maxVar VarNr
	for _, cl := range rows {
		for _, v := range cl.Vars() {
			if nr := domain.Pack(v); nr > maxVar {
				maxVar = nr
			}
		}
	}
	return writeDimacs(w, rows, domain, Header{Comments: comments, MaxVar: maxVar, NClauses: n})
}

// WriteHeader emits clauses like Write, but with an explicit Header
// instead of one computed by caching the stream first. Useful when
// the caller already knows maxvar and the clause count, e.g. from the
// Domain's own Size.
func WriteHeader(w io.Writer, clauses Stream[Clause], domain Domain, header Header) error {
	var rows []Clause
	for clauses.Valid() {
		rows = append(rows, clauses.Current())
		clauses.Advance()
	}
	return writeDimacs(w, rows, domain, header)
}

func writeDimacs(w io.Writer, rows []Clause, domain Domain, header Header) error {
	for _, c := range header.Comments {
		if _, err := fmt.Fprintf(w, "c %s\n", c); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", header.MaxVar, header.NClauses); err != nil {
		return err
	}
	for _, cl := range rows {
		parts := make([]string, 0, cl.Len()+1)
		for _, v := range cl.Vars() {
			nr := int(domain.Pack(v))
			val, _ := cl.Get(v)
			if !val {
				nr = -nr
			}
			parts = append(parts, strconv.Itoa(nr))
		}
		parts = append(parts, "0")
		if _, err := fmt.Fprintf(w, "%s\n", strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}
