// SPDX-License-Identifier: MIT

// Package matrix - text forms: LaTeX rendering and a compact row literal.
//
// Literal grammar accepted by ParseRows:
//
//	rows    := row { ";" row }
//	row     := number { ( "," | space ) number }
//
// Example: "4 3; 6 3" or "1,2;3,4". Surrounding brackets "[...]" are ignored.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	opFormat = "FormatLaTeX"
	opParse  = "ParseRows"

	_latexOpen   = `\begin{pmatrix}`
	_latexClose  = `\end{pmatrix}`
	_latexColSep = " & "
	_latexRowSep = `\\`

	_rowSep = ";"

	// DefaultLaTeXPrecision matches the rounding of the interactive renderer.
	DefaultLaTeXPrecision = 15
)

// FormatLaTeX renders m as a pmatrix environment, rows separated by `\\`
// and entries by " & ".
//
// Each value is rounded to prec decimal places and then printed in its
// shortest form, so 0.500000000000000 becomes "0.5" and 2.000 becomes "2".
// A negative prec keeps full precision.
//
// Errors: ErrNilMatrix, plus any At failure of a non-Dense operand.
// Complexity: O(r*c).
func FormatLaTeX(m Matrix, prec int) (string, error) {
	if err := ValidateNotNil(m); err != nil {
		return "", matrixErrorf(opFormat, err)
	}
	buf, err := flatten(m)
	if err != nil {
		return "", matrixErrorf(opFormat, err)
	}
	rows, cols := m.Rows(), m.Cols()

	var b strings.Builder
	b.WriteString(_latexOpen)
	var i, j int
	for i = 0; i < rows; i++ {
		if i > 0 {
			b.WriteString(_latexRowSep)
		}
		for j = 0; j < cols; j++ {
			if j > 0 {
				b.WriteString(_latexColSep)
			}
			b.WriteString(formatRounded(buf[i*cols+j], prec))
		}
	}
	b.WriteString(_latexClose)

	return b.String(), nil
}

// formatRounded rounds v to prec decimals and prints the shortest decimal
// that parses back to the rounded value.
func formatRounded(v float64, prec int) string {
	if prec >= 0 {
		if r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', prec, 64), 64); err == nil {
			v = r
		}
	}
	if v == 0 {
		v = 0 // fold -0 into 0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseRows builds a Dense from a row literal such as "4 3; 6 3".
//
// Implementation:
//   - Stage 1: strip optional brackets; split rows on ';'.
//   - Stage 2: split each row on commas and whitespace; parse float64s.
//   - Stage 3: delegate shape and numeric policy to NewFromRows.
//
// Errors:
//   - ErrParse for empty input, empty rows or a token that is not a number.
//   - ErrDimensionMismatch for ragged rows; ErrNaNInf under the default policy.
func ParseRows(s string, opts ...Option) (*Dense, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	if strings.TrimSpace(s) == "" {
		return nil, matrixErrorf(opParse, ErrParse)
	}

	lines := strings.Split(s, _rowSep)
	rows := make([][]float64, 0, len(lines))
	for i, line := range lines {
		fields := strings.FieldsFunc(line, isEntrySep)
		if len(fields) == 0 {
			return nil, matrixErrorf(opParse, fmt.Errorf("row %d: %w", i, ErrParse))
		}
		row := make([]float64, len(fields))
		for j, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, matrixErrorf(opParse, fmt.Errorf("row %d, entry %d %q: %w", i, j, tok, ErrParse))
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	d, err := NewFromRows(rows, opts...)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}

	return d, nil
}

func isEntrySep(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
