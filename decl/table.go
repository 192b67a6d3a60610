package decl

import (
	"fmt"
	"strings"

	gfn "github.com/panyam/goutils/fn"
)

// TableStmt is the AST of the currency table mini language:
//
//	      EUR   PLN
//	USD   0.9   4.0
//	GBP   1.15  5.1
//
// Rates of each row are aligned with Columns.
type TableStmt struct {
	NodeInfo
	Columns []*IdentifierExpr
	Rows    []*TableRow
}

// TableRow holds the rates from one source currency to every column.
type TableRow struct {
	NodeInfo
	Currency *IdentifierExpr
	Rates    []*LiteralExpr
}

func (t *TableStmt) String() string {
	lines := []string{strings.Join(gfn.Map(t.Columns, func(c *IdentifierExpr) string { return c.Name }), " ")}
	for _, row := range t.Rows {
		lines = append(lines, row.String())
	}
	return strings.Join(lines, "\n")
}

func (r *TableRow) String() string {
	rates := gfn.Map(r.Rates, func(l *LiteralExpr) string { return l.String() })
	return fmt.Sprintf("%s %s", r.Currency, strings.Join(rates, " "))
}
