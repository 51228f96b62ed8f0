package repository

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/restaurant-hours/internal/domain/openhours"
)

// Both relational backends render openhours.Rule; neither spells the
// open-window logic out itself.

const openHoursAlias = "oh"

var (
	dayColumn   = clause.Column{Table: openHoursAlias, Name: "day_of_week"}
	startColumn = clause.Column{Table: openHoursAlias, Name: "start_time_minute_of_day"}
	endColumn   = clause.Column{Table: openHoursAlias, Name: "end_time_minute_of_day"}
)

func fieldColumn(f openhours.Field) clause.Column {
	if f == openhours.FieldEnd {
		return endColumn
	}
	return startColumn
}

// --------------------------------------------------
// Hand-written SQL ($n placeholders)
// --------------------------------------------------

type sqlPredicate struct {
	b    strings.Builder
	args []any
}

// renderSQL turns c into a parameterized predicate over the oh alias.
func renderSQL(c openhours.Cond) (string, []any, error) {
	p := &sqlPredicate{}
	if err := p.write(c); err != nil {
		return "", nil, err
	}
	return p.b.String(), p.args, nil
}

func (p *sqlPredicate) placeholder(v any) string {
	p.args = append(p.args, v)
	return "$" + strconv.Itoa(len(p.args))
}

func (p *sqlPredicate) column(c clause.Column) string {
	return c.Table + "." + c.Name
}

func (p *sqlPredicate) write(c openhours.Cond) error {
	switch v := c.(type) {
	case openhours.DayIs:
		p.b.WriteString(p.column(dayColumn) + " = " + p.placeholder(v.Day.String()))
	case openhours.Bound:
		op, err := sqlOp(v.Op)
		if err != nil {
			return err
		}
		p.b.WriteString(p.column(fieldColumn(v.Field)) + " " + op + " " + p.placeholder(int(v.At)))
	case openhours.SpansMidnight:
		p.b.WriteString(p.column(startColumn) + " > " + p.column(endColumn))
	case openhours.All:
		return p.join(v, " AND ", "TRUE")
	case openhours.Any:
		return p.join(v, " OR ", "FALSE")
	default:
		return fmt.Errorf("unsupported condition %T", c)
	}
	return nil
}

func (p *sqlPredicate) join(subs []openhours.Cond, sep, empty string) error {
	if len(subs) == 0 {
		p.b.WriteString(empty)
		return nil
	}
	p.b.WriteByte('(')
	for i, sub := range subs {
		if i > 0 {
			p.b.WriteString(sep)
		}
		if err := p.write(sub); err != nil {
			return err
		}
	}
	p.b.WriteByte(')')
	return nil
}

func sqlOp(op openhours.Op) (string, error) {
	switch op {
	case openhours.OpLe:
		return "<=", nil
	case openhours.OpGe:
		return ">=", nil
	}
	return "", fmt.Errorf("unsupported operator %d", op)
}

// --------------------------------------------------
// Query builder (gorm clauses)
// --------------------------------------------------

func gormExpr(c openhours.Cond) (clause.Expression, error) {
	switch v := c.(type) {
	case openhours.DayIs:
		return clause.Eq{Column: dayColumn, Value: v.Day.String()}, nil
	case openhours.Bound:
		col := fieldColumn(v.Field)
		switch v.Op {
		case openhours.OpLe:
			return clause.Lte{Column: col, Value: int(v.At)}, nil
		case openhours.OpGe:
			return clause.Gte{Column: col, Value: int(v.At)}, nil
		}
		return nil, fmt.Errorf("unsupported operator %d", v.Op)
	case openhours.SpansMidnight:
		return clause.Gt{Column: startColumn, Value: endColumn}, nil
	case openhours.All:
		if len(v) == 0 {
			return clause.Expr{SQL: "TRUE"}, nil
		}
		exprs, err := gormExprs(v)
		if err != nil {
			return nil, err
		}
		return clause.And(exprs...), nil
	case openhours.Any:
		if len(v) == 0 {
			return clause.Expr{SQL: "FALSE"}, nil
		}
		exprs, err := gormExprs(v)
		if err != nil {
			return nil, err
		}
		if len(exprs) == 1 {
			return exprs[0], nil
		}
		return clause.Or(exprs...), nil
	}
	return nil, fmt.Errorf("unsupported condition %T", c)
}

func gormExprs(subs []openhours.Cond) ([]clause.Expression, error) {
	out := make([]clause.Expression, 0, len(subs))
	for _, sub := range subs {
		e, err := gormExpr(sub)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
