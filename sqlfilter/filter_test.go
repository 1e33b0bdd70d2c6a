package sqlfilter

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countPlaceholders(clauses []string) map[string]int {
	found := map[string]int{}
	for _, c := range clauses {
		for i := 1; i <= 9; i++ {
			ph := fmt.Sprintf("$%d", i)
			found[ph] += strings.Count(c, ph)
		}
	}
	return found
}

func TestBuildAssignsSequentialIndices(t *testing.T) {
	f := New()
	f.Add("p.fecha_pedido >= $?::date", "2025-01-01")
	f.Add("p.fecha_pedido <= $?::date", "2025-01-31")
	f.Add("( $?::text IS NULL OR p.tipo_carne = $? )", "VACUNO")

	clauses, args := f.Build()

	require.Len(t, clauses, 3)
	require.Len(t, args, 3)
	assert.Equal(t, "p.fecha_pedido >= $1::date", clauses[0])
	assert.Equal(t, "p.fecha_pedido <= $2::date", clauses[1])
	assert.Equal(t, "( $3::text IS NULL OR p.tipo_carne = $3 )", clauses[2])
	assert.Equal(t, []interface{}{"2025-01-01", "2025-01-31", "VACUNO"}, args)
}

func TestBuildNoIndexDriftAcrossOptionalCombinations(t *testing.T) {
	// Every combination of present/absent optional filters must keep the
	// number of distinct placeholders equal to the number of bound values.
	dates := []string{"", "2025-03-10"}
	names := []string{"", "Don Pedro"}
	flags := []string{"", "true", "false"}

	for _, d := range dates {
		for _, n := range names {
			for _, fl := range flags {
				f := New()
				if d != "" {
					f.Add("p.fecha_pedido >= $?::date", d)
				}
				f.Add("( $?::text IS NULL OR c.nombre ILIKE '%' || $? || '%' )", TextOrNil(n))
				if IsTrue(fl) {
					f.AddExpr("EXISTS (SELECT 1 FROM ventas.venta v WHERE v.id_pedido = p.id_pedido)")
				}

				clauses, args := f.Build()
				distinct := 0
				for _, count := range countPlaceholders(clauses) {
					if count > 0 {
						distinct++
					}
				}
				assert.Equal(t, len(args), distinct,
					"combo date=%q name=%q flag=%q", d, n, fl)
			}
		}
	}
}

func TestRepeatedMarkerSharesOneIndex(t *testing.T) {
	f := New()
	f.Add("p.estado = $?", "PAGADO")
	c := f.Add("( $?::text IS NULL OR c.nombre ILIKE '%' || $? || '%' )", "lurin")

	clauses, args := f.Build()

	require.Len(t, args, 2)
	assert.Equal(t, "$2", c.Placeholder())
	assert.Equal(t, "( $2::text IS NULL OR c.nombre ILIKE '%' || $2 || '%' )", clauses[1])
	assert.NotContains(t, clauses[1], "$3")
}

func TestWhereEmptyFilterIsUnconstrained(t *testing.T) {
	where, args := New().Where()
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestWhereKeepsBasePredicateWithoutOptionalFilters(t *testing.T) {
	f := New()
	f.Add("( $?::text IS NULL OR c.nombre ILIKE '%' || $? || '%' )", TextOrNil(""))
	f.Add("( $?::int IS NULL OR antiguedad >= $?::int )", IntOrNil(""))

	where, args := f.Where("p.estado_pago = 'PAGADO'")

	require.Len(t, args, 2)
	assert.Nil(t, args[0])
	assert.Nil(t, args[1])
	assert.True(t, strings.HasPrefix(where, "WHERE p.estado_pago = 'PAGADO'"))
	assert.Contains(t, where, "$1::text IS NULL")
	assert.Contains(t, where, "$2::int IS NULL")
}

func TestTextOrNil(t *testing.T) {
	assert.Nil(t, TextOrNil(""))
	assert.Nil(t, TextOrNil("   "))
	assert.Equal(t, "VACUNO", TextOrNil(" VACUNO "))
}

func TestIntOrNil(t *testing.T) {
	assert.Nil(t, IntOrNil(""))
	assert.Nil(t, IntOrNil("diez"))
	assert.Nil(t, IntOrNil("10.5"))
	assert.Equal(t, 10, IntOrNil("10"))
	assert.Equal(t, -3, IntOrNil(" -3 "))
}

func TestIsTrueExactTokenOnly(t *testing.T) {
	assert.True(t, IsTrue("true"))
	assert.False(t, IsTrue("TRUE"))
	assert.False(t, IsTrue("True"))
	assert.False(t, IsTrue("1"))
	assert.False(t, IsTrue("false"))
	assert.False(t, IsTrue(""))
}
