package executor

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rdbms/internal/storage"
)

func newTestExecutor(t *testing.T) *Executor {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	engine, err := storage.NewEngine(storage.Options{DataDir: t.TempDir(), Log: log})
	require.NoError(t, err)
	return New(engine, 0)
}

// TestEndToEndScenario1 is spec.md §8 scenario 1.
func TestEndToEndScenario1(t *testing.T) {
	x := newTestExecutor(t)

	res := x.Execute("CREATE TABLE categories (id INT PRIMARY KEY, name VARCHAR(100) NOT NULL)")
	require.True(t, res.Success)

	res = x.Execute("INSERT INTO categories VALUES (1, 'Books')")
	require.True(t, res.Success)
	assert.Equal(t, 0, res.RowID)

	res = x.Execute("SELECT * FROM categories WHERE id = 1")
	require.True(t, res.Success)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, 1, res.Count)
	assert.EqualValues(t, 1, res.Rows[0]["id"])
	assert.Equal(t, "Books", res.Rows[0]["name"])
}

// TestEndToEndScenario2 is spec.md §8 scenario 2.
func TestEndToEndScenario2(t *testing.T) {
	x := newTestExecutor(t)
	require.True(t, x.Execute("CREATE TABLE categories (id INT PRIMARY KEY, name VARCHAR(100) NOT NULL)").Success)
	require.True(t, x.Execute("INSERT INTO categories VALUES (1, 'Books')").Success)

	res := x.Execute("INSERT INTO categories VALUES (1, 'Other')")
	require.False(t, res.Success)
	assert.Contains(t, res.Error, "already exists")

	res = x.Execute("SELECT * FROM categories")
	require.True(t, res.Success)
	assert.Len(t, res.Rows, 1)
}

// TestEndToEndScenario3 is spec.md §8 scenario 3 (join).
func TestEndToEndScenario3(t *testing.T) {
	x := newTestExecutor(t)
	require.True(t, x.Execute("CREATE TABLE categories (id INT PRIMARY KEY, name VARCHAR(100) NOT NULL)").Success)
	require.True(t, x.Execute("CREATE TABLE products (id INT PRIMARY KEY, name VARCHAR(200), category_id INT NOT NULL)").Success)
	require.True(t, x.Execute("INSERT INTO categories VALUES (1, 'Books')").Success)
	require.True(t, x.Execute("INSERT INTO products VALUES (10, 'Book A', 1)").Success)
	require.True(t, x.Execute("INSERT INTO products VALUES (11, 'Book B', 1)").Success)

	res := x.Execute("SELECT * FROM products JOIN categories ON products.category_id = categories.id")
	require.True(t, res.Success)
	require.Len(t, res.Rows, 2)
	for _, row := range res.Rows {
		for _, key := range []string{"products.id", "products.name", "products.category_id", "categories.id", "categories.name"} {
			assert.Contains(t, row, key)
		}
	}
}

// TestEndToEndScenario4 is spec.md §8 scenario 4.
func TestEndToEndScenario4(t *testing.T) {
	x := newTestExecutor(t)
	require.True(t, x.Execute("CREATE TABLE products (id INT PRIMARY KEY, name VARCHAR(200), category_id INT NOT NULL)").Success)
	require.True(t, x.Execute("INSERT INTO products VALUES (10, 'Book A', 1)").Success)

	res := x.Execute("UPDATE products SET name = 'Book AA' WHERE id = 10")
	require.True(t, res.Success)
	assert.Equal(t, 1, res.UpdatedCount)

	res = x.Execute("SELECT name FROM products WHERE id = 10")
	require.True(t, res.Success)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, map[string]any{"name": "Book AA"}, res.Rows[0])
}

// TestEndToEndScenario5 is spec.md §8 scenario 5: no FK enforcement.
func TestEndToEndScenario5(t *testing.T) {
	x := newTestExecutor(t)
	require.True(t, x.Execute("CREATE TABLE categories (id INT PRIMARY KEY, name VARCHAR(100) NOT NULL)").Success)
	require.True(t, x.Execute("CREATE TABLE products (id INT PRIMARY KEY, name VARCHAR(200), category_id INT NOT NULL)").Success)
	require.True(t, x.Execute("INSERT INTO categories VALUES (1, 'Books')").Success)
	require.True(t, x.Execute("INSERT INTO products VALUES (10, 'Book A', 1)").Success)

	res := x.Execute("DELETE FROM categories WHERE id = 1")
	require.True(t, res.Success)
	assert.Equal(t, 1, res.DeletedCount)

	res = x.Execute("SHOW TABLES")
	require.True(t, res.Success)
	assert.ElementsMatch(t, []string{"categories", "products"}, res.Tables)

	res = x.Execute("SELECT * FROM categories")
	require.True(t, res.Success)
	assert.Empty(t, res.Rows)
}

// TestEndToEndScenario6 is spec.md §8 scenario 6.
func TestEndToEndScenario6(t *testing.T) {
	x := newTestExecutor(t)
	require.True(t, x.Execute("CREATE TABLE products (id INT PRIMARY KEY, name VARCHAR(200), category_id INT NOT NULL)").Success)

	res := x.Execute("DESCRIBE products")
	require.True(t, res.Success)
	require.Len(t, res.Columns, 3)
	assert.Equal(t, "id", res.Columns[0].Column)
	assert.Equal(t, "PRIMARY KEY, NOT NULL", res.Columns[0].Constraints)
}

func TestUpdateWithoutWhereFails(t *testing.T) {
	x := newTestExecutor(t)
	require.True(t, x.Execute("CREATE TABLE t (id INT PRIMARY KEY)").Success)
	res := x.Execute("UPDATE t SET id = 2")
	assert.False(t, res.Success)
}

func TestDeleteWithoutWhereFails(t *testing.T) {
	x := newTestExecutor(t)
	require.True(t, x.Execute("CREATE TABLE t (id INT PRIMARY KEY)").Success)
	res := x.Execute("DELETE FROM t")
	assert.False(t, res.Success)
}

func TestInsertCardinalityMismatch(t *testing.T) {
	x := newTestExecutor(t)
	require.True(t, x.Execute("CREATE TABLE t (id INT PRIMARY KEY, name VARCHAR(10))").Success)

	res := x.Execute("INSERT INTO t VALUES (1)")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "expected 2 values, got 1")

	res = x.Execute("INSERT INTO t (id, name) VALUES (1)")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "column count doesn't match value count")
}

func TestSelectUnknownColumnIsSilentlyAbsent(t *testing.T) {
	x := newTestExecutor(t)
	require.True(t, x.Execute("CREATE TABLE t (id INT PRIMARY KEY)").Success)
	require.True(t, x.Execute("INSERT INTO t VALUES (1)").Success)

	res := x.Execute("SELECT id, bogus FROM t")
	require.True(t, res.Success)
	require.Len(t, res.Rows, 1)
	_, hasBogus := res.Rows[0]["bogus"]
	assert.False(t, hasBogus)
}

func TestDropTable(t *testing.T) {
	x := newTestExecutor(t)
	require.True(t, x.Execute("CREATE TABLE t (id INT PRIMARY KEY)").Success)

	res := x.Execute("DROP TABLE t")
	require.True(t, res.Success)

	res = x.Execute("SHOW TABLES")
	require.True(t, res.Success)
	assert.Empty(t, res.Tables)
}

func TestDropTableUnknownFails(t *testing.T) {
	x := newTestExecutor(t)
	res := x.Execute("DROP TABLE nope")
	assert.False(t, res.Success)
}

func TestShowTablesAndDescribeDirectMethods(t *testing.T) {
	x := newTestExecutor(t)
	require.True(t, x.Execute("CREATE TABLE t (id INT PRIMARY KEY)").Success)

	res := x.ShowTables()
	assert.Equal(t, []string{"t"}, res.Tables)

	res = x.Describe("t")
	require.True(t, res.Success)
	assert.Equal(t, "t", res.Table)
}

// DESCRIBE of an unknown table is its own error category (spec §7:
// Arity), distinct from the Schema errors every other "table does not
// exist" case raises.
func TestDescribeUnknownTableIsArityError(t *testing.T) {
	x := newTestExecutor(t)

	res := x.Describe("nope")
	require.False(t, res.Success)
	assert.Contains(t, res.Error, "does not exist")
	assert.Contains(t, res.Error, "arity error")

	res = x.Execute("DESCRIBE nope")
	require.False(t, res.Success)
	assert.Contains(t, res.Error, "does not exist")
	assert.Contains(t, res.Error, "arity error")
}
