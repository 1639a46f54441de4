// Package verify replays rendered statements against a live MySQL server
// and re-parses what the server reports back.
package verify

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/shibukawa/dialectsql/ast"
	"github.com/shibukawa/dialectsql/formatter"
	"github.com/shibukawa/dialectsql/parser"
)

// Result is the outcome of replaying one statement.
type Result struct {
	Rendered string
	// Executed is false for statements that are only parsed, never sent.
	Executed bool
	// ExecutedSQL is the text sent to the server. CREATE TABLE runs under a
	// scratch table name and LOCK TABLES refers to those scratch tables.
	ExecutedSQL string
	// ServerDDL and Reparsed are set for CREATE TABLE. Reparsed carries the
	// original table name.
	ServerDDL string
	Reparsed  *ast.CreateTable
	// MissingOptions lists table options of the rendered statement that the
	// server did not report back.
	MissingOptions []string
}

// Verifier runs statements on one pinned connection, so LOCK TABLES and
// UNLOCK TABLES apply to the same session. Tables are created under scratch
// names, so existing tables of the same name are never touched.
type Verifier struct {
	conn      *sql.Conn
	dialect   parser.Dialect
	formatter *formatter.SQLFormatter
	// DropCreated drops the scratch tables when Verify returns.
	DropCreated bool
}

// New pins a connection from db.
func New(ctx context.Context, db *sql.DB, dialect parser.Dialect) (*Verifier, error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	return &Verifier{
		conn:      conn,
		dialect:   dialect,
		formatter: formatter.NewSQLFormatter(dialect),
	}, nil
}

// Close releases the pinned connection.
func (v *Verifier) Close() error {
	return v.conn.Close()
}

// Verify replays CREATE TABLE, LOCK TABLES and UNLOCK TABLES statements.
// Other statements are rendered but not executed.
func (v *Verifier) Verify(ctx context.Context, stmts []ast.Statement) (results []Result, err error) {
	results = make([]Result, 0, len(stmts))
	scratch := scratchTables{}

	if v.DropCreated {
		defer func() {
			err = errors.Join(err, v.dropScratch(ctx, scratch))
		}()
	}

	for _, stmt := range stmts {
		result := Result{Rendered: v.formatter.FormatStatement(stmt)}

		switch s := stmt.(type) {
		case *ast.CreateTable:
			if err := v.createTable(ctx, s, scratch.createStatement(s), &result); err != nil {
				return results, err
			}
		case *ast.LockTables:
			if err := v.exec(ctx, scratch.lockStatement(s), &result); err != nil {
				return results, err
			}
		case *ast.UnlockTables:
			if err := v.exec(ctx, s, &result); err != nil {
				return results, err
			}
		}

		results = append(results, result)
	}

	return results, nil
}

func (v *Verifier) exec(ctx context.Context, stmt ast.Statement, result *Result) error {
	result.ExecutedSQL = v.formatter.FormatStatement(stmt)
	if _, err := v.conn.ExecContext(ctx, result.ExecutedSQL); err != nil {
		return fmt.Errorf("failed to execute '%s': %w", result.ExecutedSQL, err)
	}
	result.Executed = true

	return nil
}

func (v *Verifier) createTable(ctx context.Context, stmt, scratch *ast.CreateTable, result *Result) error {
	if err := v.exec(ctx, scratch, result); err != nil {
		return err
	}

	var table, ddl string

	err := v.conn.QueryRowContext(ctx, "SHOW CREATE TABLE "+scratch.Name.String()).Scan(&table, &ddl)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpectedServerDDL, err)
	}
	result.ServerDDL = ddl

	reparsed, err := parser.ParseStatements(v.dialect, ddl)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReparseFailed, err)
	}

	create, ok := singleCreateTable(reparsed)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnexpectedServerDDL, ddl)
	}
	create.Name = stmt.Name

	result.Reparsed = create
	result.MissingOptions = missingOptions(stmt.Options, create.Options)

	return nil
}

// dropScratch releases table locks of the session and drops every scratch
// table.
func (v *Verifier) dropScratch(ctx context.Context, scratch scratchTables) error {
	if len(scratch) == 0 {
		return nil
	}

	if _, err := v.conn.ExecContext(ctx, "UNLOCK TABLES"); err != nil {
		return fmt.Errorf("%w: %w", ErrCleanupFailed, err)
	}

	var errs []error
	for _, name := range scratch.names() {
		if _, err := v.conn.ExecContext(ctx, "DROP TABLE IF EXISTS "+name); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrCleanupFailed, name, err))
		}
	}

	return errors.Join(errs...)
}

func singleCreateTable(stmts []ast.Statement) (*ast.CreateTable, bool) {
	if len(stmts) != 1 {
		return nil, false
	}
	create, ok := stmts[0].(*ast.CreateTable)
	return create, ok
}

// optionKey names an option by its keyword phrase.
func optionKey(o ast.SqlOption) string {
	switch o := o.(type) {
	case *ast.KeyValueOption:
		return o.Key.Value
	case *ast.IdentOption:
		return o.Name.Value
	case *ast.TableSpaceOption:
		return "TABLESPACE"
	case *ast.UnionOption:
		return "UNION"
	}
	return ""
}

func missingOptions(sent, reported []ast.SqlOption) []string {
	keys := make([]string, 0, len(reported))
	for _, o := range reported {
		keys = append(keys, optionKey(o))
	}

	var missing []string
	for _, o := range sent {
		if key := optionKey(o); !slices.Contains(keys, key) {
			missing = append(missing, key)
		}
	}

	return missing
}
