package app

import "github.com/thiagovelsa/jurisdesk/internal/dbclient"

// DBLoad attaches a database by URL (sqlite:name.db, mysql://...,
// postgres://...) and returns the URL, which later calls use as the
// handle. Loading an already-attached URL is a no-op.
func (a *App) DBLoad(db string) (string, error) {
	return a.sql.Load(a.ctx, db)
}

// DBSelect runs a read query against a loaded database and returns the
// rows as column-keyed objects.
func (a *App) DBSelect(db, query string, values []any) ([]map[string]any, error) {
	return a.sql.Select(a.ctx, db, query, values)
}

// DBExecute runs a write statement against a loaded database.
func (a *App) DBExecute(db, query string, values []any) (*dbclient.ExecResult, error) {
	return a.sql.Execute(a.ctx, db, query, values)
}

// DBClose detaches a database. An empty URL detaches all of them;
// closing a URL that was never loaded is a no-op.
func (a *App) DBClose(db string) (bool, error) {
	if db == "" {
		a.sql.CloseAll()
		return true, nil
	}
	if err := a.sql.Close(db); err != nil {
		return false, err
	}
	return true, nil
}
