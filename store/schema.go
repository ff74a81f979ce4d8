package store

// schema is applied by Open; statements are idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS nodes (
		id    TEXT PRIMARY KEY,
		label TEXT NOT NULL,
		batch TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_nodes_label ON nodes(label)`,
	`CREATE TABLE IF NOT EXISTS node_props (
		node_id     TEXT NOT NULL REFERENCES nodes(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		value       TEXT NOT NULL,
		value_lower TEXT NOT NULL,
		PRIMARY KEY (node_id, name)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_node_props_lookup ON node_props(name, value_lower)`,
	`CREATE TABLE IF NOT EXISTS edges (
		id     TEXT PRIMARY KEY,
		label  TEXT NOT NULL,
		dir    TEXT NOT NULL,
		out_id TEXT NOT NULL REFERENCES nodes(id),
		in_id  TEXT NOT NULL REFERENCES nodes(id),
		batch  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_edges_label ON edges(label)`,
	`CREATE TABLE IF NOT EXISTS ingests (
		batch      TEXT PRIMARY KEY,
		kind       TEXT NOT NULL,
		rows       INTEGER NOT NULL,
		started_at DATETIME NOT NULL,
		finished_at DATETIME NOT NULL
	)`,
}

const (
	insertNode   = `INSERT INTO nodes (id, label, batch) VALUES (?, ?, ?)`
	insertProp   = `INSERT INTO node_props (node_id, name, value, value_lower) VALUES (?, ?, ?, ?)`
	insertEdge   = `INSERT INTO edges (id, label, dir, out_id, in_id, batch) VALUES (?, ?, ?, ?, ?, ?)`
	insertIngest = `INSERT INTO ingests (batch, kind, rows, started_at, finished_at) VALUES (?, ?, ?, ?, ?)`

	selectNode  = `SELECT label FROM nodes WHERE id = ?`
	selectProps = `SELECT name, value FROM node_props WHERE node_id = ?`
	selectEdge  = `SELECT label, dir, out_id, in_id FROM edges WHERE id = ?`

	selectEdgeIDsByLabel = `SELECT id FROM edges WHERE label = ? ORDER BY rowid`
	selectSourcesByLabel = `SELECT out_id FROM edges WHERE label = ? GROUP BY out_id ORDER BY MIN(rowid)`
	selectTargetsByLabel = `SELECT in_id FROM edges WHERE label = ? GROUP BY in_id ORDER BY MIN(rowid)`
	selectNodesByProp    = `SELECT p.node_id FROM node_props p JOIN nodes n ON n.id = p.node_id
		WHERE p.name = ? AND p.value_lower = ? ORDER BY n.rowid`

	countNodesByLabel = `SELECT label, COUNT(*) FROM nodes GROUP BY label`
	countEdgesByLabel = `SELECT label, COUNT(*) FROM edges GROUP BY label`
)
