package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- One feature extraction run over an input file
CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,          -- uuid
    source TEXT NOT NULL,             -- input path or "-" for stdin
    bins INTEGER NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Table records processed in a run
CREATE TABLE IF NOT EXISTS table_records (
    record_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    entity TEXT NOT NULL,
    section TEXT,
    table_id INTEGER,
    label TEXT,
    label_confidence REAL,
    num_rows INTEGER DEFAULT 0,
    num_cols INTEGER DEFAULT 0,
    content_hash TEXT NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE (run_id, content_hash)
);

CREATE INDEX IF NOT EXISTS idx_table_records_run ON table_records(run_id);
CREATE INDEX IF NOT EXISTS idx_table_records_label ON table_records(label);

-- Sparse feature values; absent keys read as zero
CREATE TABLE IF NOT EXISTS features (
    record_id INTEGER NOT NULL,
    key TEXT NOT NULL,
    value REAL NOT NULL,
    PRIMARY KEY (record_id, key),
    FOREIGN KEY (record_id) REFERENCES table_records(record_id) ON DELETE CASCADE
);
`
