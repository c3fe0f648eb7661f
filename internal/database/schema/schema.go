package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Profile Snapshots
--
-- One row per profile. The whole progression state travels as a single JSONB
-- document so a snapshot write stays one upsert regardless of how much the
-- transaction touched.
CREATE TABLE IF NOT EXISTS profile_snapshots (
    profile_id VARCHAR(100) PRIMARY KEY,
    state JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_profile_snapshots_updated_at
    ON profile_snapshots (updated_at);
`
