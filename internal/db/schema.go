package db

const schema = `
-- Students table
CREATE TABLE IF NOT EXISTS students (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    is_manager INTEGER NOT NULL DEFAULT 0,
    building INTEGER NOT NULL,
    unavailables TEXT NOT NULL DEFAULT '[]',
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_students_building ON students(building);
CREATE INDEX IF NOT EXISTS idx_students_name ON students(name);
`
