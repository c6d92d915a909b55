package sqlite

const timeLayout = "2006-01-02T15:04:05.000000Z"

const createBudgetTable = `
CREATE TABLE IF NOT EXISTS budget_tracking (
	backend TEXT NOT NULL,
	month_year TEXT NOT NULL,
	budget_limit REAL NOT NULL DEFAULT 0,
	current_spend REAL NOT NULL DEFAULT 0,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (backend, month_year)
);
`

const createConversationsTable = `
CREATE TABLE IF NOT EXISTS conversations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL UNIQUE,
	contact_id TEXT,
	consent_given INTEGER NOT NULL DEFAULT 0,
	detected_sophistication TEXT NOT NULL,
	region TEXT,
	total_messages INTEGER NOT NULL DEFAULT 1,
	started_at TEXT NOT NULL,
	last_activity TEXT NOT NULL
);
`

const createMessagesTable = `
CREATE TABLE IF NOT EXISTS messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	conversation_id INTEGER NOT NULL REFERENCES conversations(id),
	message_type TEXT NOT NULL CHECK (message_type IN ('user', 'assistant')),
	message_text TEXT NOT NULL,
	response_sophistication TEXT,
	ai_backend TEXT,
	cost REAL NOT NULL DEFAULT 0,
	tokens_used INTEGER NOT NULL DEFAULT 0,
	processing_time_ms INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages(conversation_id);
`

const createCostsTable = `
CREATE TABLE IF NOT EXISTS costs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	message_id INTEGER NOT NULL REFERENCES messages(id),
	backend TEXT NOT NULL,
	cost_usd REAL NOT NULL,
	tokens_used INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_costs_created ON costs(created_at);
`
