// Keyword constants and their canonical spelling. Both lists are kept in the same order.

package tokenizer

const (
	NoKeyword Keyword = iota
	AGAINST
	ALL
	AND
	AS
	ASC
	AUTOEXTEND_SIZE
	AUTO_INCREMENT
	AVG_ROW_LENGTH
	BETWEEN
	BOOLEAN
	BY
	CHARACTER
	CHARSET
	CHECKSUM
	COLLATE
	COMMENT
	COMPRESSION
	CONNECTION
	CREATE
	CROSS
	DATA
	DAY
	DEFAULT
	DELAY_KEY_WRITE
	DESC
	DIRECTORY
	DISTINCT
	DIV
	ENCRYPTION
	END
	ENGINE
	ENGINE_ATTRIBUTE
	EXCEPT
	EXISTS
	EXPANSION
	FALSE
	FETCH
	FIRST
	FOR
	FORCE
	FROM
	FULL
	GRANT
	GROUP
	HAVING
	HOUR
	IF
	IGNORE
	IN
	INDEX
	INNER
	INSERT
	INSERT_METHOD
	INTERSECT
	INTERVAL
	INTO
	IS
	JOIN
	KEY
	KEY_BLOCK_SIZE
	LANGUAGE
	LAST
	LEFT
	LIKE
	LIMIT
	LOCAL
	LOCK
	LOW_PRIORITY
	MATCH
	MAX_ROWS
	MINUTE
	MIN_ROWS
	MOD
	MODE
	MONTH
	NAMES
	NATURAL
	NO
	NOT
	NULL
	OFFSET
	ON
	OR
	ORDER
	OUTER
	PACK_KEYS
	PASSWORD
	PRIMARY
	QUARTER
	QUERY
	READ
	RIGHT
	ROW_FORMAT
	SECOND
	SECONDARY_ENGINE_ATTRIBUTE
	SELECT
	SET
	START
	STATS_AUTO_RECALC
	STATS_PERSISTENT
	STATS_SAMPLE_PAGES
	STORAGE
	TABLE
	TABLES
	TABLESPACE
	TEMPORARY
	TO
	TRANSACTION
	TRUE
	UNION
	UNIQUE
	UNLOCK
	USE
	USING
	VALUES
	VIEW
	WEEK
	WHERE
	WINDOW
	WITH
	WRITE
	XOR
	YEAR
)

var keywordNames = [...]string{
	NoKeyword: "",
	AGAINST: "AGAINST",
	ALL: "ALL",
	AND: "AND",
	AS: "AS",
	ASC: "ASC",
	AUTOEXTEND_SIZE: "AUTOEXTEND_SIZE",
	AUTO_INCREMENT: "AUTO_INCREMENT",
	AVG_ROW_LENGTH: "AVG_ROW_LENGTH",
	BETWEEN: "BETWEEN",
	BOOLEAN: "BOOLEAN",
	BY: "BY",
	CHARACTER: "CHARACTER",
	CHARSET: "CHARSET",
	CHECKSUM: "CHECKSUM",
	COLLATE: "COLLATE",
	COMMENT: "COMMENT",
	COMPRESSION: "COMPRESSION",
	CONNECTION: "CONNECTION",
	CREATE: "CREATE",
	CROSS: "CROSS",
	DATA: "DATA",
	DAY: "DAY",
	DEFAULT: "DEFAULT",
	DELAY_KEY_WRITE: "DELAY_KEY_WRITE",
	DESC: "DESC",
	DIRECTORY: "DIRECTORY",
	DISTINCT: "DISTINCT",
	DIV: "DIV",
	ENCRYPTION: "ENCRYPTION",
	END: "END",
	ENGINE: "ENGINE",
	ENGINE_ATTRIBUTE: "ENGINE_ATTRIBUTE",
	EXCEPT: "EXCEPT",
	EXISTS: "EXISTS",
	EXPANSION: "EXPANSION",
	FALSE: "FALSE",
	FETCH: "FETCH",
	FIRST: "FIRST",
	FOR: "FOR",
	FORCE: "FORCE",
	FROM: "FROM",
	FULL: "FULL",
	GRANT: "GRANT",
	GROUP: "GROUP",
	HAVING: "HAVING",
	HOUR: "HOUR",
	IF: "IF",
	IGNORE: "IGNORE",
	IN: "IN",
	INDEX: "INDEX",
	INNER: "INNER",
	INSERT: "INSERT",
	INSERT_METHOD: "INSERT_METHOD",
	INTERSECT: "INTERSECT",
	INTERVAL: "INTERVAL",
	INTO: "INTO",
	IS: "IS",
	JOIN: "JOIN",
	KEY: "KEY",
	KEY_BLOCK_SIZE: "KEY_BLOCK_SIZE",
	LANGUAGE: "LANGUAGE",
	LAST: "LAST",
	LEFT: "LEFT",
	LIKE: "LIKE",
	LIMIT: "LIMIT",
	LOCAL: "LOCAL",
	LOCK: "LOCK",
	LOW_PRIORITY: "LOW_PRIORITY",
	MATCH: "MATCH",
	MAX_ROWS: "MAX_ROWS",
	MINUTE: "MINUTE",
	MIN_ROWS: "MIN_ROWS",
	MOD: "MOD",
	MODE: "MODE",
	MONTH: "MONTH",
	NAMES: "NAMES",
	NATURAL: "NATURAL",
	NO: "NO",
	NOT: "NOT",
	NULL: "NULL",
	OFFSET: "OFFSET",
	ON: "ON",
	OR: "OR",
	ORDER: "ORDER",
	OUTER: "OUTER",
	PACK_KEYS: "PACK_KEYS",
	PASSWORD: "PASSWORD",
	PRIMARY: "PRIMARY",
	QUARTER: "QUARTER",
	QUERY: "QUERY",
	READ: "READ",
	RIGHT: "RIGHT",
	ROW_FORMAT: "ROW_FORMAT",
	SECOND: "SECOND",
	SECONDARY_ENGINE_ATTRIBUTE: "SECONDARY_ENGINE_ATTRIBUTE",
	SELECT: "SELECT",
	SET: "SET",
	START: "START",
	STATS_AUTO_RECALC: "STATS_AUTO_RECALC",
	STATS_PERSISTENT: "STATS_PERSISTENT",
	STATS_SAMPLE_PAGES: "STATS_SAMPLE_PAGES",
	STORAGE: "STORAGE",
	TABLE: "TABLE",
	TABLES: "TABLES",
	TABLESPACE: "TABLESPACE",
	TEMPORARY: "TEMPORARY",
	TO: "TO",
	TRANSACTION: "TRANSACTION",
	TRUE: "TRUE",
	UNION: "UNION",
	UNIQUE: "UNIQUE",
	UNLOCK: "UNLOCK",
	USE: "USE",
	USING: "USING",
	VALUES: "VALUES",
	VIEW: "VIEW",
	WEEK: "WEEK",
	WHERE: "WHERE",
	WINDOW: "WINDOW",
	WITH: "WITH",
	WRITE: "WRITE",
	XOR: "XOR",
	YEAR: "YEAR",
}
