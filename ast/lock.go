package ast

// LockTable is one entry of LOCK TABLES.
type LockTable struct {
	Table    Ident
	Alias    *Ident
	LockType LockTableType
}

func (l LockTable) String() string {
	s := l.Table.String()
	if l.Alias != nil {
		s += " AS " + l.Alias.String()
	}
	return s + " " + l.LockType.String()
}

// LockTableType is READ [LOCAL] or [LOW_PRIORITY] WRITE.
type LockTableType interface {
	String() string
	lockType()
}

// ReadLock is READ [LOCAL].
type ReadLock struct {
	Local bool
}

// WriteLock is [LOW_PRIORITY] WRITE.
type WriteLock struct {
	LowPriority bool
}

func (ReadLock) lockType()  {}
func (WriteLock) lockType() {}

func (l ReadLock) String() string {
	if l.Local {
		return "READ LOCAL"
	}
	return "READ"
}

func (l WriteLock) String() string {
	if l.LowPriority {
		return "LOW_PRIORITY WRITE"
	}
	return "WRITE"
}

// LockTables is LOCK TABLES t [[AS] alias] lock_type, ...
type LockTables struct {
	Tables []LockTable
}

// UnlockTables is UNLOCK TABLES.
type UnlockTables struct{}

func (*LockTables) statementNode()   {}
func (*UnlockTables) statementNode() {}

func (s *LockTables) String() string {
	return "LOCK TABLES " + join(s.Tables, ", ")
}

func (*UnlockTables) String() string { return "UNLOCK TABLES" }
