package lambda

// History is an append-only journal of Context mutations. Implementations
// back it by whatever storage they like (see the history package for a
// file-backed YAML journal and an in-memory test double); the root package
// only depends on this interface.
//
// A command handler calling PushDef/PushDel must roll the Context mutation
// back if the push fails, so the Context and the journal never diverge; see
// spec §7's HistoryFailure class.
type History interface {
	// PushDef records that name was (re)defined with the given Function.
	PushDef(f Function) error

	// PushDel records that name was removed.
	PushDel(name Identifier) error

	// Clear truncates the journal.
	Clear() error
}

// NopHistory discards every record. It satisfies History for callers that
// don't need a durable journal.
type NopHistory struct{}

func (NopHistory) PushDef(Function) error   { return nil }
func (NopHistory) PushDel(Identifier) error { return nil }
func (NopHistory) Clear() error             { return nil }
