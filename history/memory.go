package history

import "github.com/opencalc/lambda"

// Memory is an in-memory lambda.History double for tests: it records every
// pushed def/del in order and never fails, unless ErrOnPush is set, to
// exercise the rollback path in engine.Engine.
type Memory struct {
	Defs      []lambda.Function
	Dels      []lambda.Identifier
	ErrOnPush error
}

func (m *Memory) PushDef(f lambda.Function) error {
	if m.ErrOnPush != nil {
		return m.ErrOnPush
	}
	m.Defs = append(m.Defs, f)
	return nil
}

func (m *Memory) PushDel(name lambda.Identifier) error {
	if m.ErrOnPush != nil {
		return m.ErrOnPush
	}
	m.Dels = append(m.Dels, name)
	return nil
}

func (m *Memory) Clear() error {
	if m.ErrOnPush != nil {
		return m.ErrOnPush
	}
	m.Defs = nil
	m.Dels = nil
	return nil
}
