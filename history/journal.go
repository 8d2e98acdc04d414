// Package history implements the two journal hooks spec §6 names
// (push_history_def, push_history_del) plus clear_history, as an
// append-only YAML file that can rebuild a Context by replay, and an
// in-memory double for tests. Neither implementation is consulted by the
// core; engine.Engine (see the engine package) calls through the
// lambda.History interface these satisfy.
package history

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/opencalc/lambda"
)

// record is one YAML document of the journal: either a def (name, params,
// body) or a del (name only).
type record struct {
	Op     string   `yaml:"op"`
	Name   string   `yaml:"name"`
	Params []string `yaml:"params,omitempty"`
	Body   *exprDTO `yaml:"body,omitempty"`
}

// FileJournal is an append-only YAML journal of Context mutations, backed
// by a single file opened in append mode. Every PushDef/PushDel writes one
// YAML document, terminated by a "---" separator, without rewriting
// anything already on disk; Clear is the one operation that truncates it.
type FileJournal struct {
	mu   sync.Mutex
	path string
	f    *os.File
}

// Open opens (creating if necessary) the journal file at path for
// appending.
func Open(path string) (*FileJournal, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("history: opening journal %s: %w", path, err)
	}
	return &FileJournal{path: path, f: f}, nil
}

// PushDef appends a def record for fn.
func (j *FileJournal) PushDef(fn lambda.Function) error {
	return j.append(record{
		Op:     "def",
		Name:   string(fn.Name),
		Params: identifiersToStrings(fn.Params),
		Body:   toDTO(fn.Body),
	})
}

// PushDel appends a del record for name.
func (j *FileJournal) PushDel(name lambda.Identifier) error {
	return j.append(record{Op: "del", Name: string(name)})
}

// Clear truncates the journal file.
func (j *FileJournal) Clear() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.f.Close(); err != nil {
		return fmt.Errorf("history: closing journal before truncate: %w", err)
	}
	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("history: truncating journal %s: %w", j.path, err)
	}
	j.f = f
	return nil
}

// Close releases the underlying file handle.
func (j *FileJournal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.f.Close()
}

func (j *FileJournal) append(r record) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	enc := yaml.NewEncoder(j.f)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("history: encoding journal record: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("history: flushing journal record: %w", err)
	}
	if _, err := j.f.WriteString("---\n"); err != nil {
		return fmt.Errorf("history: writing journal separator: %w", err)
	}
	return nil
}

// Replay reads every record in the journal at path, in order, and applies
// each def/del to a clone of base, rebuilding the Context the journal
// describes. A missing file replays to base unchanged, matching a
// first-run journal that hasn't been written to yet.
func Replay(path string, base *lambda.Context) (*lambda.Context, error) {
	ctx := base.Clone()

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return ctx, nil
	}
	if err != nil {
		return nil, fmt.Errorf("history: opening journal %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(bufio.NewReader(f))
	for {
		var r *record
		if err := dec.Decode(&r); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("history: decoding journal record: %w", err)
		}
		if r == nil {
			// The "---" after the last record opens an empty document.
			continue
		}
		if err := applyRecord(ctx, *r); err != nil {
			return nil, err
		}
	}
	return ctx, nil
}

func applyRecord(ctx *lambda.Context, r record) error {
	switch r.Op {
	case "def":
		body, err := fromDTO(r.Body)
		if err != nil {
			return fmt.Errorf("history: rebuilding %q: %w", r.Name, err)
		}
		fn, err := lambda.NewFunction(lambda.Identifier(r.Name), stringsToIdentifiers(r.Params), body)
		if err != nil {
			return fmt.Errorf("history: rebuilding %q: %w", r.Name, err)
		}
		ctx.Def(fn)
		return nil
	case "del":
		ctx.Del(lambda.Identifier(r.Name))
		return nil
	default:
		return fmt.Errorf("history: unknown journal op %q", r.Op)
	}
}
