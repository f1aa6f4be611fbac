package testutil

import (
	"context"
	"sync"
	"testing"

	"github.com/arthur-debert/hearth/pkg/errors"
	"github.com/arthur-debert/hearth/pkg/types"
)

// FakeFetcher implements types.Fetcher by writing a predefined FileTree into
// the clone directory.
type FakeFetcher struct {
	t  *testing.T
	fs types.FS

	mu     sync.Mutex
	repos  map[string]FileTree
	errors map[string]error
	calls  []CloneCall
}

// CloneCall records one Clone invocation
type CloneCall struct {
	Link string
	Dir  string
}

// NewFakeFetcher creates a FakeFetcher writing to fs
func NewFakeFetcher(t *testing.T, fs types.FS) *FakeFetcher {
	return &FakeFetcher{
		t:      t,
		fs:     fs,
		repos:  make(map[string]FileTree),
		errors: make(map[string]error),
	}
}

// WithRepo registers the content a clone of link produces
func (f *FakeFetcher) WithRepo(link string, tree FileTree) *FakeFetcher {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.repos[link] = tree
	return f
}

// WithFailure makes clones of link fail with err. A nil err fails with a
// generic fetch error.
func (f *FakeFetcher) WithFailure(link string, err error) *FakeFetcher {
	if err == nil {
		err = errors.Newf(errors.ErrFetch, "git clone %s failed", link)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors[link] = err
	return f
}

// Clone materializes the registered tree for link in dir. Unknown links
// produce an empty directory, matching a clone of an empty repository.
func (f *FakeFetcher) Clone(ctx context.Context, link, dir string) error {
	f.mu.Lock()
	f.calls = append(f.calls, CloneCall{Link: link, Dir: dir})
	err := f.errors[link]
	tree := f.repos[link]
	f.mu.Unlock()

	if err != nil {
		return err
	}
	if err := f.fs.MkdirAll(dir, 0755); err != nil {
		return err
	}
	CreateFileTree(f.t, f.fs, dir, tree)
	return nil
}

// Calls returns the Clone invocations so far
func (f *FakeFetcher) Calls() []CloneCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]CloneCall(nil), f.calls...)
}

// ScriptedPrompter implements types.Prompter with canned answers. Once the
// script runs out every question is answered no.
type ScriptedPrompter struct {
	answers   []bool
	Questions []string
}

// NewScriptedPrompter creates a prompter answering in order
func NewScriptedPrompter(answers ...bool) *ScriptedPrompter {
	return &ScriptedPrompter{answers: answers}
}

// Confirm records question and returns the next scripted answer
func (p *ScriptedPrompter) Confirm(question string) (bool, error) {
	p.Questions = append(p.Questions, question)
	if len(p.answers) == 0 {
		return false, nil
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}
