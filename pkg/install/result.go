package install

// EntryResult is the outcome for one dotfile entry
type EntryResult struct {
	Name        string
	Source      string
	Destination string
	// BackedUp is set when the home entry was moved into the backup area
	BackedUp bool
	// BackupErr records a failed backup; the copy is still attempted
	BackupErr error
	Err       error
}

// OK reports whether the entry was processed without error
func (e EntryResult) OK() bool {
	return e.Err == nil
}

// Result collects the per-entry outcomes of a batch
type Result struct {
	Entries []EntryResult
}

// Succeeded returns the entries that completed
func (r *Result) Succeeded() []EntryResult {
	var out []EntryResult
	for _, e := range r.Entries {
		if e.OK() {
			out = append(out, e)
		}
	}
	return out
}

// Failed returns the entries that did not complete
func (r *Result) Failed() []EntryResult {
	var out []EntryResult
	for _, e := range r.Entries {
		if !e.OK() {
			out = append(out, e)
		}
	}
	return out
}

// BackedUp counts entries that were moved into the backup area
func (r *Result) BackedUp() int {
	n := 0
	for _, e := range r.Entries {
		if e.BackedUp {
			n++
		}
	}
	return n
}
