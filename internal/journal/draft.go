package journal

// DefaultMoods is the mood pair a fresh draft starts with.
var DefaultMoods = []string{"Happy", "Content"}

// Draft is the ephemeral capture state for one entry: the selected mood
// tags (an ordered set, display order) and the free text. Mutation is
// whole-value replacement; a reader never observes an intermediate empty
// selection during an update.
type Draft struct {
	moods []string
	text  string
}

// NewDraft returns a draft preselected with DefaultMoods.
func NewDraft() *Draft {
	d := &Draft{}
	d.SetMoods(DefaultMoods)
	return d
}

// SetMoods replaces the whole selection in one assignment. Duplicates are
// dropped, keeping the first occurrence's position.
func (d *Draft) SetMoods(selection []string) {
	moods := make([]string, 0, len(selection))
	seen := make(map[string]struct{}, len(selection))
	for _, m := range selection {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		moods = append(moods, m)
	}
	d.moods = moods
}

// Moods returns a copy of the current selection.
func (d *Draft) Moods() []string {
	return append([]string(nil), d.moods...)
}

// SetText replaces the draft text. No validation, no length bound.
func (d *Draft) SetText(value string) { d.text = value }

// Text returns the draft text.
func (d *Draft) Text() string { return d.text }

// Empty reports whether the draft has neither moods nor text.
func (d *Draft) Empty() bool {
	return len(d.moods) == 0 && d.text == ""
}
