package control

// Scope restricts the execution contexts in which a control is updated
type Scope int

// List of valid Scope values
const (
	ScopeAll Scope = iota
	ScopeEditorOnly
	ScopeReleaseOnly
)

func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeEditorOnly:
		return "editor only"
	case ScopeReleaseOnly:
		return "release only"
	}
	return "unknown"
}

// Permits returns true if a control with the scope should be updated. The
// editor argument says whether the program is running inside an editor
func (s Scope) Permits(editor bool) bool {
	switch s {
	case ScopeEditorOnly:
		return editor
	case ScopeReleaseOnly:
		return !editor
	}
	return true
}
