package domain

// DefaultEditor is used when no flag, environment or configured editor is set.
const DefaultEditor = "vim"

// EditorEnvVar is the environment variable consulted for the editor command.
const EditorEnvVar = "EDITOR"

// EditorSource records where an editor command came from.
type EditorSource string

// Editor command sources, in priority order.
const (
	EditorSourceFlag    EditorSource = "flag"
	EditorSourceEnv     EditorSource = "env"
	EditorSourceConfig  EditorSource = "config"
	EditorSourceDefault EditorSource = "default"
)

// EditorCommand is an unparsed editor command line, such as "code --wait".
type EditorCommand struct {
	Command string
	Source  EditorSource
}

// EditorLookup carries the inputs to editor selection. It is filled once at
// command entry so nothing downstream reads the environment.
type EditorLookup struct {
	// Flag is the explicit override. FlagSet distinguishes an empty
	// override from an absent one.
	Flag    string
	FlagSet bool

	// Env is the value of EDITOR. EnvSet is false when it is unset.
	Env    string
	EnvSet bool

	// Configured is the editor.command setting.
	Configured string
}

// ResolveEditor picks the editor command: an explicit override wins even when
// empty, then the environment, then configuration, then DefaultEditor.
func ResolveEditor(l EditorLookup) EditorCommand {
	switch {
	case l.FlagSet:
		return EditorCommand{Command: l.Flag, Source: EditorSourceFlag}
	case l.EnvSet:
		return EditorCommand{Command: l.Env, Source: EditorSourceEnv}
	case l.Configured != "":
		return EditorCommand{Command: l.Configured, Source: EditorSourceConfig}
	default:
		return EditorCommand{Command: DefaultEditor, Source: EditorSourceDefault}
	}
}

// Invocation is a tokenised editor command ready to spawn.
type Invocation struct {
	Program string
	Args    []string
}

// EditOutcome is the result of an edit session.
type EditOutcome string

// Edit outcomes.
const (
	EditUnchanged EditOutcome = "unchanged"
	EditModified  EditOutcome = "modified"
)

// String returns the string representation.
func (o EditOutcome) String() string {
	return string(o)
}

// EditorSession is the state of one in-place edit.
type EditorSession struct {
	ID         string
	TargetPath string
	TempPath   string
	Editor     EditorCommand
	Invocation Invocation
	// Original holds the target's raw bytes as read at session start.
	Original []byte
	ExitCode int
	Outcome  EditOutcome
}
