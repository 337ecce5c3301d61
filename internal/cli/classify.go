package cli

// Mode is the single action taken by one invocation.
type Mode int

const (
	ModeHelp Mode = iota
	ModeVersion
	ModeGenerate
)

func (m Mode) String() string {
	switch m {
	case ModeVersion:
		return "version"
	case ModeGenerate:
		return "generate"
	default:
		return "help"
	}
}

// Classify picks the mode for the arguments following the program name. Only
// a single argument selects version or generate; anything else shows help.
func Classify(args []string) (Mode, string) {
	if len(args) != 1 {
		return ModeHelp, ""
	}
	switch args[0] {
	case "-v", "--version":
		return ModeVersion, ""
	case "-h", "--help":
		return ModeHelp, ""
	default:
		return ModeGenerate, args[0]
	}
}
