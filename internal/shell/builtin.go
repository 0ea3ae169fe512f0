package shell

// Builtin identifies one of the interpreter's built-in commands. The set is
// deliberately closed: there is no registry and no way to extend it at run
// time.
type Builtin int

const (
	BuiltinEcho Builtin = iota
	BuiltinExit
	BuiltinType
	BuiltinPwd
	BuiltinCd
)

// LookupBuiltin resolves a command name against the closed built-in set.
// The check is pure and name-only; it says nothing about whether the
// command would accept its arguments.
func LookupBuiltin(name string) (Builtin, bool) {
	switch name {
	case "echo":
		return BuiltinEcho, true
	case "exit":
		return BuiltinExit, true
	case "type":
		return BuiltinType, true
	case "pwd":
		return BuiltinPwd, true
	case "cd":
		return BuiltinCd, true
	}
	return 0, false
}

// String returns the command word for b.
func (b Builtin) String() string {
	switch b {
	case BuiltinEcho:
		return "echo"
	case BuiltinExit:
		return "exit"
	case BuiltinType:
		return "type"
	case BuiltinPwd:
		return "pwd"
	case BuiltinCd:
		return "cd"
	default:
		return "unknown"
	}
}

// Description returns the fixed classification string the type builtin
// reports for b.
func (b Builtin) Description() string {
	return b.String() + " is a shell builtin"
}
