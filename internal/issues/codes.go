package issues

// Code is a stable identifier for a class of issue.
type Code string

const (
	// CodeBlankName is reported for a node constructed without a name.
	CodeBlankName Code = "ND-001"
	// CodeDuplicateName is reported when two siblings share a name.
	CodeDuplicateName Code = "ND-002"

	CodeUnknownTarget      Code = "LK-001"
	CodeIncompatibleTarget Code = "LK-002"
	CodeRelinked           Code = "LK-003"
	CodeCyclicLink         Code = "LK-004"
	CodeUnresolvedLink     Code = "LK-005"
	CodeDependencyCycle    Code = "LK-006"

	CodeTypeLoad      Code = "TY-001"
	CodeMissingLink   Code = "TY-002"
	CodeUnknownMember Code = "TY-003"
	CodeTypeMismatch  Code = "TY-004"
	CodeTypeCycle     Code = "TY-005"
	CodeInvalidConfig Code = "TY-006"

	// CodeBuild wraps an error returned by the external builder.
	CodeBuild Code = "BD-001"
)
