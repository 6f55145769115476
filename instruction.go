package dockerfile

import (
	"fmt"
	"strings"
)

// Kind identifies the type of Dockerfile instruction.
type Kind int

const (
	KindAdd Kind = iota
	KindArg
	KindCmd
	KindCopy
	KindDirective
	KindEntrypoint
	KindEnv
	KindExpose
	KindFrom
	KindHealthcheck
	KindLabel
	KindOnbuild
	KindRun
	KindShell
	KindStopSignal
	KindUser
	KindVolume
	KindWorkdir

	numKinds
)

// String returns the keyword the kind renders with. Parser directives render
// as a comment, so KindDirective returns "#".
func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "ADD"
	case KindArg:
		return "ARG"
	case KindCmd:
		return "CMD"
	case KindCopy:
		return "COPY"
	case KindDirective:
		return "#"
	case KindEntrypoint:
		return "ENTRYPOINT"
	case KindEnv:
		return "ENV"
	case KindExpose:
		return "EXPOSE"
	case KindFrom:
		return "FROM"
	case KindHealthcheck:
		return "HEALTHCHECK"
	case KindLabel:
		return "LABEL"
	case KindOnbuild:
		return "ONBUILD"
	case KindRun:
		return "RUN"
	case KindShell:
		return "SHELL"
	case KindStopSignal:
		return "STOPSIGNAL"
	case KindUser:
		return "USER"
	case KindVolume:
		return "VOLUME"
	case KindWorkdir:
		return "WORKDIR"
	default:
		return "UNKNOWN"
	}
}

// Kinds returns every supported instruction kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind resolves an instruction keyword such as "copy" or "HEALTHCHECK".
// Matching is case-insensitive; "directive" and "#" both name KindDirective.
func ParseKind(keyword string) (Kind, error) {
	kw := strings.ToUpper(strings.TrimSpace(keyword))
	if kw == "DIRECTIVE" {
		return KindDirective, nil
	}
	for k := Kind(0); k < numKinds; k++ {
		if k.String() == kw {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKeyword, keyword)
}

// Instruction is a single Dockerfile line. It is implemented only by the
// instruction types in this package.
type Instruction interface {
	fmt.Stringer

	// Kind reports which keyword the instruction renders with.
	Kind() Kind
	// Value returns the payload text that follows the keyword.
	Value() string

	instruction()
}

// New returns the instruction of the given kind carrying payload, or nil if
// kind is not a supported kind.
func New(kind Kind, payload string) Instruction {
	switch kind {
	case KindAdd:
		return Add(payload)
	case KindArg:
		return Arg(payload)
	case KindCmd:
		return Cmd(payload)
	case KindCopy:
		return Copy(payload)
	case KindDirective:
		return Directive(payload)
	case KindEntrypoint:
		return Entrypoint(payload)
	case KindEnv:
		return Env(payload)
	case KindExpose:
		return Expose(payload)
	case KindFrom:
		return From(payload)
	case KindHealthcheck:
		return Healthcheck(payload)
	case KindLabel:
		return Label(payload)
	case KindOnbuild:
		return Onbuild(payload)
	case KindRun:
		return Run(payload)
	case KindShell:
		return Shell(payload)
	case KindStopSignal:
		return StopSignal(payload)
	case KindUser:
		return User(payload)
	case KindVolume:
		return Volume(payload)
	case KindWorkdir:
		return Workdir(payload)
	default:
		return nil
	}
}

func render(k Kind, payload string) string {
	kw := k.String()
	var sb strings.Builder
	sb.Grow(len(kw) + len(payload) + 2)
	sb.WriteString(kw)
	sb.WriteByte(' ')
	sb.WriteString(payload)
	sb.WriteByte('\n')
	return sb.String()
}
