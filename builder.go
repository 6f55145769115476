package dockerfile

// Builder accumulates instructions for a Dockerfile with a mandatory base
// image. Methods return the receiver so calls can be chained.
//
// A Builder has a single owner and is not safe for concurrent use. Finish is
// terminal: calling any method on the Builder afterwards panics with
// ErrBuilderFinished.
type Builder struct {
	directives   []Directive   // Parser directives, emitted first.
	args         []Arg         // ARGs declared before the base FROM.
	from         From          // The base FROM instruction.
	instructions []Instruction // Everything after the base FROM, in push order.
	finished     bool
}

// NewBuilder starts a Dockerfile whose first stage is based on from, e.g.
// "alpine:3.19" or "golang:1.24 AS build".
func NewBuilder[T ~string](from T) *Builder {
	return &Builder{from: From(from)}
}

// Directive adds a parser directive ahead of every other instruction.
func (b *Builder) Directive(d Directive) *Builder {
	b.checkActive()
	b.directives = append(b.directives, d)
	return b
}

// Arg adds an ARG that is declared before the base FROM, after any
// directives. ARGs declared this way may be referenced by FROM.
func (b *Builder) Arg(a Arg) *Builder {
	b.checkActive()
	b.args = append(b.args, a)
	return b
}

// Push appends an instruction after the base FROM. Directives and ARGs pushed
// here stay at their push position. A nil instruction is ignored.
func (b *Builder) Push(inst Instruction) *Builder {
	b.checkActive()
	if inst != nil {
		b.instructions = append(b.instructions, inst)
	}
	return b
}

// Append pushes each instruction in order, exactly as if Push were called
// once per element.
func (b *Builder) Append(insts ...Instruction) *Builder {
	b.checkActive()
	for _, inst := range insts {
		if inst != nil {
			b.instructions = append(b.instructions, inst)
		}
	}
	return b
}

// AppendAll pushes a slice of one concrete instruction type, such as []Run.
func AppendAll[I Instruction](b *Builder, insts []I) *Builder {
	b.checkActive()
	for _, inst := range insts {
		if v := Instruction(inst); v != nil {
			b.instructions = append(b.instructions, v)
		}
	}
	return b
}

// Finish assembles the Dockerfile in its fixed order: directives, leading
// ARGs, the base FROM, then the pushed instructions.
func (b *Builder) Finish() *Dockerfile {
	b.checkActive()

	out := make([]Instruction, 0, len(b.directives)+len(b.args)+1+len(b.instructions))
	for _, d := range b.directives {
		out = append(out, d)
	}
	for _, a := range b.args {
		out = append(out, a)
	}
	out = append(out, b.from)
	out = append(out, b.instructions...)

	b.directives, b.args, b.instructions = nil, nil, nil
	b.finished = true

	return &Dockerfile{instructions: out}
}

func (b *Builder) checkActive() {
	if b.finished {
		panic(ErrBuilderFinished)
	}
}
