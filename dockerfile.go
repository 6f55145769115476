package dockerfile

import (
	"io"
	"strings"
)

// Dockerfile is a finished, ordered sequence of instructions. It is immutable
// and safe for concurrent use.
type Dockerfile struct {
	instructions []Instruction
}

// Instructions returns a copy of the instructions in output order.
func (d *Dockerfile) Instructions() []Instruction {
	out := make([]Instruction, len(d.instructions))
	copy(out, d.instructions)
	return out
}

// Len returns the number of instructions, which is also the number of lines
// in the rendered output.
func (d *Dockerfile) Len() int {
	return len(d.instructions)
}

// String renders the Dockerfile text: every instruction in order, each
// terminated by its own newline.
func (d *Dockerfile) String() string {
	lines := make([]string, len(d.instructions))
	size := 0
	for i, inst := range d.instructions {
		lines[i] = inst.String()
		size += len(lines[i])
	}

	var sb strings.Builder
	sb.Grow(size)
	for _, line := range lines {
		sb.WriteString(line)
	}
	return sb.String()
}

// Bytes returns the rendered Dockerfile text as a byte slice.
func (d *Dockerfile) Bytes() []byte {
	return []byte(d.String())
}

// WriteTo writes the rendered Dockerfile to w. It implements io.WriterTo.
func (d *Dockerfile) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, inst := range d.instructions {
		n, err := io.WriteString(w, inst.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
