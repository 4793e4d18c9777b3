package dateformat

import "strings"

// A renderStep emits one piece of formatted output, either literal
// text or a field computed from the render context.
type renderStep func(ctx *renderContext, b *strings.Builder)

// A renderProgram is the compiled, data-driven equivalent of the
// format specification: an ordered list of emission steps interpreted
// against a render context.
type renderProgram []renderStep

func (p renderProgram) run(ctx *renderContext) string {
	var b strings.Builder
	for _, step := range p {
		step(ctx, &b)
	}
	return b.String()
}

func emitLiteral(s string) renderStep {
	return func(_ *renderContext, b *strings.Builder) {
		b.WriteString(s)
	}
}

// compileProgram builds the render program and installs each token's
// chain handlers, in token order.
func compileProgram(f *DateFormat) {
	f.program = make(renderProgram, 0, len(f.tokens))
	for _, tok := range f.tokens {
		f.program = append(f.program, tok.step(f))
		tok.installChains(f)
	}
}
