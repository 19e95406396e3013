package compiler

// Compile runs the full pipeline: source text in, assembly text out.
// The optimize flag enables constant folding and dead-branch elimination.
// Assembling and linking the result is the caller's business.
func Compile(src string, optimize bool) (string, error) {
	tokens := Lex(src)

	prog, err := Parse(tokens)
	if err != nil {
		return "", err
	}

	if optimize {
		Optimize(prog)
	}

	return Generate(prog)
}
