package dateformat

import "strings"

// tokenizeSpec recursively splits a format specification into catalog
// tokens. The first catalog entry whose spec pattern occurs anywhere
// in the string claims its slice; the text on either side is
// tokenized independently. Each recursive call strictly shrinks the
// input, and a non-empty residue no entry matches is a SpecError.
func tokenizeSpec(catalog []token, spec string) ([]token, error) {
	if spec == "" {
		return nil, nil
	}
	for _, tok := range catalog {
		before, after, ok := strings.Cut(spec, tok.specPattern())
		if !ok {
			continue
		}
		head, err := tokenizeSpec(catalog, before)
		if err != nil {
			return nil, err
		}
		tail, err := tokenizeSpec(catalog, after)
		if err != nil {
			return nil, err
		}
		seq := append(head, tok)
		return append(seq, tail...), nil
	}
	return nil, &SpecError{Fragment: spec}
}
