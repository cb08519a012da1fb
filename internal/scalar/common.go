package scalar

// Common returns the kind every one of kinds converts to under the usual
// arithmetic conversions. The pairwise rule is folded left to right, so
// Common(a, b, c) == Common(Common(a, b), c).
//
// Common returns Invalid when kinds is empty or contains an invalid kind.
func Common(kinds ...Kind) Kind {
	if len(kinds) == 0 {
		return Invalid
	}
	acc := kinds[0]
	for _, k := range kinds[1:] {
		acc = commonPair(acc, k)
	}
	if !acc.Valid() {
		return Invalid
	}
	return acc
}

// CommonOf is Common over the kinds of vals.
func CommonOf(vals ...Value) Kind {
	ks := make([]Kind, len(vals))
	for i, v := range vals {
		ks[i] = v.kind
	}
	return Common(ks...)
}

func commonPair(a, b Kind) Kind {
	if !a.Valid() || !b.Valid() {
		return Invalid
	}
	if a == b {
		return a
	}

	if a.IsFloat() || b.IsFloat() {
		if a == Float64 || b == Float64 {
			return Float64
		}
		return Float32
	}

	a, b = promote(a), promote(b)
	if a == b {
		return a
	}

	ra, rb := a.info().rank, b.info().rank
	if a.IsSigned() == b.IsSigned() {
		switch {
		case ra > rb:
			return a
		case rb > ra:
			return b
		default:
			return max(a, b)
		}
	}

	s, u := a, b
	if u.IsSigned() {
		s, u = b, a
	}
	switch {
	case u.info().rank >= s.info().rank:
		return u
	case s.Size() > u.Size():
		return s
	default:
		return unsignedOf(s)
	}
}

// promote applies integral promotion: every kind narrower than Int32,
// Bool included, becomes Int32.
func promote(k Kind) Kind {
	if k.info().rank == 0 {
		return Int32
	}
	return k
}

func unsignedOf(k Kind) Kind {
	switch k {
	case Int32:
		return Uint32
	case Int:
		return Uint
	case Int64:
		return Uint64
	default:
		return k
	}
}
