package feature

// Clone returns an independent deep copy of f. pkg/panel's resolver calls
// this every time a VarRef is substituted, since feature bindings are
// templates shared across every `$name` use site — without cloning,
// resolving one use's Numbers/children would leak into the others.
func Clone(f Feature) Feature {
	switch v := f.(type) {
	case Rect:
		return Rect{Center: v.Center, Width: v.Width, Height: v.Height, Inner: cloneSpecs(v.Inner)}
	case Circle:
		return Circle{Center: v.Center, Radius: v.Radius, Inner: cloneSpecs(v.Inner)}
	case Triangle:
		return Triangle{Center: v.Center, Width: v.Width, Height: v.Height, Inner: cloneSpecs(v.Inner)}
	case MountCut:
		return v
	case Array:
		return Array{Child: Clone(v.Child), Count: v.Count, Direction: v.Direction, VScore: v.VScore}
	case Tuple:
		return Tuple{Children: cloneAll(v.Children)}
	case Column:
		return Column{Alignment: v.Alignment, Children: cloneAll(v.Children)}
	case Wrap:
		placements := make([]Placement, len(v.Placements))
		for i, p := range v.Placements {
			placements[i] = Placement{Side: p.Side, Offset: p.Offset, Alignment: p.Alignment, Child: Clone(p.Child)}
		}
		return Wrap{Center: Clone(v.Center), Placements: placements}
	case Negative:
		return Negative{Children: cloneAll(v.Children)}
	case Rotate:
		return Rotate{Degrees: v.Degrees, Children: cloneAll(v.Children)}
	case VarRef:
		return v
	default:
		return f
	}
}

func cloneAll(fs []Feature) []Feature {
	out := make([]Feature, len(fs))
	for i, f := range fs {
		out[i] = Clone(f)
	}
	return out
}

func cloneSpecs(specs []SurfaceSpec) []SurfaceSpec {
	out := make([]SurfaceSpec, len(specs))
	copy(out, specs)
	return out
}
