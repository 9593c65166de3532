package chunking

// Variant describes one chunking strategy for table-driven dispatch.
type Variant[T any] struct {
	Name        string
	Description string
	Chunk       Func[T]

	// MultiPass variants enumerate the source more than once and fail on a
	// single-pass source.
	MultiPass bool
	// SharedCursor variants yield chunks that are valid only until the outer
	// sequence advances.
	SharedCursor bool
	// Reference variants are kept as baselines and left out of default
	// benchmark plans.
	Reference bool
}

// Variants returns every strategy in a stable order.
func Variants[T any]() []Variant[T] {
	return []Variant[T]{
		{
			Name:        "implicit-list",
			Description: "range loop, fresh growable list per chunk",
			Chunk:       ImplicitList[T],
		},
		{
			Name:        "implicit-array",
			Description: "range loop, fresh fixed-size array per chunk",
			Chunk:       ImplicitArray[T],
		},
		{
			Name:        "explicit-list",
			Description: "explicit cursor, fresh growable list per chunk",
			Chunk:       ExplicitList[T],
		},
		{
			Name:        "explicit-array",
			Description: "explicit cursor, fresh fixed-size array per chunk",
			Chunk:       ExplicitArray[T],
		},
		{
			Name:        "explicit-array-in-loop",
			Description: "explicit cursor advanced by a bounded inner loop, fresh array per chunk",
			Chunk:       ExplicitArrayInLoop[T],
		},
		{
			Name:         "lazy-shared",
			Description:  "chunks pull lazily from a cursor shared with the outer sequence",
			Chunk:        LazyShared[T],
			SharedCursor: true,
		},
		{
			Name:        "take-skip",
			Description: "take/skip re-derivation of the remaining tail, quadratic",
			Chunk:       TakeSkip[T],
			MultiPass:   true,
			Reference:   true,
		},
		{
			Name:        "filter-merge",
			Description: "one filtered sequence per slot merged in lockstep, size scans",
			Chunk:       FilterMerge[T],
			MultiPass:   true,
			Reference:   true,
		},
		{
			Name:        "group-project",
			Description: "group indexed elements by index/size, materializes the source",
			Chunk:       GroupProject[T],
			Reference:   true,
		},
	}
}

// Lookup finds a variant by name.
func Lookup[T any](name string) (Variant[T], bool) {
	for _, v := range Variants[T]() {
		if v.Name == name {
			return v, true
		}
	}
	return Variant[T]{}, false
}

// Names lists the registered variant names in registry order.
func Names() []string {
	vs := Variants[struct{}]()
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.Name
	}
	return names
}
