package catalog

// FunctionVolatility mirrors pg_proc.provolatile.
type FunctionVolatility string

const (
	VolatilityImmutable FunctionVolatility = "i"
	VolatilityStable    FunctionVolatility = "s"
	VolatilityVolatile  FunctionVolatility = "v"
)

// Function represents a pg_proc entry that is not a procedure (prokind='f').
// Definition is the captured pg_get_functiondef() text and is reused
// verbatim by the emitter, which only needs to prefix-substitute CREATE with
// CREATE OR REPLACE for a Replace change.
type Function struct {
	// identity
	Schema         string
	Name           string
	ArgTypesSuffix string // canonicalized argument type list, disambiguates overloads

	// data
	Definition       string
	ReturnType       string
	Language         string
	Volatility       FunctionVolatility
	IsStrict         bool
	IsSecurityDefiner bool

	// internal
	OID int64
}

func (f *Function) StableID() string {
	return PrefixFunction + ":" + QualifiedName(f.Schema, f.Name+"("+f.ArgTypesSuffix+")")
}

func (f *Function) SemanticEqual(other Entity) bool {
	o, ok := other.(*Function)
	if !ok {
		return false
	}
	if f.Schema != o.Schema || f.Name != o.Name || f.ArgTypesSuffix != o.ArgTypesSuffix {
		return false
	}
	return f.Definition == o.Definition &&
		f.ReturnType == o.ReturnType &&
		f.Language == o.Language &&
		f.Volatility == o.Volatility &&
		f.IsStrict == o.IsStrict &&
		f.IsSecurityDefiner == o.IsSecurityDefiner
}
