// Package unit resolves unit spellings to dimension vectors and base-unit
// conversion transforms.
//
// The registry is built once from a static definition table and is
// read-only afterward. Prefixed forms (kilometer, microfarad) and compound
// expressions (kilogram*meter/second^2) are derived on demand and memoized
// in an insert-once cache, so repeated resolution of the same string is
// O(1) and always yields the same Resolution.
package unit

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/c360studio/quantify/dimension"
	"github.com/c360studio/quantify/metric"
)

// Registry resolves unit strings. The zero value is not usable; create
// instances with NewRegistry or use Default.
type Registry struct {
	spellings map[string]*Definition
	byName    []siPrefix // prefixes sorted by descending name length
	bySymbol  []siPrefix // prefixes sorted by descending symbol length

	cache sync.Map // unit string -> Resolution, insert-once
}

// Default is the process-wide registry with the builtin unit table.
var Default = NewRegistry()

// NewRegistry builds a registry from the builtin definition table.
func NewRegistry() *Registry {
	r := &Registry{
		spellings: make(map[string]*Definition),
		byName:    make([]siPrefix, len(siPrefixes)),
		bySymbol:  make([]siPrefix, len(siPrefixes)),
	}

	for i := range definitions {
		def := &definitions[i]
		r.spellings[def.Name] = def
		for _, alias := range def.Aliases {
			r.spellings[alias] = def
		}
	}

	copy(r.byName, siPrefixes)
	sort.SliceStable(r.byName, func(i, j int) bool {
		return len(r.byName[i].name) > len(r.byName[j].name)
	})
	copy(r.bySymbol, siPrefixes)
	sort.SliceStable(r.bySymbol, func(i, j int) bool {
		return len(r.bySymbol[i].symbol) > len(r.bySymbol[j].symbol)
	})

	return r
}

// Resolve maps a unit string to its Resolution. It accepts canonical
// names, aliases, SI-prefixed forms, and compound expressions combining
// factors with '*' and '/', per-factor exponents ('^2', '²', '³',
// '_squared', '_cubed'), parenthesized groups ("meter/(second*second)",
// "(meter/second)^2"), and '_per_' as an alternate spelling of '/'.
//
// Results for a given string are memoized for the life of the registry;
// the insert is idempotent so concurrent resolution is safe.
func (r *Registry) Resolve(s string) (Resolution, error) {
	if cached, ok := r.cache.Load(s); ok {
		metric.ResolutionsTotal.WithLabelValues("hit").Inc()
		return cached.(Resolution), nil
	}

	res, err := r.parseExpression(s)
	if err != nil {
		metric.ResolutionsTotal.WithLabelValues("error").Inc()
		return Resolution{}, err
	}

	metric.ResolutionsTotal.WithLabelValues("miss").Inc()
	actual, _ := r.cache.LoadOrStore(s, res)
	return actual.(Resolution), nil
}

// ConvertFactor returns the multiplicative factor taking a value in the
// from unit to the to unit. Both units must share a dimension and be
// linear; affine conversions need Convert, which sees the value.
func (r *Registry) ConvertFactor(from, to string) (float64, error) {
	fromRes, err := r.Resolve(from)
	if err != nil {
		return 0, err
	}
	toRes, err := r.Resolve(to)
	if err != nil {
		return 0, err
	}
	if fromRes.Dim != toRes.Dim {
		return 0, &IncompatibleDimensionsError{From: fromRes.Dim, To: toRes.Dim}
	}
	if fromRes.Kind == KindAffine {
		return 0, &InvalidAffineUsageError{Token: strings.TrimSpace(from)}
	}
	if toRes.Kind == KindAffine {
		return 0, &InvalidAffineUsageError{Token: strings.TrimSpace(to)}
	}
	return fromRes.Scale / toRes.Scale, nil
}

// Convert transforms a value between two resolutions of the same
// dimension, applying the explicit affine transform when either side
// carries an offset.
func (r *Registry) Convert(value float64, from, to Resolution) (float64, error) {
	if from.Dim != to.Dim {
		return 0, &IncompatibleDimensionsError{From: from.Dim, To: to.Dim}
	}
	base := value*from.Scale + from.Offset
	return (base - to.Offset) / to.Scale, nil
}

// Names returns the canonical names of all registered units, sorted.
func (r *Registry) Names() []string {
	seen := make(map[string]bool, len(definitions))
	names := make([]string, 0, len(definitions))
	for i := range definitions {
		if !seen[definitions[i].Name] {
			seen[definitions[i].Name] = true
			names = append(names, definitions[i].Name)
		}
	}
	sort.Strings(names)
	return names
}

// Lookup returns the definition for a canonical name or alias.
func (r *Registry) Lookup(spelling string) (*Definition, bool) {
	def, ok := r.spellings[strings.ToLower(strings.TrimSpace(spelling))]
	return def, ok
}

// factor is one multiplicative term of a compound expression.
type factor struct {
	token string
	sign  int // +1 for '*'-joined factors, -1 after '/'
}

func (r *Registry) parseExpression(s string) (Resolution, error) {
	expr := strings.TrimSpace(strings.ReplaceAll(s, "_per_", "/"))
	if expr == "" {
		return Resolution{}, &UnknownUnitError{Token: s}
	}

	factors := splitFactors(expr)

	out := Resolution{Scale: 1, Kind: KindLinear}
	for _, f := range factors {
		token, exp, err := splitExponent(f.token)
		if err != nil {
			return Resolution{}, err
		}

		res, err := r.resolveToken(token)
		if err != nil {
			return Resolution{}, err
		}

		if res.Kind == KindAffine {
			// Offsets do not distribute over multiplication: an affine
			// unit is only legal as the whole expression.
			if len(factors) != 1 || f.sign != 1 || exp != 1 {
				return Resolution{}, &InvalidAffineUsageError{Token: token}
			}
			return res, nil
		}

		e := float64(f.sign) * exp
		if e == math.Trunc(e) {
			out.Dim = dimension.Mul(out.Dim, dimension.PowInt(res.Dim, int(e)))
			out.Scale *= powInt(res.Scale, int(e))
			continue
		}

		// Fractional exponents ("square_meter^0.5") are legal only when
		// every scaled dimension exponent stays integral.
		dim, err := dimension.Pow(res.Dim, e)
		if err != nil {
			return Resolution{}, err
		}
		out.Dim = dimension.Mul(out.Dim, dim)
		out.Scale *= math.Pow(res.Scale, e)
	}

	return out, nil
}

// splitFactors breaks an expression on top-level '*' and '/'. Each '/'
// negates only the factor immediately following it; a later '*' resumes
// positive factors. Operators inside parentheses stay in their factor.
func splitFactors(expr string) []factor {
	var out []factor
	sign := 1
	depth := 0
	var cur strings.Builder
	flush := func() {
		tok := strings.TrimSpace(cur.String())
		cur.Reset()
		if tok != "" {
			out = append(out, factor{token: tok, sign: sign})
		}
	}
	for _, ch := range expr {
		switch {
		case ch == '(':
			depth++
			cur.WriteRune(ch)
		case ch == ')':
			depth--
			cur.WriteRune(ch)
		case ch == '*' && depth == 0:
			flush()
			sign = 1
		case ch == '/' && depth == 0:
			flush()
			sign = -1
		default:
			cur.WriteRune(ch)
		}
	}
	flush()
	return out
}

// splitExponent strips a per-factor exponent suffix and returns the bare
// token with its exponent. '^' accepts integer and fractional exponents.
// For a parenthesized group the exponent must follow the closing paren,
// so "(meter/second^2)" keeps its inner '^'.
func splitExponent(token string) (string, float64, error) {
	if strings.HasPrefix(token, "(") {
		end := strings.LastIndex(token, ")")
		if end < 0 {
			return "", 0, &UnknownUnitError{Token: token}
		}
		group, suffix := token[:end+1], token[end+1:]
		switch suffix {
		case "":
			return group, 1, nil
		case "²":
			return group, 2, nil
		case "³":
			return group, 3, nil
		case "_squared":
			return group, 2, nil
		case "_cubed":
			return group, 3, nil
		}
		if rest, ok := strings.CutPrefix(suffix, "^"); ok {
			n, err := strconv.ParseFloat(rest, 64)
			if err != nil {
				return "", 0, &UnknownUnitError{Token: token}
			}
			return group, n, nil
		}
		return "", 0, &UnknownUnitError{Token: token}
	}
	switch {
	case strings.HasSuffix(token, "²"):
		return strings.TrimSuffix(token, "²"), 2, nil
	case strings.HasSuffix(token, "³"):
		return strings.TrimSuffix(token, "³"), 3, nil
	case strings.HasSuffix(token, "_squared"):
		return strings.TrimSuffix(token, "_squared"), 2, nil
	case strings.HasSuffix(token, "_cubed"):
		return strings.TrimSuffix(token, "_cubed"), 3, nil
	}
	if i := strings.LastIndex(token, "^"); i >= 0 {
		n, err := strconv.ParseFloat(token[i+1:], 64)
		if err != nil {
			return "", 0, &UnknownUnitError{Token: token}
		}
		return token[:i], n, nil
	}
	return token, 1, nil
}

// resolveToken resolves a single bare token: parenthesized groups recurse
// into the expression parser; otherwise exact spelling first, then
// square_/cubic_ forms, then SI-prefix decomposition (full prefix names
// before one/two-letter symbols, longest match first).
func (r *Registry) resolveToken(token string) (Resolution, error) {
	if strings.HasPrefix(token, "(") && strings.HasSuffix(token, ")") {
		return r.parseExpression(token[1 : len(token)-1])
	}

	lower := strings.ToLower(token)

	// Dimensionless literal, as in "1/second".
	if lower == "1" {
		return Resolution{Scale: 1, Kind: KindLinear}, nil
	}

	if def, ok := r.spellings[lower]; ok {
		return def.resolution(), nil
	}

	if rest, n := strings.CutPrefix(lower, "square_"); n {
		return r.poweredToken(rest, 2, token)
	}
	if rest, n := strings.CutPrefix(lower, "cubic_"); n {
		return r.poweredToken(rest, 3, token)
	}

	// Full prefix names, longest first, so "mmol" decomposes as
	// milli+mole and never as an unknown token.
	for _, p := range r.byName {
		rest, ok := strings.CutPrefix(lower, p.name)
		if !ok {
			continue
		}
		if def, found := r.spellings[rest]; found && !def.Affine {
			res := def.resolution()
			res.Scale *= p.factor
			return res, nil
		}
	}

	// Prefix symbols are matched case-sensitively against the original
	// token: "mV" is millivolt, "MV" megavolt.
	for _, p := range r.bySymbol {
		rest, ok := strings.CutPrefix(token, p.symbol)
		if !ok {
			continue
		}
		if def, found := r.spellings[strings.ToLower(rest)]; found && !def.Affine {
			res := def.resolution()
			res.Scale *= p.factor
			return res, nil
		}
	}

	return Resolution{}, &UnknownUnitError{Token: token}
}

func (r *Registry) poweredToken(rest string, exp int, original string) (Resolution, error) {
	res, err := r.resolveToken(rest)
	if err != nil {
		return Resolution{}, &UnknownUnitError{Token: original}
	}
	if res.Kind == KindAffine {
		return Resolution{}, &InvalidAffineUsageError{Token: original}
	}
	res.Dim = dimension.PowInt(res.Dim, exp)
	res.Scale = powInt(res.Scale, exp)
	return res, nil
}

// powInt raises a scale to a small integer power without math.Pow drift
// for the common exponents.
func powInt(x float64, n int) float64 {
	switch n {
	case 0:
		return 1
	case 1:
		return x
	case -1:
		return 1 / x
	}
	neg := n < 0
	if neg {
		n = -n
	}
	out := 1.0
	for i := 0; i < n; i++ {
		out *= x
	}
	if neg {
		return 1 / out
	}
	return out
}
