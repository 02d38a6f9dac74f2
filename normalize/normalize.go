package normalize

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/conformat/conform/ir"
)

// maxSafeInteger is the largest magnitude integer that round-trips exactly
// through an IEEE-754 double (2^53 - 1), the boundary spec §3 uses to decide
// between Num and the decimal-string fallback for big integers.
const maxSafeInteger = 1<<53 - 1

var timeType = reflect.TypeOf(time.Time{})
var bigIntType = reflect.TypeOf(big.Int{})

// bigIntLike is the method set duck-typed as an arbitrary-precision integer:
// anything shaped like *big.Int, not just *big.Int itself.
type bigIntLike interface {
	Int64() int64
	String() string
}

// bigRatLike is the method set duck-typed as an arbitrary-precision
// rational: anything shaped like *big.Rat.
type bigRatLike interface {
	Float64() (float64, bool)
	String() string
}

// unixer is the method set duck-typed as a date-like value: anything
// reporting a Unix timestamp, not just time.Time.
type unixer interface {
	Unix() int64
}

var (
	bigIntLikeType = reflect.TypeOf((*bigIntLike)(nil)).Elem()
	bigRatLikeType = reflect.TypeOf((*bigRatLike)(nil)).Elem()
	unixerType     = reflect.TypeOf((*unixer)(nil)).Elem()
)

// normalizeDuckTyped recognizes big.Int/big.Rat-like and date-like values by
// method set rather than concrete type. Callers try their own exact-type
// fast path first (time.Time, *big.Int), which is more precise than the
// generic interface-driven dispatch here.
func normalizeDuckTyped(rv reflect.Value) (*ir.Node, bool) {
	if !rv.IsValid() || !rv.CanInterface() {
		return nil, false
	}
	t := rv.Type()
	switch {
	case t.Implements(unixerType):
		u := rv.Interface().(unixer)
		return ir.FromString(time.Unix(u.Unix(), 0).UTC().Format(time.RFC3339Nano)), true
	case t.Implements(bigIntLikeType):
		return fromBigIntLike(rv.Interface().(bigIntLike)), true
	case t.Implements(bigRatLikeType):
		return fromBigRatLike(rv.Interface().(bigRatLike)), true
	}
	return nil, false
}

// fromBigIntLike mirrors fromBigInt for a duck-typed value: a round-trip
// through Int64 that reproduces String exactly means the value fits in an
// int64, so it gets the same safe-integer-range treatment as any other
// integer; otherwise String already holds the canonical decimal form.
func fromBigIntLike(bi bigIntLike) *ir.Node {
	if bi.String() == strconv.FormatInt(bi.Int64(), 10) {
		return fromInt64(bi.Int64())
	}
	return ir.FromString(bi.String())
}

// fromBigRatLike normalizes by Float64's own exactness signal: exact means
// the rational is itself representable, else fall back to String.
func fromBigRatLike(br bigRatLike) *ir.Node {
	if f, exact := br.Float64(); exact {
		return fromFloat(f)
	}
	return ir.FromString(br.String())
}

// Value normalizes an arbitrary Go value into the CON logical tree.
func Value(v any) (*ir.Node, error) {
	nz := &normalizer{stack: map[uintptr]bool{}}
	return nz.normalize(reflect.ValueOf(v))
}

type normalizer struct {
	stack map[uintptr]bool
}

func (nz *normalizer) pushIdentity(ptr uintptr) (bool, func()) {
	if nz.stack[ptr] {
		return false, func() {}
	}
	nz.stack[ptr] = true
	return true, func() { delete(nz.stack, ptr) }
}

func (nz *normalizer) normalize(rv reflect.Value) (*ir.Node, error) {
	if !rv.IsValid() {
		return ir.Null(), nil
	}

	switch rv.Kind() {
	case reflect.Interface, reflect.Ptr:
		if rv.IsNil() {
			return ir.Null(), nil
		}
		if rv.Kind() == reflect.Ptr {
			ok, pop := nz.pushIdentity(rv.Pointer())
			if !ok {
				return nil, ir.ErrCycleDetected
			}
			defer pop()
		}
		return nz.normalizeConcrete(rv)

	case reflect.Bool:
		return ir.FromBool(rv.Bool()), nil

	case reflect.String:
		return ir.FromString(rv.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromInt64(rv.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromUint64(rv.Uint()), nil

	case reflect.Float32, reflect.Float64:
		return fromFloat(rv.Float()), nil

	case reflect.Slice, reflect.Array:
		return nz.normalizeSliceOrArray(rv)

	case reflect.Map:
		return nz.normalizeMap(rv)

	case reflect.Struct:
		return nz.normalizeStruct(rv)

	case reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128:
		return ir.Null(), nil

	default:
		return ir.Null(), nil
	}
}

// normalizeConcrete dispatches a Ptr/Interface's referent, special-casing
// *big.Int exactly and anything else duck-typed as big-integer/rational/
// date-like before falling through to the generic reflect walk.
func (nz *normalizer) normalizeConcrete(rv reflect.Value) (*ir.Node, error) {
	elem := rv.Elem()
	if rv.Kind() == reflect.Ptr && elem.IsValid() {
		if elem.Type() == bigIntType {
			bi := rv.Interface().(*big.Int)
			return fromBigInt(bi), nil
		}
		if elem.Type() == timeType {
			return nz.normalizeStruct(elem)
		}
		if node, ok := normalizeDuckTyped(rv); ok {
			return node, nil
		}
	}
	return nz.normalize(elem)
}

func fromInt64(v int64) *ir.Node {
	if v > maxSafeInteger || v < -maxSafeInteger {
		return ir.FromString(strconv.FormatInt(v, 10))
	}
	return ir.FromNumber(float64(v))
}

func fromUint64(v uint64) *ir.Node {
	if v > maxSafeInteger {
		return ir.FromString(strconv.FormatUint(v, 10))
	}
	return ir.FromNumber(float64(v))
}

func fromBigInt(bi *big.Int) *ir.Node {
	if bi.IsInt64() {
		return fromInt64(bi.Int64())
	}
	return ir.FromString(bi.String())
}

func fromFloat(f float64) *ir.Node {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ir.Null()
	}
	if f == 0 {
		return ir.FromNumber(0)
	}
	return ir.FromNumber(f)
}

func (nz *normalizer) normalizeSliceOrArray(rv reflect.Value) (*ir.Node, error) {
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		return ir.FromString(strings.ToValidUTF8(string(rv.Bytes()), "�")), nil
	}
	if rv.Kind() == reflect.Slice {
		if rv.IsNil() {
			return ir.FromArray(nil), nil
		}
		ok, pop := nz.pushIdentity(rv.Pointer())
		if !ok {
			return nil, ir.ErrCycleDetected
		}
		defer pop()
	}
	values := make([]*ir.Node, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		v, err := nz.normalize(rv.Index(i))
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return ir.FromArray(values), nil
}

// isSetIdiom reports whether a Go map's element type represents the common
// "map used as a set" idiom: map[K]struct{} or map[K]bool.
func isSetIdiom(elemType reflect.Type) bool {
	if elemType.Kind() == reflect.Bool {
		return true
	}
	return elemType.Kind() == reflect.Struct && elemType.NumField() == 0
}

func (nz *normalizer) normalizeMap(rv reflect.Value) (*ir.Node, error) {
	if rv.IsNil() {
		if isSetIdiom(rv.Type().Elem()) {
			return ir.FromArray(nil), nil
		}
		return ir.FromObject(nil, nil), nil
	}
	ok, pop := nz.pushIdentity(rv.Pointer())
	if !ok {
		return nil, ir.ErrCycleDetected
	}
	defer pop()

	keys := rv.MapKeys()
	strKeys := make([]string, len(keys))
	for i, k := range keys {
		strKeys[i] = fmt.Sprint(k.Interface())
	}
	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return strKeys[order[i]] < strKeys[order[j]] })

	if isSetIdiom(rv.Type().Elem()) {
		values := make([]*ir.Node, len(order))
		for i, idx := range order {
			v, err := nz.normalize(keys[idx])
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return ir.FromArray(values), nil
	}

	fields := make([]string, len(order))
	values := make([]*ir.Node, len(order))
	for i, idx := range order {
		v, err := nz.normalize(rv.MapIndex(keys[idx]))
		if err != nil {
			return nil, err
		}
		fields[i] = strKeys[idx]
		values[i] = v
	}
	return ir.FromObject(fields, values), nil
}

func (nz *normalizer) normalizeStruct(rv reflect.Value) (*ir.Node, error) {
	if rv.Type() == timeType {
		tv := rv.Interface().(time.Time)
		s := tv.UTC().Format(time.RFC3339Nano)
		return ir.FromString(s), nil
	}
	if node, ok := normalizeDuckTyped(rv); ok {
		return node, nil
	}

	t := rv.Type()
	var fields []string
	var values []*ir.Node
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" { // unexported
			continue
		}
		name, skip := fieldName(sf)
		if skip {
			continue
		}
		v, err := nz.normalize(rv.Field(i))
		if err != nil {
			return nil, err
		}
		fields = append(fields, name)
		values = append(values, v)
	}
	return ir.FromObject(fields, values), nil
}

func fieldName(sf reflect.StructField) (name string, skip bool) {
	if tag, ok := sf.Tag.Lookup("con"); ok {
		tag = strings.Split(tag, ",")[0]
		if tag == "-" {
			return "", true
		}
		if tag != "" {
			return tag, false
		}
	} else if tag, ok := sf.Tag.Lookup("json"); ok {
		tag = strings.Split(tag, ",")[0]
		if tag == "-" {
			return "", true
		}
		if tag != "" {
			return tag, false
		}
	}
	return sf.Name, false
}
