package diff

import (
	"strconv"
	"strings"

	"github.com/conformat/conform/ir"
	diffmatchpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Kind classifies a single Change.
type Kind int

const (
	Added Kind = iota
	Removed
	Changed
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "changed"
	}
}

// Change is one leaf-level difference between two trees, located by Path: a
// slice of object field names and "[i]" array-index segments from the root
// down to the differing value.
type Change struct {
	Path []string
	Kind Kind
	From *ir.Node // nil when Kind == Added
	To   *ir.Node // nil when Kind == Removed
}

func (c Change) PathString() string { return strings.Join(c.Path, ".") }

// Diff walks from and to in lockstep and returns every leaf where they
// disagree. Equal trees yield a nil slice.
func Diff(from, to *ir.Node) []Change {
	var changes []Change
	walk(from, to, nil, &changes)
	return changes
}

func walk(from, to *ir.Node, path []string, out *[]Change) {
	if from == nil && to == nil {
		return
	}
	if from == nil {
		*out = append(*out, Change{Path: path, Kind: Added, To: to})
		return
	}
	if to == nil {
		*out = append(*out, Change{Path: path, Kind: Removed, From: from})
		return
	}
	if from.Type != to.Type {
		*out = append(*out, Change{Path: path, Kind: Changed, From: from, To: to})
		return
	}
	switch from.Type {
	case ir.ObjectType:
		walkObject(from, to, path, out)
	case ir.ArrayType:
		walkArray(from, to, path, out)
	default:
		if !from.Equal(to) {
			*out = append(*out, Change{Path: path, Kind: Changed, From: from, To: to})
		}
	}
}

func walkArray(from, to *ir.Node, path []string, out *[]Change) {
	n := len(from.Values)
	if len(to.Values) > n {
		n = len(to.Values)
	}
	for i := 0; i < n; i++ {
		var fv, tv *ir.Node
		if i < len(from.Values) {
			fv = from.Values[i]
		}
		if i < len(to.Values) {
			tv = to.Values[i]
		}
		walk(fv, tv, appendPath(path, "["+strconv.Itoa(i)+"]"), out)
	}
}

// appendPath always copies, since the loops calling it append repeatedly to
// the same parent slice and a Change's stored Path must not be clobbered by
// a later sibling sharing the same backing array.
func appendPath(path []string, seg string) []string {
	np := make([]string, len(path)+1)
	copy(np, path)
	np[len(path)] = seg
	return np
}

// walkObject matches from/to fields by name using a Myers diff over each
// side's field-name sequence, encoded as runes (one rune per distinct
// name seen so far) so diffmatchpatch's line-oriented algorithm can be
// reused on field identity instead of text lines.
func walkObject(from, to *ir.Node, path []string, out *[]Change) {
	alphabet := map[string]rune{}
	fromRunes := internFields(alphabet, from.Fields)
	toRunes := internFields(alphabet, to.Fields)
	runeToField := make(map[rune]string, len(alphabet))
	for name, r := range alphabet {
		runeToField[r] = name
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for range d.Text {
				name := runeToField[fromRunes[fi]]
				*out = append(*out, Change{Path: appendPath(path, name), Kind: Removed, From: from.Values[fi]})
				fi++
			}
		case diffmatchpatch.DiffInsert:
			for range d.Text {
				name := runeToField[toRunes[ti]]
				*out = append(*out, Change{Path: appendPath(path, name), Kind: Added, To: to.Values[ti]})
				ti++
			}
		case diffmatchpatch.DiffEqual:
			for range d.Text {
				name := runeToField[fromRunes[fi]]
				walk(from.Values[fi], to.Values[ti], appendPath(path, name), out)
				fi++
				ti++
			}
		}
	}
}

func internFields(alphabet map[string]rune, fields []string) []rune {
	rs := make([]rune, len(fields))
	for i, f := range fields {
		r, ok := alphabet[f]
		if !ok {
			r = rune(len(alphabet))
			alphabet[f] = r
		}
		rs[i] = r
	}
	return rs
}
