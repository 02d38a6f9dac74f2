package patch

import (
	"github.com/conformat/conform/ir"
	"github.com/conformat/conform/normalize"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/pkg/errors"
)

// Apply decodes patchJSON as an RFC 6902 JSON Patch document and applies it
// to doc, returning the patched tree. doc is never mutated; the patch runs
// against a JSON rendering of it and the result is renormalized from JSON.
func Apply(doc *ir.Node, patchJSON []byte) (*ir.Node, error) {
	docJSON, err := doc.ToJSON()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	patched, err := ops.Apply(docJSON)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	out, err := normalize.FromJSON(patched)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return out, nil
}

// ApplyLenient is like Apply but tolerates a remove op whose path no longer
// exists and an add op whose parent path does not yet exist, creating it.
// Useful for patches generated against a slightly stale prior version of doc.
func ApplyLenient(doc *ir.Node, patchJSON []byte) (*ir.Node, error) {
	docJSON, err := doc.ToJSON()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	opts := jsonpatch.NewApplyOptions()
	opts.AllowMissingPathOnRemove = true
	opts.EnsurePathExistsOnAdd = true
	patched, err := ops.ApplyWithOptions(docJSON, opts)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	out, err := normalize.FromJSON(patched)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return out, nil
}
