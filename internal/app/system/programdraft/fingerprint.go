package programdraft

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/dalemusser/campusadmin/internal/domain/models"
)

// Section returns the value of a persistable top-level collection.
func Section(p models.CourseProgram, root string) (any, error) {
	switch root {
	case AdmissionSteps:
		return nonNil(p.AdmissionSteps), nil
	case Curriculum:
		return nonNil(p.Curriculum), nil
	case SoftwareTools:
		return nonNil(p.SoftwareTools), nil
	case CareerPaths:
		return nonNil(p.CareerPaths), nil
	case FeeStructure:
		fs := p.FeeStructure
		fs.EMIOptions = nonNil(fs.EMIOptions)
		fs.CouponCodes = append([]models.CouponCode{}, fs.CouponCodes...)
		for i := range fs.CouponCodes {
			fs.CouponCodes[i].Normalize()
		}
		return fs, nil
	}
	return nil, fmt.Errorf("%w: %q is not a persistable collection", ErrBadAction, root)
}

// Payload is the body of a whole-collection PUT: {root: <complete list>}.
func Payload(p models.CourseProgram, root string) (map[string]any, error) {
	v, err := Section(p, root)
	if err != nil {
		return nil, err
	}
	return map[string]any{root: v}, nil
}

// Fingerprint is a digest of one top-level collection. Two programs with the
// same fingerprint for a root would send identical PUT payloads for it; a nil
// and an empty list hash the same.
func Fingerprint(p models.CourseProgram, root string) (string, error) {
	v, err := Section(p, root)
	if err != nil {
		return "", err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return "", err
	}
	canon, err := json.Marshal(prune(generic))
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canon)
	return hex.EncodeToString(sum[:]), nil
}

// Fingerprints returns the fingerprint of every persistable collection.
func Fingerprints(p models.CourseProgram) (map[string]string, error) {
	out := make(map[string]string, len(Roots))
	for _, root := range Roots {
		fp, err := Fingerprint(p, root)
		if err != nil {
			return nil, err
		}
		out[root] = fp
	}
	return out, nil
}

// prune drops null values and empty arrays from objects so that nil and
// empty slices nested anywhere in the tree compare equal.
func prune(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			if val == nil {
				delete(t, k)
				continue
			}
			if arr, ok := val.([]any); ok && len(arr) == 0 {
				delete(t, k)
				continue
			}
			t[k] = prune(val)
		}
		return t
	case []any:
		for i := range t {
			t[i] = prune(t[i])
		}
		return t
	}
	return v
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
