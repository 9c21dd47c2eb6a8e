package domain

import "strings"

// ManagerPatch is a partial update of a user's manager reference. A nil field
// leaves the corresponding field of the current reference untouched.
type ManagerPatch struct {
	ID        *string `json:"id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// ResolveManager recomputes a manager reference from a partial manager update.
// It overlays the patch on the current reference, then branches on name
// presence — exactly one branch applies:
//
//   - both names empty: the reference is cleared entirely, discarding any
//     dangling id the merge carried over.
//   - both names present and a user matches on normalized first+last name:
//     link to that user. The first match in collection order wins; two users
//     sharing a name are indistinguishable here. The typed-in names are kept
//     verbatim, not the matched record's stored ones.
//   - otherwise (partial name, or full name with no match): keep the merged
//     id, synthesizing a fresh one via newID when it is empty.
//
// The function is total: any combination of inputs yields a reference with
// non-null string fields and no error.
func ResolveManager(patch ManagerPatch, current ManagerRef, all []*User, newID func() string) ManagerRef {
	merged := current
	if patch.ID != nil {
		merged.ID = *patch.ID
	}
	if patch.FirstName != nil {
		merged.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		merged.LastName = *patch.LastName
	}

	first := strings.TrimSpace(merged.FirstName)
	last := strings.TrimSpace(merged.LastName)

	if first == "" && last == "" {
		return ManagerRef{}
	}

	if first != "" && last != "" {
		for _, u := range all {
			if NormalizeName(u.FirstName) == NormalizeName(first) &&
				NormalizeName(u.LastName) == NormalizeName(last) {
				return ManagerRef{ID: u.ID, FirstName: first, LastName: last}
			}
		}
	}

	if merged.ID == "" {
		merged.ID = newID()
	}
	return ManagerRef{ID: merged.ID, FirstName: first, LastName: last}
}
