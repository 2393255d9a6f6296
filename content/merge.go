package content

// Item is satisfied by every collection member; Key returns the stable id
// merge reconciles on.
type Item interface {
	Key() ID
}

// Merge reconciles a locally cached collection against a freshly fetched
// remote one. Local entries always win on id collision; remote-only entries
// are appended. The result carries local items in their cached order
// followed by remote-only items in remote order, so the function stays
// deterministic even though callers re-sort before display.
//
// Merge is pure: neither input slice is modified and merging an already
// merged result against the same remote yields the same id set.
func Merge[T Item](local, remote []T) []T {
	if len(local) == 0 {
		return append([]T(nil), remote...)
	}

	seen := make(map[ID]struct{}, len(local))
	out := make([]T, 0, len(local)+len(remote))
	for _, item := range local {
		seen[item.Key()] = struct{}{}
		out = append(out, item)
	}
	for _, item := range remote {
		if _, ok := seen[item.Key()]; ok {
			continue
		}
		seen[item.Key()] = struct{}{}
		out = append(out, item)
	}
	return out
}
