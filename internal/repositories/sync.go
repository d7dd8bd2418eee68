package repositories

// diffIDs compares the current association set with the desired one and
// returns the ids to detach and the ids to attach. Ids present in both are
// left alone. Duplicates in desired are ignored.
func diffIDs(current, desired []string) (remove, add []string) {
	want := make(map[string]struct{}, len(desired))
	for _, id := range desired {
		want[id] = struct{}{}
	}
	have := make(map[string]struct{}, len(current))
	for _, id := range current {
		have[id] = struct{}{}
		if _, ok := want[id]; !ok {
			remove = append(remove, id)
		}
	}
	for _, id := range desired {
		if _, ok := have[id]; ok {
			continue
		}
		have[id] = struct{}{}
		add = append(add, id)
	}
	return remove, add
}
