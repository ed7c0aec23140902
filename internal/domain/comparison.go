package domain

// CommitsNotInBranch returns the commits of head whose hash does not appear in
// branch, keeping the order of head. Commits are matched by hash only and
// duplicates in head are passed through unchanged.
func CommitsNotInBranch(head, branch []Commit) []Commit {
	inBranch := make(map[CommitHash]struct{}, len(branch))
	for _, c := range branch {
		inBranch[c.Hash()] = struct{}{}
	}

	result := make([]Commit, 0, len(head))
	for _, c := range head {
		if _, ok := inBranch[c.Hash()]; ok {
			continue
		}
		result = append(result, c)
	}

	return result
}
