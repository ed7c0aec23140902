package domain

// HeadName is the display name of the HEAD reference
const HeadName = "HEAD"

// Reference points at a commit: either HEAD or the tip of a local branch
type Reference struct {
	branch BranchName
}

// HeadReference returns the reference to the checked-out position
func HeadReference() Reference {
	return Reference{}
}

// BranchReference returns the reference to the tip of branch
func BranchReference(branch BranchName) Reference {
	return Reference{branch: branch}
}

// IsHead reports whether r points at HEAD
func (r Reference) IsHead() bool {
	return r.branch.IsZero()
}

// Branch returns the branch r points at; ok is false for HEAD
func (r Reference) Branch() (branch BranchName, ok bool) {
	return r.branch, !r.branch.IsZero()
}

func (r Reference) String() string {
	if r.IsHead() {
		return HeadName
	}
	return r.branch.String()
}
