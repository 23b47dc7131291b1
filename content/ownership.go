package content

import (
	"inkwell-cli/shared"
)

// Owns reports whether the given user is the recorded author behind ref.
// Identifiers are already normalized at the session boundary, so a single
// exact comparison covers both wire spellings. An unset ref belongs to no
// one.
func Owns(user *shared.User, ref shared.AuthorRef) bool {
	if user == nil {
		return false
	}
	id, ok := ref.ResolvedId()
	return ok && id == user.Id
}

// Partition splits items into the user's own and everyone else's, preserving
// relative order on both sides. Every input item lands in exactly one of the
// two outputs.
func Partition[T Authored](items []T, user *shared.User) (mine, others []T) {
	for _, item := range items {
		if Owns(user, item.ItemAuthor()) {
			mine = append(mine, item)
		} else {
			others = append(others, item)
		}
	}
	return mine, others
}
