package domain

// BuildCommentTree assembles a flat comment slice into a forest. Each comment
// ends up either in the returned root slice (nil parent) or in its parent's
// Replies, never both. A comment whose parent is not present in the input is
// dropped: that happens when the parent was deleted or belongs to another
// post, and the flat listing remains the only place such stragglers show up.
//
// Relative order follows the input, so callers fetch comments sorted by
// creation time ascending to get deterministic sibling order.
func BuildCommentTree(comments []*Comment) []*Comment {
	byID := make(map[int64]*Comment, len(comments))
	for _, c := range comments {
		c.Replies = []*Comment{}
		byID[c.ID] = c
	}

	roots := []*Comment{}
	for _, c := range comments {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		if parent, ok := byID[*c.ParentID]; ok {
			parent.Replies = append(parent.Replies, c)
		}
	}

	return roots
}

// ApplyDisplayNicknames substitutes the withdrawn-user placeholder on every
// comment in the flat slice. Read-path only; rows are never rewritten.
func ApplyDisplayNicknames(comments []*Comment) {
	for _, c := range comments {
		c.Nickname = c.DisplayNickname()
	}
}
