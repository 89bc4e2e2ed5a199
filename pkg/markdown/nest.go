package markdown

// ListNode is an item of a list tree rebuilt from the indents of a flat list.
type ListNode struct {
	Item     ListItem
	Children []*ListNode
}

// NestItems rebuilds a tree from flat list items.
//
// An item becomes the child of the closest previous item with a smaller
// indent. The scanner never does this itself: lists stay flat and callers
// wanting true nesting post-process them with this function.
func NestItems(items []ListItem) []*ListNode {
	var roots []*ListNode
	var stack []*ListNode // open ancestors, increasing indents

	for _, item := range items {
		node := &ListNode{Item: item}
		for len(stack) > 0 && stack[len(stack)-1].Item.Indent >= item.Indent {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, node)
	}

	return roots
}
