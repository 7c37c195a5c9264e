package constant

import "matchfeed-be/pkg/feed"

// DefaultSlotSequence is the production feed layout: three posts, one
// match suggestion, two posts, one quiz prompt, repeated until the
// requested count is filled or every bucket runs dry.
var DefaultSlotSequence = []feed.Slot{
	{Type: feed.TypePost, Count: 3},
	{Type: feed.TypeSuggestion, Count: 1, Hint: &feed.PresentationHint{Layout: "card", Accent: "match"}},
	{Type: feed.TypePost, Count: 2},
	{Type: feed.TypeQuestion, Count: 1, Hint: &feed.PresentationHint{Layout: "prompt"}},
}
