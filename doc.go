// Package ulmark recognizes and toggles underscore underline spans such as
// _text_ in line-oriented plain text.
//
// Two halves share one pairing rule:
//   - Scan finds the spans on a line, ignoring underscores inside code, math,
//     links, bare URLs and front matter (see FindExclusions).
//   - Toggle inspects a cursor or selection on a Buffer and adds or removes
//     one pair of marks, expanding an empty cursor to the word under it and
//     deciding multi-line selections by majority vote.
//
// Columns are UTF-16 code units throughout, matching editor hosts.
//
// Example:
//
//	doc := ulmark.NewDocument("hello world")
//	ulmark.Toggle(doc, ulmark.Position{Col: 6}, ulmark.Position{Col: 11})
//	fmt.Println(doc.String()) // hello _world_
//
// Decorate and Render paint recognized spans for display, and
// ClassifyMarkdown tells underscore emphasis apart from asterisk emphasis in
// a goldmark render tree.
package ulmark
