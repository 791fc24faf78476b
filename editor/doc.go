// Package editor provides a Bubble Tea component that renders a lined
// document and edits it through the buffer cursor operations.
//
// The component owns the document and threads the cursor through every
// buffer call. Hosts read both back with Document and Cursor.
package editor
