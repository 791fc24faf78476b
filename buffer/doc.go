// Package buffer implements the in-memory, cursor-driven document model for lined.
//
// A Document is a doubly linked chain of lines; each line is a doubly linked
// chain of single-byte characters terminated by a newline sentinel. Both
// chains live in slot arenas and link by index, so splitting and merging
// lines is plain slot re-linking.
//
// A Cursor is a value handle to one character. Every operation takes the
// current cursor and returns the next one; callers must only keep the
// returned handle.
package buffer
