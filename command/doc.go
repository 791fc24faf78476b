// Package command drives a buffer.Document from single-letter opcodes.
//
// One token per input line: the opcode is the first non-blank byte, and the
// insert argument is the byte two positions after it ("I x").
package command
