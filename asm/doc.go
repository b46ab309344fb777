// Package asm turns tokenized ARAM source into an executable Program.
//
// Analysis runs in two phases. The first phase walks every line, reporting
// token errors, checking each instruction's operand against the addressing
// modes its opcode accepts, and binding every label definition to the
// index of the next instruction. The second phase resolves each jump
// operand against the completed label table, so labels may be referenced
// before or after their definition.
//
// Problems never stop the analysis early. The full, line ordered
// diag.List is always returned, and a Program only when it is empty.
package asm
