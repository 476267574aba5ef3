/*
Package rule decodes transition rule strings into rule tables.

A rule string is one or more clauses separated by the literal " | ":

	clause      := SYMBOL "/" SYMBOL "," DIRECTION
	SYMBOL      := one character from the alphabet
	DIRECTION   := "L" | "R" | "N"
	rule-string := clause ( " | " clause )*

The first symbol of a clause is read from the tape, the second is written, and
the direction is the head move after the write. For the alphabet "01":

	table, err := rule.Parse("0/1,R | 1/0,L", domain.MustAlphabet("01"))

yields {'0': (1, R), '1': (0, L)}.

The recognizer is hand written and checks alphabet membership against a set,
so any character that is not a separator or whitespace can be a symbol.
*/
package rule
