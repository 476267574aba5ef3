/*
Package turing is the editing core of a Turing machine designer.

It keeps the state graph of a machine (states, transitions and the alphabet)
and decodes transition rule strings such as "0/1,R | 1/0,L" into rule tables.
Presentation layers (a terminal editor, a canvas, a web page) drive an Editor
and render its snapshots; they never touch the graph directly.

# Concept

A rule string is a list of clauses separated by " | ". Each clause reads one
symbol, writes one symbol and moves the head Left, Right or not at all:

	read/write,direction

Every symbol must belong to the alphabet given when the Editor is created. A rule
that does not match the grammar is rejected with a *rule.ParseError and the
graph is left untouched.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/turing"
		"github.com/aretw0/turing/pkg/domain"
	)

	func main() {
		ctx := context.Background()

		ed, err := turing.New("01")
		if err != nil {
			log.Fatal(err)
		}

		q0 := ed.AddState(ctx, "q0", domain.Position{X: 100, Y: 100})
		q1 := ed.AddState(ctx, "q1", domain.Position{X: 300, Y: 100})

		if _, err := ed.AddTransition(ctx, q0, q1, "0/1,R | 1/0,L"); err != nil {
			log.Fatal(err)
		}

		for _, view := range ed.Inspect() {
			fmt.Println(view.Name, len(view.Transitions))
		}
	}

There is no execution loop: the current state can be set by the host but is
never advanced by a rule.
*/
package turing
