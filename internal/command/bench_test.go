package command

import (
	"testing"
)

func BenchmarkExecute(b *testing.B) {
	s := NewStorage()
	a := plainAction{kind: "move"}

	b.ReportAllocs()
	for b.Loop() {
		cmd, err := New(s, a)
		if err != nil {
			b.Fatal(err)
		}
		cmd.Execute()
	}
}

func BenchmarkUndoRedo(b *testing.B) {
	s := NewStorage()
	for range 100 {
		cmd, err := New(s, plainAction{kind: "move"})
		if err != nil {
			b.Fatal(err)
		}
		cmd.Execute()
	}

	for b.Loop() {
		s.UndoCommand()
		s.RedoCommand()
	}
}
